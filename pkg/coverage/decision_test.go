package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionCoverageVariants(t *testing.T) {
	t.Run("should report the fixed stat for uncheckable decisions", func(t *testing.T) {
		d := NewDecisionCoverageUncheckable()
		assert.True(t, d.IsUncheckable())
		assert.False(t, d.IsConditional())
		assert.False(t, d.IsSwitch())
		assert.Equal(t, DecisionCoverageStat{Covered: 0, Uncheckable: 1, Total: 2}, d.Stat())
	})

	t.Run("should count each taken conditional outcome", func(t *testing.T) {
		cases := []struct {
			name       string
			countTrue  int
			countFalse int
			covered    int
		}{
			{"neither outcome taken", 0, 0, 0},
			{"only true taken", 3, 0, 1},
			{"only false taken", 0, 2, 1},
			{"both outcomes taken", 3, 2, 2},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d, err := NewDecisionCoverageConditional(tc.countTrue, tc.countFalse)
				require.NoError(t, err)
				assert.True(t, d.IsConditional())
				assert.Equal(t, DecisionCoverageStat{Covered: tc.covered, Total: 2}, d.Stat())
			})
		}
	})

	t.Run("should give a half covered conditional fifty percent", func(t *testing.T) {
		d, err := NewDecisionCoverageConditional(1, 0)
		require.NoError(t, err)
		assert.Equal(t, 50.0, d.Stat().PercentOr(-1.0))
	})

	t.Run("should count a switch as a single outcome", func(t *testing.T) {
		taken, err := NewDecisionCoverageSwitch(5)
		require.NoError(t, err)
		assert.True(t, taken.IsSwitch())
		assert.Equal(t, DecisionCoverageStat{Covered: 1, Total: 1}, taken.Stat())

		untaken, err := NewDecisionCoverageSwitch(0)
		require.NoError(t, err)
		assert.Equal(t, DecisionCoverageStat{Covered: 0, Total: 1}, untaken.Stat())
	})

	t.Run("should reject negative counts", func(t *testing.T) {
		_, err := NewDecisionCoverageConditional(-1, 0)
		assert.ErrorIs(t, err, ErrNegativeCount)

		_, err = NewDecisionCoverageConditional(0, -1)
		assert.ErrorIs(t, err, ErrNegativeCount)

		_, err = NewDecisionCoverageSwitch(-1)
		assert.ErrorIs(t, err, ErrNegativeCount)
	})
}
