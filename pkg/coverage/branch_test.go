package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranchCoverage(t *testing.T) {
	t.Run("should reject negative counts", func(t *testing.T) {
		_, err := NewBranchCoverage(-1, false, false)
		assert.ErrorIs(t, err, ErrNegativeCount)
	})

	t.Run("should keep the fallthrough and throw flags", func(t *testing.T) {
		branch, err := NewBranchCoverage(3, true, true)
		require.NoError(t, err)
		assert.Equal(t, 3, branch.Count)
		assert.True(t, branch.Fallthrough)
		assert.True(t, branch.Throw)
	})
}

func TestBranchCoverageIsCovered(t *testing.T) {
	t.Run("should treat an executed branch as covered", func(t *testing.T) {
		branch, err := NewBranchCoverage(1, false, false)
		require.NoError(t, err)
		assert.True(t, branch.IsCovered())
	})

	t.Run("should treat an unexecuted branch as uncovered", func(t *testing.T) {
		branch, err := NewBranchCoverage(0, false, false)
		require.NoError(t, err)
		assert.False(t, branch.IsCovered())
	})
}
