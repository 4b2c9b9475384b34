package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFileCoverage(t *testing.T, filename string, counts map[int]int) *FileCoverage {
	t.Helper()
	fc := NewFileCoverage(filename)
	for lineno, count := range counts {
		_, err := fc.LineWithDefaults(lineno, LineDefaults{Count: count})
		require.NoError(t, err)
	}
	return fc
}

func TestCovDataFile(t *testing.T) {
	cd := make(CovData)

	t.Run("should create an empty file entry on first access", func(t *testing.T) {
		fc := cd.File("src/a.c")
		require.NotNil(t, fc)
		assert.Equal(t, "src/a.c", fc.Filename)
		assert.Empty(t, fc.Lines)
		assert.Empty(t, fc.Functions)
	})

	t.Run("should return the existing entry untouched", func(t *testing.T) {
		fc := cd.File("src/a.c")
		_, err := fc.LineWithDefaults(1, LineDefaults{Count: 1})
		require.NoError(t, err)

		again := cd.File("src/a.c")
		assert.Same(t, fc, again)
		assert.Len(t, cd, 1)
		assert.Len(t, again.Lines, 1)
	})
}

func TestCovDataSummarize(t *testing.T) {
	t.Run("should total stats across files", func(t *testing.T) {
		cd := make(CovData)
		cd["a.c"] = buildFileCoverage(t, "a.c", map[int]int{1: 1, 2: 0})
		cd["b.c"] = buildFileCoverage(t, "b.c", map[int]int{1: 3, 2: 2, 3: 0})
		cd["a.c"].Function("f").Count = 1
		cd["b.c"].Function("g")

		stats := cd.Summarize()
		assert.Equal(t, CoverageStat{Covered: 3, Total: 5}, stats.Line)
		assert.Equal(t, CoverageStat{Covered: 1, Total: 2}, stats.Function)
		assert.Equal(t, CoverageStat{}, stats.Branch)
		assert.Equal(t, DecisionCoverageStat{}, stats.Decision)
	})

	t.Run("should be empty for an empty project", func(t *testing.T) {
		stats := make(CovData).Summarize()
		assert.Equal(t, SummarizedStats{}, stats)
		_, ok := stats.Line.Percent()
		assert.False(t, ok)
	})

	t.Run("should equal the sum of partition summaries", func(t *testing.T) {
		whole := make(CovData)
		left := make(CovData)
		right := make(CovData)

		whole["a.c"] = buildFileCoverage(t, "a.c", map[int]int{1: 1, 2: 0, 3: 4})
		left["a.c"] = buildFileCoverage(t, "a.c", map[int]int{1: 1, 2: 0, 3: 4})

		whole["b.c"] = buildFileCoverage(t, "b.c", map[int]int{1: 0})
		right["b.c"] = buildFileCoverage(t, "b.c", map[int]int{1: 0})

		partitioned := left.Summarize()
		partitioned.Add(right.Summarize())
		assert.Equal(t, whole.Summarize(), partitioned)
	})
}

func TestSummarizeFile(t *testing.T) {
	fc := buildFileCoverage(t, "a.c", map[int]int{1: 1, 2: 0})
	line, err := fc.Line(1)
	require.NoError(t, err)
	line.Branch(0).Count = 1
	line.Branch(1).Count = 0
	decision, err := NewDecisionCoverageConditional(1, 1)
	require.NoError(t, err)
	line.Decision = decision
	fc.Function("main").Count = 2

	stats := SummarizeFile(fc)
	assert.Equal(t, CoverageStat{Covered: 1, Total: 2}, stats.Line)
	assert.Equal(t, CoverageStat{Covered: 1, Total: 2}, stats.Branch)
	assert.Equal(t, CoverageStat{Covered: 1, Total: 1}, stats.Function)
	assert.Equal(t, DecisionCoverageStat{Covered: 2, Total: 2}, stats.Decision)
}

func TestSummarizedStatsAdd(t *testing.T) {
	stats := SummarizedStats{
		Line:     CoverageStat{Covered: 1, Total: 2},
		Decision: DecisionCoverageStat{Covered: 1, Total: 2},
	}
	stats.Add(SummarizedStats{
		Line:     CoverageStat{Covered: 2, Total: 2},
		Branch:   CoverageStat{Covered: 1, Total: 4},
		Decision: DecisionCoverageStat{Uncheckable: 1, Total: 2},
	})

	assert.Equal(t, CoverageStat{Covered: 3, Total: 4}, stats.Line)
	assert.Equal(t, CoverageStat{Covered: 1, Total: 4}, stats.Branch)
	assert.Equal(t, DecisionCoverageStat{Covered: 1, Uncheckable: 1, Total: 4}, stats.Decision)
}
