// Package coverage holds the coverage data model: per-file, per-line,
// per-branch, per-decision and per-function execution counts, plus the
// aggregated statistics computed from them. The model carries no
// parsing or rendering logic; producers fill it through the get-or-create
// accessors and consumers summarize it.
//
// The model does not synchronize access. One goroutine owns a tree
// while it is being filled; a finished tree may be shared for reading.
package coverage

import "errors"

var (
	// ErrNegativeCount reports a negative execution count.
	ErrNegativeCount = errors.New("negative execution count")
	// ErrInvalidLineno reports a line number below 1.
	ErrInvalidLineno = errors.New("line number must be positive")
)

// CovData is the coverage of a whole project, keyed by filename.
type CovData map[string]*FileCoverage

// File gets or creates the FileCoverage for that filename. An existing
// entry is returned untouched.
func (cd CovData) File(filename string) *FileCoverage {
	if fc, ok := cd[filename]; ok {
		return fc
	}
	fc := NewFileCoverage(filename)
	cd[filename] = fc
	return fc
}

// Summarize aggregates the statistics of every file. The result does
// not depend on iteration order.
func (cd CovData) Summarize() SummarizedStats {
	var stats SummarizedStats
	for _, fc := range cd {
		stats.Add(SummarizeFile(fc))
	}
	return stats
}
