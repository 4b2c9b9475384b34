package coverage

import "fmt"

// BranchCoverage represents coverage information about a branch.
type BranchCoverage struct {
	// Count is the number of times this branch was followed.
	Count int `json:"count"`
	// Fallthrough reports whether this is a fallthrough branch. False if unknown.
	Fallthrough bool `json:"fallthrough,omitempty"`
	// Throw reports whether this is an exception-handling branch. False if unknown.
	Throw bool `json:"throw,omitempty"`
}

// NewBranchCoverage creates a BranchCoverage with the given execution count.
func NewBranchCoverage(count int, fallThrough, throw bool) (*BranchCoverage, error) {
	if count < 0 {
		return nil, fmt.Errorf("branch: %w: %d", ErrNegativeCount, count)
	}
	return &BranchCoverage{
		Count:       count,
		Fallthrough: fallThrough,
		Throw:       throw,
	}, nil
}

// IsCovered reports whether the branch was followed at least once.
func (b *BranchCoverage) IsCovered() bool {
	return b.Count > 0
}
