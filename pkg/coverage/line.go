package coverage

import "fmt"

// LineCoverage represents coverage information about a line.
type LineCoverage struct {
	// Lineno is the 1-based line number.
	Lineno int `json:"lineno"`
	// Count is how often this line was executed at least partially.
	Count int `json:"count"`
	// Noncode reports whether any coverage info on this line should be ignored.
	Noncode bool `json:"noncode,omitempty"`
	// Excluded reports whether this line is excluded by a marker.
	Excluded bool `json:"excluded,omitempty"`
	// Branches holds the branches of this line, keyed by branch id.
	Branches map[int]*BranchCoverage `json:"branches"`
	// Decision holds the decision of this line, if any.
	Decision DecisionCoverage `json:"decision,omitempty"`
}

// NewLineCoverage creates a LineCoverage for the given 1-based line number.
func NewLineCoverage(lineno, count int, noncode, excluded bool) (*LineCoverage, error) {
	if lineno < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLineno, lineno)
	}
	if count < 0 {
		return nil, fmt.Errorf("line %d: %w: %d", lineno, ErrNegativeCount, count)
	}
	return &LineCoverage{
		Lineno:   lineno,
		Count:    count,
		Noncode:  noncode,
		Excluded: excluded,
		Branches: make(map[int]*BranchCoverage),
	}, nil
}

// IsCovered reports whether this line was executed. Noncode lines are
// never covered.
func (l *LineCoverage) IsCovered() bool {
	if l.Noncode {
		return false
	}
	return l.Count > 0
}

// IsUncovered reports whether this line was executable but never
// executed. Noncode lines are never uncovered.
func (l *LineCoverage) IsUncovered() bool {
	if l.Noncode {
		return false
	}
	return l.Count == 0
}

// IsReportable reports whether this line participates in line coverage,
// i.e. it is not marked as noncode.
func (l *LineCoverage) IsReportable() bool {
	return !l.Noncode
}

// Branch gets or creates the BranchCoverage for that branch id. A
// created branch starts with count zero; an existing one is returned
// untouched, so repeated accumulation passes never lose data.
func (l *LineCoverage) Branch(branchID int) *BranchCoverage {
	if branch, ok := l.Branches[branchID]; ok {
		return branch
	}
	if l.Branches == nil {
		l.Branches = make(map[int]*BranchCoverage)
	}
	branch := &BranchCoverage{}
	l.Branches[branchID] = branch
	return branch
}

// HasUncoveredBranch reports whether any branch on this line was never
// followed. A line without branches has none uncovered.
func (l *LineCoverage) HasUncoveredBranch() bool {
	for _, branch := range l.Branches {
		if !branch.IsCovered() {
			return true
		}
	}
	return false
}

// BranchStat summarizes the branches of this line.
func (l *LineCoverage) BranchStat() CoverageStat {
	stat := CoverageStat{Total: len(l.Branches)}
	for _, branch := range l.Branches {
		if branch.IsCovered() {
			stat.Covered++
		}
	}
	return stat
}

// DecisionStat summarizes the decision of this line. A line without a
// decision contributes an empty stat.
func (l *LineCoverage) DecisionStat() DecisionCoverageStat {
	if l.Decision == nil {
		return DecisionCoverageStat{}
	}
	return l.Decision.Stat()
}
