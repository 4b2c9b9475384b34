package coverage

import "fmt"

// DecisionCoverage represents coverage information about a decision. It
// is a closed set of implementations: a decision is either uncheckable,
// a conditional, or a switch. The unexported method keeps the set
// closed, so consumers can rely on the three variants being exhaustive.
type DecisionCoverage interface {
	// Stat summarizes the decision as covered/uncheckable/total counts.
	Stat() DecisionCoverageStat

	// IsUncheckable reports whether this is an uncheckable decision.
	IsUncheckable() bool
	// IsConditional reports whether this is a conditional decision.
	IsConditional() bool
	// IsSwitch reports whether this is a switch decision.
	IsSwitch() bool

	isDecisionCoverage()
}

// DecisionCoverageUncheckable marks a decision whose outcomes could not
// be analyzed.
type DecisionCoverageUncheckable struct{}

// NewDecisionCoverageUncheckable creates an uncheckable decision marker.
func NewDecisionCoverageUncheckable() *DecisionCoverageUncheckable {
	return &DecisionCoverageUncheckable{}
}

func (*DecisionCoverageUncheckable) isDecisionCoverage() {}

// Stat reports the fixed sentinel for uncheckable decisions: nothing
// covered, one uncheckable entry, out of a total of two outcomes.
func (*DecisionCoverageUncheckable) Stat() DecisionCoverageStat {
	return DecisionCoverageStat{Covered: 0, Uncheckable: 1, Total: 2}
}

func (*DecisionCoverageUncheckable) IsUncheckable() bool { return true }
func (*DecisionCoverageUncheckable) IsConditional() bool { return false }
func (*DecisionCoverageUncheckable) IsSwitch() bool      { return false }

// DecisionCoverageConditional represents a two-outcome decision with
// separate counts for the true and false branches.
type DecisionCoverageConditional struct {
	// CountTrue is the number of times the decision evaluated to true.
	CountTrue int `json:"count_true"`
	// CountFalse is the number of times the decision evaluated to false.
	CountFalse int `json:"count_false"`
}

// NewDecisionCoverageConditional creates a conditional decision with the
// given outcome counts.
func NewDecisionCoverageConditional(countTrue, countFalse int) (*DecisionCoverageConditional, error) {
	if countTrue < 0 {
		return nil, fmt.Errorf("decision count_true: %w: %d", ErrNegativeCount, countTrue)
	}
	if countFalse < 0 {
		return nil, fmt.Errorf("decision count_false: %w: %d", ErrNegativeCount, countFalse)
	}
	return &DecisionCoverageConditional{CountTrue: countTrue, CountFalse: countFalse}, nil
}

func (*DecisionCoverageConditional) isDecisionCoverage() {}

// Stat counts each taken outcome as covered, out of the two possible.
func (d *DecisionCoverageConditional) Stat() DecisionCoverageStat {
	covered := 0
	if d.CountTrue > 0 {
		covered++
	}
	if d.CountFalse > 0 {
		covered++
	}
	return DecisionCoverageStat{Covered: covered, Uncheckable: 0, Total: 2}
}

func (*DecisionCoverageConditional) IsUncheckable() bool { return false }
func (*DecisionCoverageConditional) IsConditional() bool { return true }
func (*DecisionCoverageConditional) IsSwitch() bool      { return false }

// DecisionCoverageSwitch represents a switch-case decision with a single
// execution count.
type DecisionCoverageSwitch struct {
	// Count is the number of times this case was taken.
	Count int `json:"count"`
}

// NewDecisionCoverageSwitch creates a switch decision with the given count.
func NewDecisionCoverageSwitch(count int) (*DecisionCoverageSwitch, error) {
	if count < 0 {
		return nil, fmt.Errorf("decision count: %w: %d", ErrNegativeCount, count)
	}
	return &DecisionCoverageSwitch{Count: count}, nil
}

func (*DecisionCoverageSwitch) isDecisionCoverage() {}

// Stat counts the single outcome as covered when it was taken.
func (d *DecisionCoverageSwitch) Stat() DecisionCoverageStat {
	covered := 0
	if d.Count > 0 {
		covered++
	}
	return DecisionCoverageStat{Covered: covered, Uncheckable: 0, Total: 1}
}

func (*DecisionCoverageSwitch) IsUncheckable() bool { return false }
func (*DecisionCoverageSwitch) IsConditional() bool { return false }
func (*DecisionCoverageSwitch) IsSwitch() bool      { return true }
