// Package covmerge folds coverage trees from separate measurement runs
// into one. Merging is additive: execution counts sum and flags
// accumulate. Entries missing on one side are taken from the other.
package covmerge

import (
	"errors"
	"fmt"

	"github.com/tfosdike/gcovr/internal/logger"
	"github.com/tfosdike/gcovr/pkg/coverage"
)

// ErrDecisionMismatch reports two runs disagreeing about the kind of
// decision on a line. That points at inconsistent instrumentation
// input, which merging cannot resolve.
var ErrDecisionMismatch = errors.New("conflicting decision kinds")

// Merge folds every file of src into dst in place. dst must be a
// non-nil map; src is left untouched and shares no data with dst
// afterwards.
func Merge(dst, src coverage.CovData) error {
	if dst == nil {
		return errors.New("destination coverage tree is nil")
	}
	for filename, srcFile := range src {
		if err := mergeFile(dst.File(filename), srcFile); err != nil {
			return fmt.Errorf("merge %s: %w", filename, err)
		}
		logger.Debug("merged coverage for %s: %d lines, %d functions",
			filename, len(srcFile.Lines), len(srcFile.Functions))
	}
	return nil
}

// MergeAll merges any number of coverage trees into a fresh one,
// left to right.
func MergeAll(trees ...coverage.CovData) (coverage.CovData, error) {
	merged := make(coverage.CovData)
	for _, tree := range trees {
		if err := Merge(merged, tree); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func mergeFile(dst, src *coverage.FileCoverage) error {
	for lineno, srcLine := range src.Lines {
		if err := mergeLineInto(dst, lineno, srcLine); err != nil {
			return err
		}
	}
	for name, srcFunction := range src.Functions {
		mergeFunction(dst.Function(name), srcFunction)
	}
	return nil
}

func mergeLineInto(dst *coverage.FileCoverage, lineno int, srcLine *coverage.LineCoverage) error {
	dstLine, existed := dst.Lines[lineno]
	if !existed {
		var err error
		dstLine, err = dst.LineWithDefaults(lineno, coverage.LineDefaults{
			Count:    srcLine.Count,
			Noncode:  srcLine.Noncode,
			Excluded: srcLine.Excluded,
		})
		if err != nil {
			return err
		}
	} else {
		dstLine.Count += srcLine.Count
		// A line observed as code in any run is code.
		dstLine.Noncode = dstLine.Noncode && srcLine.Noncode
		dstLine.Excluded = dstLine.Excluded || srcLine.Excluded
	}

	for branchID, srcBranch := range srcLine.Branches {
		dstBranch := dstLine.Branch(branchID)
		dstBranch.Count += srcBranch.Count
		dstBranch.Fallthrough = dstBranch.Fallthrough || srcBranch.Fallthrough
		dstBranch.Throw = dstBranch.Throw || srcBranch.Throw
	}

	if err := mergeDecision(dstLine, srcLine.Decision); err != nil {
		return fmt.Errorf("line %d: %w", lineno, err)
	}
	return nil
}

func mergeDecision(dst *coverage.LineCoverage, src coverage.DecisionCoverage) error {
	if src == nil {
		return nil
	}
	if dst.Decision == nil {
		dst.Decision = copyDecision(src)
		return nil
	}

	switch d := dst.Decision.(type) {
	case *coverage.DecisionCoverageUncheckable:
		if !src.IsUncheckable() {
			return mismatchError(dst.Decision, src)
		}
	case *coverage.DecisionCoverageConditional:
		s, ok := src.(*coverage.DecisionCoverageConditional)
		if !ok {
			return mismatchError(dst.Decision, src)
		}
		d.CountTrue += s.CountTrue
		d.CountFalse += s.CountFalse
	case *coverage.DecisionCoverageSwitch:
		s, ok := src.(*coverage.DecisionCoverageSwitch)
		if !ok {
			return mismatchError(dst.Decision, src)
		}
		d.Count += s.Count
	}
	return nil
}

func mergeFunction(dst, src *coverage.FunctionCoverage) {
	dst.Count += src.Count
	if dst.Lineno == 0 {
		dst.Lineno = src.Lineno
	}
}

func mismatchError(dst, src coverage.DecisionCoverage) error {
	return fmt.Errorf("%w: %s vs %s", ErrDecisionMismatch, decisionKind(dst), decisionKind(src))
}

func decisionKind(d coverage.DecisionCoverage) string {
	switch {
	case d.IsConditional():
		return "conditional"
	case d.IsSwitch():
		return "switch"
	default:
		return "uncheckable"
	}
}

func copyDecision(d coverage.DecisionCoverage) coverage.DecisionCoverage {
	switch s := d.(type) {
	case *coverage.DecisionCoverageConditional:
		c := *s
		return &c
	case *coverage.DecisionCoverageSwitch:
		c := *s
		return &c
	default:
		return coverage.NewDecisionCoverageUncheckable()
	}
}
