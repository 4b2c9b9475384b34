package coverage

import (
	"sort"
	"strconv"
	"strings"
)

// FileCoverage represents coverage information about a source file.
type FileCoverage struct {
	// Filename identifies the source file.
	Filename string `json:"filename"`
	// Lines holds the per-line coverage, keyed by 1-based line number.
	Lines map[int]*LineCoverage `json:"lines"`
	// Functions holds the per-function coverage, keyed by function name.
	Functions map[string]*FunctionCoverage `json:"functions"`
}

// LineDefaults are the initial values applied when a line entry is first
// created. They are ignored for lines that already exist.
type LineDefaults struct {
	Count    int
	Noncode  bool
	Excluded bool
}

// NewFileCoverage creates an empty FileCoverage for the given file.
func NewFileCoverage(filename string) *FileCoverage {
	return &FileCoverage{
		Filename:  filename,
		Lines:     make(map[int]*LineCoverage),
		Functions: make(map[string]*FunctionCoverage),
	}
}

// Line gets or creates the LineCoverage for that line number. A created
// line starts with count zero and clear flags.
func (fc *FileCoverage) Line(lineno int) (*LineCoverage, error) {
	return fc.LineWithDefaults(lineno, LineDefaults{})
}

// LineWithDefaults gets or creates the LineCoverage for that line
// number. The defaults seed a newly created entry only; an existing
// entry is returned untouched, so repeated accumulation passes never
// overwrite earlier observations.
func (fc *FileCoverage) LineWithDefaults(lineno int, defaults LineDefaults) (*LineCoverage, error) {
	if line, ok := fc.Lines[lineno]; ok {
		return line, nil
	}
	line, err := NewLineCoverage(lineno, defaults.Count, defaults.Noncode, defaults.Excluded)
	if err != nil {
		return nil, err
	}
	if fc.Lines == nil {
		fc.Lines = make(map[int]*LineCoverage)
	}
	fc.Lines[lineno] = line
	return line, nil
}

// Function gets or creates the FunctionCoverage for that function. A
// created entry starts with count zero and an unknown definition line.
func (fc *FileCoverage) Function(name string) *FunctionCoverage {
	if function, ok := fc.Functions[name]; ok {
		return function
	}
	if fc.Functions == nil {
		fc.Functions = make(map[string]*FunctionCoverage)
	}
	function := &FunctionCoverage{Name: name}
	fc.Functions[name] = function
	return function
}

// LineStat summarizes line coverage over the reportable lines of this
// file; noncode lines count toward neither covered nor total.
func (fc *FileCoverage) LineStat() CoverageStat {
	var stat CoverageStat
	for _, line := range fc.Lines {
		if line.IsReportable() {
			stat.Total++
		}
		if line.IsCovered() {
			stat.Covered++
		}
	}
	return stat
}

// BranchStat summarizes branch coverage over all lines of this file.
// Unlike LineStat, branches on noncode lines are included.
func (fc *FileCoverage) BranchStat() CoverageStat {
	var stat CoverageStat
	for _, line := range fc.Lines {
		stat.Add(line.BranchStat())
	}
	return stat
}

// FunctionStat summarizes function coverage over this file.
func (fc *FileCoverage) FunctionStat() CoverageStat {
	stat := CoverageStat{Total: len(fc.Functions)}
	for _, function := range fc.Functions {
		if function.IsCovered() {
			stat.Covered++
		}
	}
	return stat
}

// DecisionStat summarizes decision coverage over all lines of this
// file. Unlike LineStat, decisions on noncode lines are included.
func (fc *FileCoverage) DecisionStat() DecisionCoverageStat {
	var stat DecisionCoverageStat
	for _, line := range fc.Lines {
		stat.Add(line.DecisionStat())
	}
	return stat
}

// UncoveredLines lists the uncovered line numbers of this file in
// ascending order, with consecutive runs compressed into ranges, e.g.
// "1-3,5,7-9". Returns "" when every reportable line is covered.
func (fc *FileCoverage) UncoveredLines() string {
	var uncovered []int
	for lineno, line := range fc.Lines {
		if line.IsUncovered() {
			uncovered = append(uncovered, lineno)
		}
	}
	sort.Ints(uncovered)
	return formatRanges(uncovered)
}

// UncoveredBranches lists the line numbers that have at least one
// uncovered branch, ascending and comma-separated. Branch results are
// not compressed into ranges.
func (fc *FileCoverage) UncoveredBranches() string {
	var uncovered []int
	for lineno, line := range fc.Lines {
		if line.HasUncoveredBranch() {
			uncovered = append(uncovered, lineno)
		}
	}
	sort.Ints(uncovered)

	parts := make([]string, len(uncovered))
	for i, lineno := range uncovered {
		parts[i] = strconv.Itoa(lineno)
	}
	return strings.Join(parts, ",")
}
