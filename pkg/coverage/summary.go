package coverage

// SummarizedStats bundles the aggregated metrics of a file or project.
type SummarizedStats struct {
	Line     CoverageStat         `json:"line"`
	Branch   CoverageStat         `json:"branch"`
	Function CoverageStat         `json:"function"`
	Decision DecisionCoverageStat `json:"decision"`
}

// SummarizeFile computes the four per-file statistics of fc.
func SummarizeFile(fc *FileCoverage) SummarizedStats {
	return SummarizedStats{
		Line:     fc.LineStat(),
		Branch:   fc.BranchStat(),
		Function: fc.FunctionStat(),
		Decision: fc.DecisionStat(),
	}
}

// Add accumulates another summary into this one, metric by metric.
// Summaries of disjoint coverage trees add up to the summary of their
// union.
func (s *SummarizedStats) Add(other SummarizedStats) {
	s.Line.Add(other.Line)
	s.Branch.Add(other.Branch)
	s.Function.Add(other.Function)
	s.Decision.Add(other.Decision)
}
