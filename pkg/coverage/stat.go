package coverage

import "math"

// CoverageStat is a single coverage metric, e.g. the line coverage of a file.
type CoverageStat struct {
	// Covered is how many elements were covered.
	Covered int `json:"covered"`
	// Total is how many elements there were in total.
	Total int `json:"total"`
}

// Add accumulates another stat into this one.
func (s *CoverageStat) Add(other CoverageStat) {
	s.Covered += other.Covered
	s.Total += other.Total
}

// Percent returns the percentage of covered elements. The second return
// value is false when Total is zero, in which case no percentage exists.
//
// The percentage is rounded to one decimal and capped at 99.9 unless
// everything is covered: CoverageStat{9999, 10000} reports 99.9 while
// CoverageStat{10000, 10000} reports exactly 100.0, so partial coverage
// never displays as complete.
func (s CoverageStat) Percent() (float64, bool) {
	if s.Total == 0 {
		return 0, false
	}

	// Return 100% only if covered == total.
	if s.Covered == s.Total {
		return 100.0, true
	}

	// There is at least one uncovered item.
	// Round to 1 decimal and clamp to max 99.9%.
	// The percentage must be computed before rounding: scaling the
	// ratio by 1000 in a single step can land on a .5 midpoint that
	// the percentage itself is not on, e.g. for 23/80.
	percent := float64(s.Covered) / float64(s.Total) * 100.0
	percent = math.RoundToEven(percent*10.0) / 10.0
	return math.Min(99.9, percent), true
}

// PercentOr returns the percentage of covered elements, or def when
// Total is zero.
func (s CoverageStat) PercentOr(def float64) float64 {
	if percent, ok := s.Percent(); ok {
		return percent
	}
	return def
}

// DecisionCoverageStat is a CoverageStat for decision coverage. It
// additionally tracks decisions that could not be checked.
type DecisionCoverageStat struct {
	Covered     int `json:"covered"`
	Uncheckable int `json:"uncheckable"`
	Total       int `json:"total"`
}

// Add accumulates another stat into this one.
func (s *DecisionCoverageStat) Add(other DecisionCoverageStat) {
	s.Covered += other.Covered
	s.Uncheckable += other.Uncheckable
	s.Total += other.Total
}

// CoverageStat drops the uncheckable count, keeping covered and total.
// Uncheckable decisions stay inside Total, so they lower the percentage
// without ever counting as covered.
func (s DecisionCoverageStat) CoverageStat() CoverageStat {
	return CoverageStat{Covered: s.Covered, Total: s.Total}
}

// Percent returns the percentage of covered decisions; see
// CoverageStat.Percent for the rounding rules.
func (s DecisionCoverageStat) Percent() (float64, bool) {
	return s.CoverageStat().Percent()
}

// PercentOr returns the percentage of covered decisions, or def when
// Total is zero.
func (s DecisionCoverageStat) PercentOr(def float64) float64 {
	return s.CoverageStat().PercentOr(def)
}
