package coverage

import "fmt"

// FunctionCoverage represents coverage information about a function.
type FunctionCoverage struct {
	// Name is the function name as reported by the instrumentation.
	Name string `json:"name"`
	// Lineno is the 1-based line of the function definition, or 0 when
	// the definition line is not known yet.
	Lineno int `json:"lineno,omitempty"`
	// Count is the number of times this function was called.
	Count int `json:"count"`
}

// NewFunctionCoverage creates a FunctionCoverage with the given call
// count. Lineno starts at 0 until a definition line is known.
func NewFunctionCoverage(name string, count int) (*FunctionCoverage, error) {
	if count < 0 {
		return nil, fmt.Errorf("function %q: %w: %d", name, ErrNegativeCount, count)
	}
	return &FunctionCoverage{Name: name, Count: count}, nil
}

// IsCovered reports whether the function was called at least once.
func (f *FunctionCoverage) IsCovered() bool {
	return f.Count > 0
}
