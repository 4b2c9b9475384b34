// Package threshold evaluates minimum-coverage requirements against
// summarized statistics. Callers decide what to do with violations;
// typically a CI job fails when any are reported.
package threshold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tfosdike/gcovr/internal/config"
	"github.com/tfosdike/gcovr/internal/logger"
	"github.com/tfosdike/gcovr/pkg/coverage"
)

// Thresholds holds the minimum required percentage per metric. A zero
// value disables the check for that metric.
type Thresholds struct {
	Line     float64 `mapstructure:"line" validate:"gte=0,lte=100"`
	Branch   float64 `mapstructure:"branch" validate:"gte=0,lte=100"`
	Function float64 `mapstructure:"function" validate:"gte=0,lte=100"`
	Decision float64 `mapstructure:"decision" validate:"gte=0,lte=100"`
}

// Violation reports one metric falling short of its threshold.
type Violation struct {
	Metric    string
	Threshold float64
	Actual    float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s coverage %.1f%% is below the required %.1f%%", v.Metric, v.Actual, v.Threshold)
}

// Validate checks that every threshold lies within 0 to 100.
func (t Thresholds) Validate() error {
	err := validator.New().Struct(t)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s=%v", strings.ToLower(fieldErr.Field()), fieldErr.Value()))
		}
		return fmt.Errorf("thresholds must be between 0 and 100: %s", strings.Join(fields, ", "))
	}
	return err
}

// Load reads the "thresholds" section of a YAML config file and
// validates it.
func Load(path string) (Thresholds, error) {
	var t Thresholds
	if err := config.LoadKey(path, "thresholds", &t); err != nil {
		return Thresholds{}, err
	}
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}

// Evaluate compares stats against the thresholds and returns one
// Violation per failing metric, in a fixed order: line, branch,
// function, decision. Metrics with an undefined percentage (no
// elements) never violate, and neither do metrics whose threshold is
// zero.
func Evaluate(stats coverage.SummarizedStats, t Thresholds) []Violation {
	var violations []Violation

	check := func(metric string, threshold float64, stat coverage.CoverageStat) {
		if threshold <= 0 {
			return
		}
		percent, ok := stat.Percent()
		if !ok {
			return
		}
		if percent < threshold {
			v := Violation{Metric: metric, Threshold: threshold, Actual: percent}
			logger.Warn("%s", v)
			violations = append(violations, v)
		}
	}

	check("line", t.Line, stats.Line)
	check("branch", t.Branch, stats.Branch)
	check("function", t.Function, stats.Function)
	check("decision", t.Decision, stats.Decision.CoverageStat())

	return violations
}
