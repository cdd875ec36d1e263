package callback

import "fmt"

import "github.com/pkg/errors"

// ErrInvalidMetric is reported when a monitored metric is missing or is not a number.
var ErrInvalidMetric = errors.New("invalid metric")

// MetricError describes the offending metric. It matches ErrInvalidMetric with errors.Is.
type MetricError struct {
	Metric  string
	Value   float64
	Missing bool
}

func (e *MetricError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: %q is missing", ErrInvalidMetric, e.Metric)
	}
	return fmt.Sprintf("%s: %q is %v", ErrInvalidMetric, e.Metric, e.Value)
}

func (e *MetricError) Is(target error) bool {
	return target == ErrInvalidMetric
}
