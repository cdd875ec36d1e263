package callback

import "math"

// AccuracyThreshold is the batch accuracy above which AccuracyStop ends training.
const AccuracyThreshold = 0.5

// AccuracyMetric is the name of the accuracy metric in Logs.
const AccuracyMetric = "accuracy"

// AccuracyStop requests the model to stop training as soon as the batch
// accuracy is strictly greater than Threshold.
//
// A batch without the monitored metric is treated as not exceeding the
// threshold, unless RequireMetric is set, in which case it is an error.
// A metric which is NaN or infinite is always an error.
type AccuracyStop struct {
	Monitor       string
	Threshold     float64
	RequireMetric bool

	model Model
}

// NewAccuracyStop returns an AccuracyStop watching "accuracy" against AccuracyThreshold.
func NewAccuracyStop(model Model) *AccuracyStop {
	if model == nil {
		panic("accuracy stop: nil model")
	}
	return &AccuracyStop{
		Monitor:   AccuracyMetric,
		Threshold: AccuracyThreshold,
		model:     model,
	}
}

// OnBatchEnd implements BatchEnder. The batch number is not used.
func (a *AccuracyStop) OnBatchEnd(_ int, logs Logs) error {
	value, ok := logs.Get(a.Monitor)
	if !ok {
		if a.RequireMetric {
			return &MetricError{Metric: a.Monitor, Missing: true}
		}
		return nil
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &MetricError{Metric: a.Monitor, Value: value}
	}
	if value > a.Threshold {
		a.model.SetStopTraining(true)
	}
	return nil
}
