package callback

// Logs is the metrics record handed to callbacks, metric name to value.
// The trainer builds a fresh Logs for every event. Callbacks must not keep or
// modify it.
type Logs map[string]float64

// Get returns the named metric and whether it is present.
// It is safe to call on a nil Logs.
func (l Logs) Get(name string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	v, ok := l[name]
	return v, ok
}

// Clone returns a copy of the logs which the caller may keep.
func (l Logs) Clone() Logs {
	var o = make(Logs, len(l))
	for k, v := range l {
		o[k] = v
	}
	return o
}

// Model is the part of the training model visible to callbacks.
type Model interface {

	// StopTraining reports whether training was requested to stop.
	StopTraining() bool

	// SetStopTraining requests (or withdraws the request) to stop training.
	SetStopTraining(stop bool)
}

// BatchEnder is the callback capability: it observes the end of each batch.
type BatchEnder interface {
	OnBatchEnd(batch int, logs Logs) error
}

// TrainBeginner is implemented by callbacks wanting to know training started.
type TrainBeginner interface {
	OnTrainBegin(logs Logs) error
}

// TrainEnder is implemented by callbacks wanting to know training finished.
type TrainEnder interface {
	OnTrainEnd(logs Logs) error
}

// EpochBeginner is implemented by callbacks observing the start of each epoch.
type EpochBeginner interface {
	OnEpochBegin(epoch int, logs Logs) error
}

// EpochEnder is implemented by callbacks observing the end of each epoch.
type EpochEnder interface {
	OnEpochEnd(epoch int, logs Logs) error
}
