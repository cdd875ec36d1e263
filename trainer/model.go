package trainer

import "github.com/neurlang/earlystop/datasets"

// Learner is the classifier being trained
type Learner interface {

	// Learn updates the classifier with one batch
	Learn(batch []datasets.Sample) error

	// Predict classifies one feature
	Predict(feature uint32) bool

	// Size reports the classifier size in bytes
	Size() int
}

// Model is the learner together with its training state. It is not safe for
// concurrent use; the trainer only touches it from the batch loop.
type Model struct {
	Learner

	stop bool
}

// NewModel wraps the learner
func NewModel(l Learner) *Model {
	if l == nil {
		panic("trainer: nil learner")
	}
	return &Model{Learner: l}
}

// StopTraining reports whether a callback requested training to stop
func (m *Model) StopTraining() bool {
	return m.stop
}

// SetStopTraining sets the stop training flag, checked by Fit after every batch
func (m *Model) SetStopTraining(stop bool) {
	m.stop = stop
}
