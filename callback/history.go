package callback

// History records the logs of every batch and every epoch of a training run.
// It is reset at the start of each run.
type History struct {
	Batches []Logs
	Epochs  []Logs
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

func (h *History) OnTrainBegin(Logs) error {
	h.Batches = nil
	h.Epochs = nil
	return nil
}

func (h *History) OnBatchEnd(_ int, logs Logs) error {
	h.Batches = append(h.Batches, logs.Clone())
	return nil
}

func (h *History) OnEpochEnd(_ int, logs Logs) error {
	h.Epochs = append(h.Epochs, logs.Clone())
	return nil
}

// Metric returns the per batch values of the named metric.
// Batches not reporting the metric are skipped.
func (h *History) Metric(name string) (o []float64) {
	for _, logs := range h.Batches {
		if v, ok := logs.Get(name); ok {
			o = append(o, v)
		}
	}
	return
}

// Last returns the logs of the last batch, or nil.
func (h *History) Last() Logs {
	if len(h.Batches) == 0 {
		return nil
	}
	return h.Batches[len(h.Batches)-1]
}
