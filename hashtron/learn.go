package hashtron

import "github.com/neurlang/quaternary"

import "github.com/neurlang/earlystop/datasets"

// Learn memorizes the batch and rebuilds the quaternary filter of everything learned so far
func (h *Hashtron) Learn(batch []datasets.Sample) error {
	if h.learned == nil {
		h.learned.Init()
	}
	var changed bool
	for _, s := range batch {
		if out, ok := h.learned[s.Feature]; !ok || out != s.Output {
			h.learned[s.Feature] = s.Output
			changed = true
		}
	}
	if !changed {
		return nil
	}
	q := quaternary.Make(h.learned)
	h.quaternary = []byte(q)
	return nil
}
