package callback

import "github.com/pkg/errors"
import "go.uber.org/multierr"

// List dispatches training events to callbacks in registration order.
// Dispatch stops at the first callback returning an error, except for
// OnTrainEnd which reaches every callback and combines their errors.
type List []BatchEnder

// NewList returns a List of the non-nil callbacks.
func NewList(callbacks ...BatchEnder) List {
	var l = make(List, 0, len(callbacks))
	for _, c := range callbacks {
		if c != nil {
			l = append(l, c)
		}
	}
	return l
}

func (l List) OnTrainBegin(logs Logs) error {
	for i, c := range l {
		if tb, ok := c.(TrainBeginner); ok {
			if err := tb.OnTrainBegin(logs); err != nil {
				return errors.Wrapf(err, "callback #%d: train begin", i)
			}
		}
	}
	return nil
}

func (l List) OnEpochBegin(epoch int, logs Logs) error {
	for i, c := range l {
		if eb, ok := c.(EpochBeginner); ok {
			if err := eb.OnEpochBegin(epoch, logs); err != nil {
				return errors.Wrapf(err, "callback #%d: epoch %d begin", i, epoch)
			}
		}
	}
	return nil
}

func (l List) OnBatchEnd(batch int, logs Logs) error {
	for i, c := range l {
		if err := c.OnBatchEnd(batch, logs); err != nil {
			return errors.Wrapf(err, "callback #%d: batch %d end", i, batch)
		}
	}
	return nil
}

func (l List) OnEpochEnd(epoch int, logs Logs) error {
	for i, c := range l {
		if ee, ok := c.(EpochEnder); ok {
			if err := ee.OnEpochEnd(epoch, logs); err != nil {
				return errors.Wrapf(err, "callback #%d: epoch %d end", i, epoch)
			}
		}
	}
	return nil
}

func (l List) OnTrainEnd(logs Logs) (err error) {
	for i, c := range l {
		if te, ok := c.(TrainEnder); ok {
			if e := te.OnTrainEnd(logs); e != nil {
				err = multierr.Append(err, errors.Wrapf(e, "callback #%d: train end", i))
			}
		}
	}
	return
}
