package trainer

import "context"

import "github.com/dustin/go-humanize"
import "github.com/google/uuid"
import "github.com/pkg/errors"
import "go.uber.org/multierr"
import "go.uber.org/zap"

import "github.com/neurlang/earlystop/callback"
import "github.com/neurlang/earlystop/datasets"

// Metric names reported by Fit
const (
	MetricAccuracy   = callback.AccuracyMetric
	MetricLoss       = "loss"
	MetricSize       = "size" // number of samples in the batch
	MetricModelBytes = "model_bytes"
)

// Result summarizes a training run
type Result struct {
	Epochs   int     // epochs started
	Batches  int     // batches trained in total
	Stopped  bool    // a callback requested the stop
	Accuracy float64 // accuracy after the last batch
}

// Fit trains the model on samples, in batches, for h.Epochs epochs.
// After each batch the accuracy is measured and reported to the callbacks.
// Training ends after the batch on which a callback sets the model's stop
// training flag. A callback error aborts training.
func Fit(ctx context.Context, model *Model, samples []datasets.Sample, h HyperParameters, callbacks ...callback.BatchEnder) (res *Result, err error) {
	if len(samples) == 0 {
		return nil, errors.New("fit: no samples")
	}
	h.SetDefaults()
	log := h.Logger.With(zap.String("run", uuid.NewString()))
	cbs := callback.NewList(callbacks...)
	res = new(Result)

	model.SetStopTraining(false)
	log.Info("training started",
		zap.Int("samples", len(samples)),
		zap.Int("epochs", h.Epochs),
		zap.Int("batch_size", h.BatchSize),
		zap.Int("threads", h.Threads))

	if err = cbs.OnTrainBegin(callback.Logs{}); err != nil {
		return nil, err
	}
	defer func() {
		endErr := cbs.OnTrainEnd(callback.Logs{MetricAccuracy: res.Accuracy})
		err = multierr.Append(err, endErr)
		if err != nil {
			res = nil
		}
	}()

	evaluate := NewEvaluateFunc(model, samples, h.Significance, h.Threads)

	for epoch := 0; epoch < h.Epochs && !model.StopTraining(); epoch++ {
		res.Epochs++
		var order = samples
		if h.Shuffle {
			order = datasets.Shuffle(samples, h.Seed+int64(epoch))
		}
		if err = cbs.OnEpochBegin(epoch, callback.Logs{}); err != nil {
			return res, err
		}

		var sumAccuracy float64
		var batches int
		for batch, data := range datasets.Batches(order, h.BatchSize) {
			if err = ctx.Err(); err != nil {
				return res, errors.Wrapf(err, "epoch %d batch %d", epoch, batch)
			}
			if err = model.Learn(data); err != nil {
				return res, errors.Wrapf(err, "learn epoch %d batch %d", epoch, batch)
			}
			res.Batches++
			batches++

			res.Accuracy = evaluate()
			sumAccuracy += res.Accuracy
			logs := callback.Logs{
				MetricAccuracy:   res.Accuracy,
				MetricLoss:       1 - res.Accuracy,
				MetricSize:       float64(len(data)),
				MetricModelBytes: float64(model.Size()),
			}
			log.Debug("batch end",
				zap.Int("epoch", epoch),
				zap.Int("batch", batch),
				zap.Float64("accuracy", res.Accuracy))

			if err = cbs.OnBatchEnd(batch, logs); err != nil {
				return res, errors.Wrapf(err, "epoch %d", epoch)
			}
			if model.StopTraining() {
				res.Stopped = true
				log.Info("training stop requested",
					zap.Int("epoch", epoch),
					zap.Int("batch", batch),
					zap.Float64("accuracy", res.Accuracy),
					zap.String("model", humanize.Bytes(uint64(model.Size()))))
				break
			}
		}

		mean := sumAccuracy / float64(batches)
		if err = cbs.OnEpochEnd(epoch, callback.Logs{
			MetricAccuracy:   mean,
			MetricLoss:       1 - mean,
			MetricModelBytes: float64(model.Size()),
		}); err != nil {
			return res, err
		}
	}

	log.Info("training finished",
		zap.Int("epochs", res.Epochs),
		zap.Int("batches", res.Batches),
		zap.Bool("stopped", res.Stopped),
		zap.Float64("accuracy", res.Accuracy))
	return res, nil
}
