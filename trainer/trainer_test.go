package trainer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/neurlang/earlystop/callback"
	"github.com/neurlang/earlystop/datasets"
	"github.com/neurlang/earlystop/datasets/xor"
	"github.com/neurlang/earlystop/hashtron"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memo predicts false for anything it has not learned
type memo struct {
	learned map[uint32]bool
	err     error
}

func (m *memo) Learn(batch []datasets.Sample) error {
	if m.err != nil {
		return m.err
	}
	if m.learned == nil {
		m.learned = make(map[uint32]bool)
	}
	for _, s := range batch {
		m.learned[s.Feature] = s.Output
	}
	return nil
}

func (m *memo) Predict(feature uint32) bool { return m.learned[feature] }

func (m *memo) Size() int { return len(m.learned) }

func allTrue(n int) (o []datasets.Sample) {
	for i := 0; i < n; i++ {
		o = append(o, datasets.Sample{Feature: uint32(i), Output: true})
	}
	return
}

func params(t *testing.T) HyperParameters {
	return HyperParameters{
		Threads:      2,
		Epochs:       2,
		BatchSize:    2,
		Significance: 100,
		Logger:       zaptest.NewLogger(t),
	}
}

type recorder struct {
	callback.History
	begun, ended int
	err          error
}

func (r *recorder) OnTrainBegin(logs callback.Logs) error {
	r.begun++
	return r.History.OnTrainBegin(logs)
}

func (r *recorder) OnBatchEnd(batch int, logs callback.Logs) error {
	if r.err != nil {
		return r.err
	}
	return r.History.OnBatchEnd(batch, logs)
}

func (r *recorder) OnTrainEnd(callback.Logs) error {
	r.ended++
	return nil
}

func TestFitStopsAboveThreshold(t *testing.T) {
	model := NewModel(&memo{})
	var rec recorder
	res, err := Fit(context.Background(), model, allTrue(10), params(t), callback.NewAccuracyStop(model), &rec)
	require.NoError(t, err)

	assert.True(t, res.Stopped)
	assert.True(t, model.StopTraining())
	assert.Equal(t, 1, res.Epochs)
	assert.Equal(t, 3, res.Batches)
	assert.InDelta(t, 0.6, res.Accuracy, 1e-9)
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.6}, rec.Metric(MetricAccuracy), 1e-9)
	assert.Len(t, rec.Epochs, 1)
	assert.Equal(t, 1, rec.begun)
	assert.Equal(t, 1, rec.ended)

	last := rec.Last()
	assert.Equal(t, 2.0, last[MetricSize])
	assert.Equal(t, 6.0, last[MetricModelBytes])
	assert.InDelta(t, 0.4, last[MetricLoss], 1e-9)
}

func TestFitRunsAllEpochsBelowThreshold(t *testing.T) {
	model := NewModel(&memo{})
	stop := callback.NewAccuracyStop(model)
	stop.Threshold = 1
	res, err := Fit(context.Background(), model, allTrue(10), params(t), stop)
	require.NoError(t, err)

	assert.False(t, res.Stopped)
	assert.False(t, model.StopTraining())
	assert.Equal(t, 2, res.Epochs)
	assert.Equal(t, 10, res.Batches)
	assert.Equal(t, 1.0, res.Accuracy)
}

func TestFitResetsStopFlag(t *testing.T) {
	model := NewModel(&memo{})
	model.SetStopTraining(true)
	res, err := Fit(context.Background(), model, allTrue(4), params(t))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Batches)
	assert.False(t, res.Stopped)
}

func TestFitCallbackError(t *testing.T) {
	boom := errors.New("boom")
	rec := recorder{err: boom}
	res, err := Fit(context.Background(), NewModel(&memo{}), allTrue(4), params(t), &rec)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, rec.ended)
}

func TestFitLearnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Fit(context.Background(), NewModel(&memo{err: boom}), allTrue(4), params(t))
	assert.True(t, errors.Is(err, boom))
}

func TestFitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var rec recorder
	_, err := Fit(ctx, NewModel(&memo{}), allTrue(4), params(t), &rec)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, rec.Batches)
	assert.Equal(t, 1, rec.ended)
}

func TestFitNoSamples(t *testing.T) {
	_, err := Fit(context.Background(), NewModel(&memo{}), nil, params(t))
	assert.Error(t, err)
}

func TestFitHashtronXor(t *testing.T) {
	h, err := hashtron.New(nil)
	require.NoError(t, err)
	model := NewModel(h)
	p := params(t)
	p.Shuffle = true
	p.Seed = 1

	res, err := Fit(context.Background(), model, datasets.Samples(xor.Dataslice{}), p, callback.NewAccuracyStop(model))
	require.NoError(t, err)
	assert.True(t, res.Stopped)
	assert.Equal(t, 1, res.Epochs)
	assert.Greater(t, res.Accuracy, callback.AccuracyThreshold)
	assert.Greater(t, h.LenQ(), 0)
}

func TestSampleSize(t *testing.T) {
	assert.Equal(t, 278, sampleSize(1000, 95))
	assert.Equal(t, 4, sampleSize(4, 95))
	assert.Equal(t, 1000, sampleSize(1000, 100))
	assert.Equal(t, 1000, sampleSize(1000, 0))
	assert.Equal(t, 0, sampleSize(0, 95))
}

func TestEvaluateFunc(t *testing.T) {
	var m memo
	samples := allTrue(8)
	require.NoError(t, m.Learn(samples[:2]))
	assert.Equal(t, 0.25, NewEvaluateFunc(&m, samples, 100, 3)())
	assert.Zero(t, NewEvaluateFunc(&m, nil, 100, 3)())
}

func TestLoadHyperParameters(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "h.yaml")
	require.NoError(t, os.WriteFile(file, []byte("epochs: 3\nbatch_size: 5\nshuffle: true\nseed: 9\n"), 0o644))

	h, err := LoadHyperParameters(file)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Epochs)
	assert.Equal(t, 5, h.BatchSize)
	assert.True(t, h.Shuffle)
	assert.Equal(t, int64(9), h.Seed)
	assert.Equal(t, byte(95), h.Significance)
	assert.Greater(t, h.Threads, 0)
	assert.NotNil(t, h.Logger)

	require.NoError(t, os.WriteFile(file, []byte("significance: 101\n"), 0o644))
	_, err = LoadHyperParameters(file)
	assert.Error(t, err)

	_, err = LoadHyperParameters(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
