package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neurlang/earlystop/callback"
	"github.com/neurlang/earlystop/datasets"
	"github.com/neurlang/earlystop/datasets/isprime"
	"github.com/neurlang/earlystop/datasets/xor"
	"github.com/neurlang/earlystop/hashtron"
	"github.com/neurlang/earlystop/trainer"
)

type options struct {
	config        string
	dataset       string
	primes        int
	epochs        int
	batchSize     int
	threshold     float64
	requireMetric bool
	verbose       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "train_xor",
		Short:        "Train a hashtron until the batch accuracy exceeds the threshold",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.config, "config", "", "YAML hyperparameters file")
	f.StringVar(&o.dataset, "dataset", "xor", "dataset to train on: xor or isprime")
	f.IntVar(&o.primes, "primes", 1000, "size of the isprime dataset")
	f.IntVar(&o.epochs, "epochs", 0, "number of epochs (overrides config)")
	f.IntVar(&o.batchSize, "batch-size", 0, "batch size (overrides config)")
	f.Float64Var(&o.threshold, "threshold", callback.AccuracyThreshold, "stop when the batch accuracy exceeds this")
	f.BoolVar(&o.requireMetric, "require-metric", false, "fail when a batch reports no accuracy")
	f.BoolVar(&o.verbose, "verbose", false, "development logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadSamples(o options) ([]datasets.Sample, error) {
	switch o.dataset {
	case "xor":
		return datasets.Samples(xor.Dataslice{}), nil
	case "isprime":
		return datasets.Samples(isprime.New(o.primes)), nil
	default:
		return nil, errors.Errorf("unknown dataset %q", o.dataset)
	}
}

func run(ctx context.Context, cmd *cobra.Command, o options) (err error) {
	var h trainer.HyperParameters
	if o.config != "" {
		if h, err = trainer.LoadHyperParameters(o.config); err != nil {
			return err
		}
	}
	if o.epochs > 0 {
		h.Epochs = o.epochs
	}
	if o.batchSize > 0 {
		h.BatchSize = o.batchSize
	}

	samples, err := loadSamples(o)
	if err != nil {
		return err
	}

	logger, err := newLogger(o.verbose)
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer logger.Sync()
	h.Logger = logger

	net, err := hashtron.New(nil)
	if err != nil {
		return err
	}
	model := trainer.NewModel(net)

	stop := callback.NewAccuracyStop(model)
	stop.Threshold = o.threshold
	stop.RequireMetric = o.requireMetric
	history := callback.NewHistory()

	res, err := trainer.Fit(ctx, model, samples, h, stop, history)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, acc := range history.Metric(trainer.MetricAccuracy) {
		fmt.Fprintf(out, "batch %d accuracy %.4f\n", i, acc)
	}
	fmt.Fprintf(out, "epochs: %d batches: %d stopped: %v accuracy: %.4f\n",
		res.Epochs, res.Batches, res.Stopped, res.Accuracy)
	return nil
}
