// Package trainer provides high-level training orchestration for Neurlang classifiers.
// It runs the epoch and batch loop, measures accuracy after every batch and
// dispatches the results to callbacks, which may request training to stop.
package trainer
