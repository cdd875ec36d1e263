// Package callback implements training loop observers for the Neurlang trainer.
// A callback is anything implementing BatchEnder. The other lifecycle hooks
// (TrainBeginner, EpochBeginner, EpochEnder, TrainEnder) are optional and are
// discovered by the trainer at run time.
package callback
