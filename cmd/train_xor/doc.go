// Package main provides a demo program for training with accuracy threshold early stopping.
// It trains a hashtron on the XOR (or IsPrime) dataset in small batches and stops
// as soon as the batch accuracy exceeds the threshold.
package main
