// Package xor implements the XOR Dataset, two input bits packed into the feature
package xor

import "github.com/neurlang/earlystop/datasets"

type Dataslice struct{}

func (d Dataslice) Get(n int) datasets.Sample {
	a, b := uint32(n)&1, (uint32(n)>>1)&1
	return datasets.Sample{
		Feature: a | b<<1,
		Output:  a != b,
	}
}

func (d Dataslice) Len() int {
	return 4
}
