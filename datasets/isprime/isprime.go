// Package isprime implements the IsPrime Dataset, numbers below N labelled by primality
package isprime

import "github.com/jbarham/primegen"

import "github.com/neurlang/earlystop/datasets"

// Dataslice holds the numbers 0..N-1
type Dataslice struct {
	primes map[uint32]struct{}
	n      int
}

// New generates the primes below n
func New(n int) *Dataslice {
	if n < 0 {
		n = 0
	}
	d := &Dataslice{primes: make(map[uint32]struct{}), n: n}
	pg := primegen.New()
	for p := pg.Next(); p < uint64(n); p = pg.Next() {
		d.primes[uint32(p)] = struct{}{}
	}
	return d
}

func (d *Dataslice) Get(n int) datasets.Sample {
	_, prime := d.primes[uint32(n)]
	return datasets.Sample{Feature: uint32(n), Output: prime}
}

func (d *Dataslice) Len() int {
	return d.n
}
