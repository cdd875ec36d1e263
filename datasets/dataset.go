// Package datasets implements the Neurlang dataset types used for training
package datasets

import "math/rand"

// Dataset maps a feature to the expected output
type Dataset map[uint32]bool

func (d *Dataset) Init() {
	*d = make(map[uint32]bool)
}

// Sample is one training example
type Sample struct {
	Feature uint32
	Output  bool
}

// Dataslice is an indexable source of samples
type Dataslice interface {
	Get(n int) Sample
	Len() int
}

// Samples materializes the Dataslice
func Samples(d Dataslice) (o []Sample) {
	o = make([]Sample, d.Len())
	for i := range o {
		o[i] = d.Get(i)
	}
	return
}

// Set materializes samples into a Dataset. A later sample overrides an earlier one with the same feature.
func Set(samples []Sample) (set Dataset) {
	set.Init()
	for _, s := range samples {
		set[s.Feature] = s.Output
	}
	return
}

// Batches splits samples into consecutive batches of at most size samples.
// The batches share the backing array of samples.
func Batches(samples []Sample, size int) (o [][]Sample) {
	if size <= 0 {
		size = 1
	}
	for len(samples) > size {
		o = append(o, samples[:size:size])
		samples = samples[size:]
	}
	if len(samples) > 0 {
		o = append(o, samples)
	}
	return
}

// Shuffle returns a shuffled copy of samples, the order is determined by seed
func Shuffle(samples []Sample, seed int64) []Sample {
	var o = make([]Sample, len(samples))
	copy(o, samples)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(o), func(i, j int) { o[i], o[j] = o[j], o[i] })
	return o
}
