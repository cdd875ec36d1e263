// Package hashtron implements a hashtron (classifier)
package hashtron

import "github.com/neurlang/earlystop/datasets"

// Hashtron represents individual hashtron (classifier) in memory.
// It remembers every learned sample and answers unseen features by its hashing program.
type Hashtron struct {
	program [][2]uint32

	learned    datasets.Dataset
	quaternary []byte
}

// Get gets the hashing command at position n
func (h Hashtron) Get(n int) (s uint32, max uint32) {
	return h.program[n][0], h.program[n][1]
}

// Len gets the number of hashing commands (size of hashtron program)
func (h Hashtron) Len() int {
	return len(h.program)
}

// LenQ gets the size of learned data (size of quaternary filter)
func (h Hashtron) LenQ() int {
	return len(h.quaternary)
}

// Size reports the model size in bytes, the program plus the quaternary filter
func (h Hashtron) Size() int {
	return 8*h.Len() + h.LenQ()
}

// Learned gets the number of learned samples
func (h Hashtron) Learned() int {
	return len(h.learned)
}
