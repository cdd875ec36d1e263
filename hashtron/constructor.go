package hashtron

import "errors"
import "math/rand"

// New creates a hashtron with the hashing program. A nil program gets one random salted command.
func New(program [][2]uint32) (h *Hashtron, err error) {
	h = new(Hashtron)
	if program == nil {
		h.program = [][2]uint32{{rand.Uint32() >> 1, 2}}
	} else {
		for _, cmd := range program {
			if cmd[1] < 2 {
				return nil, errors.New("hashtron: command modulo below 2")
			}
		}
		h.program = program
	}
	h.learned.Init()
	return
}
