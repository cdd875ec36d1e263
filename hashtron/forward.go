package hashtron

// hash is the fast modular hash, n salted by s, reduced to 0..max-1
func hash(n uint32, s uint32, max uint32) uint32 {
	var m = n - s

	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	m += s

	// Lemire's multiply shift instead of modulo
	return uint32((uint64(m) * uint64(max)) >> 32)
}

// Forward runs the hashing program on command, ignoring learned samples
func (h Hashtron) Forward(command uint32) bool {
	if h.Len() == 0 {
		return false
	}
	var s, max = h.Get(0)
	var out = hash(command, s, max)
	for i := 1; i < h.Len(); i++ {
		s, max = h.Get(i)
		out = hash(out, s, max)
	}
	return out&1 != 0
}

// Predict answers learned features from memory and everything else using Forward
func (h Hashtron) Predict(feature uint32) bool {
	if out, ok := h.learned[feature]; ok {
		return out
	}
	return h.Forward(feature)
}
