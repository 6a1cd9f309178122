package javarand

// Fill fills p with pseudo-random bytes, four bytes per 32-bit draw starting
// with the least significant. A trailing chunk shorter than four bytes takes
// the low bytes of one final draw and discards the rest.
func (r *Rand) Fill(p []byte) {
	r.fill(p)
}

// Read implements io.Reader. It always fills p entirely and never fails,
// which makes a Rand usable as a deterministic entropy source.
func (r *Rand) Read(p []byte) (int, error) {
	r.fill(p)
	return len(p), nil
}

//-----------------------------------------------------------------------------

func (r *Rand) fill(p []byte) {
	for i := 0; i < len(p); {
		v := r.next(32)
		for n := min(len(p)-i, 4); n > 0; n-- {
			p[i] = byte(v)
			v >>= 8
			i++
		}
	}
}
