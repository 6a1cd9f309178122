package javarand

// Float32 returns a uniformly distributed value in [0, 1) with 24 bits of
// precision.
func (r *Rand) Float32() float32 {
	return r.float32()
}

// Float64 returns a uniformly distributed value in [0, 1) with 53 bits of
// precision.
func (r *Rand) Float64() float64 {
	return r.float64()
}

//-----------------------------------------------------------------------------

func (r *Rand) float32() float32 {
	return float32(r.next(24)) / (1 << 24)
}

// float64 concatenates a 26-bit draw and a 27-bit draw, in that order. The
// draw order is part of the sequence contract.
func (r *Rand) float64() float64 {
	hi := int64(r.next(26))
	lo := int64(r.next(27))
	return float64(hi<<27+lo) / (1 << 53)
}
