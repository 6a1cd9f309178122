package javarand

// Int32N returns a uniformly distributed value in [0, n). It panics if n is
// not positive.
func (r *Rand) Int32N(n int32) int32 {
	return r.int32n(n)
}

// Uint32N is Int32N for an unsigned bound. The bound is reinterpreted as
// signed, so it must stay below 1<<31 or the sign check panics.
func (r *Rand) Uint32N(n uint32) uint32 {
	return uint32(r.int32n(int32(n)))
}

//-----------------------------------------------------------------------------

func (r *Rand) int32n(n int32) int32 {
	if n <= 0 {
		panic("javarand: bound must be positive")
	}
	if n&(n-1) == 0 { // power of two, scale a 31-bit draw instead
		return int32(int64(n) * int64(r.next(31)) >> 31)
	}
	// bits%n is biased when 1<<31 is not a multiple of n; redraw whenever
	// bits landed in the truncated tail, detected by the wraparound below.
	bits := int32(r.next(31))
	val := bits % n
	for bits-val+(n-1) < 0 {
		bits = int32(r.next(31))
		val = bits % n
	}
	return val
}
