package javarand

import "sync/atomic"

// scramble turns a user seed into the initial 48-bit state.
func scramble(seed int64) uint64 {
	return (uint64(seed) ^ multiplier) & stateMask
}

// uniquifier is initialized in its declaration so it is ready before the
// init() that seeds the package-level generator runs.
var uniquifier = func() *atomic.Int64 {
	u := new(atomic.Int64)
	u.Store(8682522807148012)
	return u
}()

// seedUniquifier returns the next value of a process-wide multiplicative
// sequence, mixed into randomized seeds so that generators created within
// the same clock tick still diverge. Constants are the ones java.util.Random
// uses, from L'Ecuyer, "Tables of linear congruential generators of
// different sizes and good lattice structure", 1999.
func seedUniquifier() int64 {
	for {
		cur := uniquifier.Load()
		next := cur * 1181783497276652981
		if uniquifier.CompareAndSwap(cur, next) {
			return next
		}
	}
}
