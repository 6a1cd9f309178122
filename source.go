package javarand

import (
	"math"
	"math/rand"
)

type source struct {
	rand *Rand
}

// Assert that source implements rand.Source64.
var _ rand.Source64 = (*source)(nil)

// NewSource returns a math/rand source driven by a generator seeded with the
// given value, so the math/rand helpers (shuffling, permutations, weighted
// draws) can run on top of this sequence. The returned source implements
// [math/rand.Source64] and is not safe for concurrent use.
func NewSource(seed int64) rand.Source64 {
	return &source{rand: newRand(seed)}
}

func (s *source) Int63() int64 {
	return int64(s.rand.uint64() & (math.MaxUint64 >> 1))
}

func (s *source) Uint64() uint64 {
	return s.rand.uint64()
}

func (s *source) Seed(seed int64) {
	s.rand.setSeed(seed)
}
