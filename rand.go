// Package javarand implements the 48-bit linear congruential pseudo-random
// number generator used by java.util.Random. Given the same seed, a Rand
// produces the same values as the Java reference, bit for bit: raw bits,
// integers, bounded integers, booleans, byte streams, floats and Gaussian
// deviates, including the rejection sampling of the bounded path and the
// cached second value of each Gaussian pair.
//
// The generator trades statistical quality for reproducibility. It is meant
// for replaying sequences across languages and platforms (fixtures, world
// generation, deterministic simulations), not for simulation-grade or
// cryptographic randomness.
package javarand

import (
	"github.com/alaingilbert/javarand/internal/utils"
	"github.com/jonboulle/clockwork"
)

// LCG parameters, identical to java.util.Random.
const (
	multiplier = 0x5DEECE66D
	increment  = 0xB
	stateMask  = 1<<48 - 1
)

// Rand holds the generator state. Every derived value is a pure function of
// the seed and the sequence of calls made since seeding.
//
// A Rand is not safe for concurrent use by multiple goroutines; the
// package-level functions are.
type Rand struct {
	state    uint64  // low 48 bits of the LCG state, upper 16 bits always zero
	gauss    float64 // second deviate of the last Box-Muller pair
	hasGauss bool    // whether gauss is still to be consumed
}

//-----------------------------------------------------------------------------

// New returns a generator seeded with the given value.
func New(seed int64) *Rand {
	return newRand(seed)
}

// NewRandomized returns a generator seeded with a value very likely to be
// distinct from any other call to NewRandomized, in this process or another.
func NewRandomized(opts ...Option) *Rand {
	return newRandomized(opts...)
}

// SetSeed reseeds the generator so that it behaves exactly as if it had just
// been created with New(seed). A pending Gaussian value is discarded.
func (r *Rand) SetSeed(seed int64) {
	r.setSeed(seed)
}

// Clone returns a copy of the generator. The copy produces the same
// subsequent sequence as the original, and the two then evolve independently.
func (r *Rand) Clone() *Rand {
	cp := *r
	return &cp
}

// Next advances the state one step and returns the top bits of the new
// 48-bit state. It panics if more than 48 bits are requested. This is the
// primitive every other derivation is built on.
func (r *Rand) Next(bits uint) uint64 {
	return r.next(bits)
}

// Int32 returns the next 32 bits reinterpreted as a signed value.
func (r *Rand) Int32() int32 {
	return int32(r.next(32))
}

// Uint32 returns the next 32 bits.
func (r *Rand) Uint32() uint32 {
	return uint32(r.next(32))
}

// Uint64 returns two successive 32-bit draws concatenated, high word first.
// The low word is zero-extended before the add, unlike java.util.Random
// nextLong which sign-extends it, so the two differ by 1<<32 whenever the
// low draw has its top bit set.
func (r *Rand) Uint64() uint64 {
	return r.uint64()
}

// Int64 returns Uint64 reinterpreted as signed.
func (r *Rand) Int64() int64 {
	return int64(r.uint64())
}

// Bool returns the next single bit as a boolean.
func (r *Rand) Bool() bool {
	return r.next(1) == 1
}

//-----------------------------------------------------------------------------

func newRand(seed int64) *Rand {
	r := new(Rand)
	r.setSeed(seed)
	return r
}

func newRandomized(opts ...Option) *Rand {
	cfg := utils.BuildConfig(opts)
	clock := utils.Or(cfg.Clock, clockwork.NewRealClock())
	return newRand(seedUniquifier() ^ clock.Now().UnixNano())
}

func (r *Rand) setSeed(seed int64) {
	r.state = scramble(seed)
	r.hasGauss = false
}

func (r *Rand) next(bits uint) uint64 {
	if bits > 48 {
		panic("javarand: more than 48 bits requested")
	}
	r.state = (r.state*multiplier + increment) & stateMask
	return r.state >> (48 - bits)
}

func (r *Rand) uint64() uint64 {
	hi := r.next(32)
	lo := r.next(32)
	return hi<<32 + lo
}
