package javarand

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceUint64(t *testing.T) {
	src := NewSource(0)
	assert.Equal(t, uint64(0xbb20b460d4d95138), src.Uint64())
	assert.Equal(t, uint64(0x3d93cb7a9b3970be), src.Uint64())
}

func TestSourceInt63(t *testing.T) {
	src := NewSource(0)
	assert.Equal(t, int64(4260603575473361208), src.Int63())
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, src.Int63(), int64(0))
	}
}

func TestSourceSeed(t *testing.T) {
	src := NewSource(0)
	src.Uint64()
	src.Seed(42)
	assert.Equal(t, uint64(0xba419d350dfe8af7), src.Uint64())
}

func TestSourceWithMathRand(t *testing.T) {
	rr := rand.New(NewSource(42))
	assert.Equal(t, uint64(0xba419d350dfe8af7), rr.Uint64())

	p1 := rand.New(NewSource(7)).Perm(10)
	p2 := rand.New(NewSource(7)).Perm(10)
	assert.Equal(t, p1, p2)
	sorted := slices.Clone(p1)
	slices.Sort(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}
