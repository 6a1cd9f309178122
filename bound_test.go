package javarand

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestGoldenInt32N(t *testing.T) {
	cases := []struct {
		seed  int64
		bound int32
		want  []int32
	}{
		{42, 10, []int32{0, 3, 8, 4, 0, 5, 5, 8, 9, 3, 2, 2, 6, 2, 6, 2}},
		{42, 65536, []int32{
			47681, 3582, 44775, 3141, 20232, 61739, 18158, 46380,
			43617, 5985, 59203, 29573, 24168, 25011, 18071, 45247,
		}},
		{42, 999999999, []int32{
			562431131, 117392763, 467211249, 102948884, 662969970, 595021505, 519796919, 429255520,
			196118093, 939977183, 969067502, 791955276, 819572292, 592164476, 482678033, 995688456,
		}},
		{42, 1431655766, []int32{
			117392763, 102948884, 662969970, 595021505, 1429255519, 196118093, 969067502, 791955276,
			819572292, 592164476, 995688456, 326327863, 937357226, 944462913, 830146030, 380917387,
		}},
		{7, 16, []int32{11, 10, 11, 0, 5, 7, 14, 11, 11, 9, 5, 15, 1, 4, 13, 11}},
	}
	for _, c := range cases {
		r := New(c.seed)
		for i, want := range c.want {
			assert.Equal(t, want, r.Int32N(c.bound), "seed %d bound %d value %d", c.seed, c.bound, i)
		}
	}
}

// 1431655766 is 2/3 of the 31-bit range, the worst case for the rejection
// loop: just under half of all draws land in the biased tail and have to be
// thrown away.
func TestInt32NRejection(t *testing.T) {
	r := New(0)
	twin := New(0)
	assert.Equal(t, int32(516548029), r.Int32N(1431655766))
	step(twin, 3) // two draws rejected before the accepted one
	assert.Equal(t, twin.state, r.state)

	want := []int32{1302116447, 1368843515, 663681053, 1182054491, 251269761, 1283218719, 715581077}
	for _, w := range want {
		assert.Equal(t, w, r.Int32N(1431655766))
	}
	step(twin, 8) // 11 draws total for the 8 values
	assert.Equal(t, twin.state, r.state)
}

func TestInt32NDrawCounts(t *testing.T) {
	cases := []struct {
		seed   int64
		bound  int32
		values int
		draws  int
	}{
		{42, 10, 16, 16},
		{42, 65536, 16, 16},
		{42, 999999999, 16, 17},
		{42, 1431655766, 16, 29},
		{7, 16, 16, 16},
	}
	for _, c := range cases {
		r, twin := New(c.seed), New(c.seed)
		for i := 0; i < c.values; i++ {
			r.Int32N(c.bound)
		}
		step(twin, c.draws)
		assert.Equal(t, twin.state, r.state, "seed %d bound %d", c.seed, c.bound)
	}
}

func TestInt32NRange(t *testing.T) {
	r := New(99)
	for _, bound := range []int32{1, 2, 3, 7, 10, 100, 1 << 20, 1 << 30, 1<<31 - 1} {
		for i := 0; i < 1000; i++ {
			v := r.Int32N(bound)
			assert.GreaterOrEqual(t, v, int32(0), "bound %d", bound)
			assert.Less(t, v, bound, "bound %d", bound)
		}
	}
}

func TestInt32NPanicsOnNonPositiveBound(t *testing.T) {
	r := New(42)
	for _, bound := range []int32{0, -1, -1 << 31} {
		assert.PanicsWithValue(t, "javarand: bound must be positive", func() {
			r.Int32N(bound)
		})
	}
	// the failed calls must not have consumed any draws
	assert.Equal(t, scramble(42), r.state)
}

func TestUint32N(t *testing.T) {
	r := New(42)
	for _, want := range []uint32{0, 3, 8, 4, 0, 5, 5, 8} {
		assert.Equal(t, want, r.Uint32N(10))
	}
	assert.PanicsWithValue(t, "javarand: bound must be positive", func() {
		r.Uint32N(1 << 31) // reinterprets as negative
	})
}

// The power-of-two path scales a 31-bit draw instead of taking a remainder.
// Check it against the same computation done in arbitrary precision.
func TestInt32NPowerOfTwoScaling(t *testing.T) {
	r, raw := New(7), New(7)
	for i := 0; i < 100; i++ {
		got := r.Int32N(16)
		wide := new(big.Int).Mul(big.NewInt(16), big.NewInt(int64(raw.Next(31))))
		assert.Equal(t, int64(got), wide.Rsh(wide, 31).Int64(), "value %d", i)
	}
}

func TestInt32NDistribution(t *testing.T) {
	r := New(1)
	counts := make([]float64, 10)
	const n = 10000
	for i := 0; i < n; i++ {
		counts[r.Int32N(10)]++
	}
	want := make([]float64, 10)
	for i := range want {
		want[i] = n / 10
	}
	chi2 := stat.ChiSquare(counts, want)
	assert.InDelta(t, 9.516, chi2, 1e-9)
	assert.Less(t, chi2, 21.67) // df=9 at p=0.01
}
