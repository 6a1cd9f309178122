// Package strictmath provides software implementations of the transcendental
// functions the generator depends on, with results that carry the same bit
// pattern on every platform.
//
// The standard library gets within one ulp of the correctly rounded result,
// which is not enough here: libm-backed builds can differ from the pure Go
// code in the last bit, and on architectures with fused multiply-add the
// compiler is free to contract intermediate products. The functions in this
// package transcribe the fdlibm 5.3 sources, the same ones
// java.lang.StrictMath is specified against, and force every intermediate
// product to round to float64 so no step can be contracted.
package strictmath

import "math"

// Constants from fdlibm e_log.c: the split of log(2), the scale that moves
// subnormal inputs into the normal range, and the minimax polynomial
// coefficients.
const (
	ln2Hi = 6.93147180369123816490e-01 // 3fe62e42fee00000
	ln2Lo = 1.90821492927058770002e-10 // 3dea39ef35793c76
	two54 = 1.80143985094819840000e+16 // 4350000000000000
	l1    = 6.666666666666735130e-01   // 3fe5555555555593
	l2    = 3.999999999940941908e-01   // 3fd999999997fa04
	l3    = 2.857142874366239149e-01   // 3fd2492494229359
	l4    = 2.222219843214978396e-01   // 3fcc71c51d8e78af
	l5    = 1.818357216161805012e-01   // 3fc7466496cb03de
	l6    = 1.531383769920937332e-01   // 3fc39a09d078c69f
	l7    = 1.479819860511658591e-01   // 3fc2f112df3e5244
)

// Log returns the natural logarithm of x, bit-identical to
// java.lang.StrictMath.log.
//
// The body transcribes fdlibm's __ieee754_log: the argument is reduced by
// rewriting the high word of x, with the halving cut at mantissa high word
// 0x6a09c rather than at sqrt(2)/2 exactly; inputs within 2**-20 of 1 take a
// short polynomial; and the tail is assembled in one of two shapes selected
// by the reduced mantissa. The last bit of the result depends on each of
// these choices.
//
// The float64 conversions are load-bearing: each one rounds a product before
// it reaches an addition, which keeps the compiler from fusing the pair into
// a single FMA instruction.
func Log(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}

	bx := math.Float64bits(x)
	hx := int32(bx >> 32)
	var k int32
	if hx < 0x00100000 { // subnormal, scale into the normal range
		k -= 54
		x *= two54
		bx = math.Float64bits(x)
		hx = int32(bx >> 32)
	}
	k += hx>>20 - 1023
	hx &= 0x000fffff
	i := (hx + 0x95f64) & 0x100000
	// Rewrite the exponent so x lands in [1, 2), or in [0.5, 1) when the
	// mantissa high word reaches 0x6a09c, keeping the low word as is.
	x = math.Float64frombits(uint64(uint32(hx|(i^0x3ff00000)))<<32 | bx&0xffffffff)
	k += i >> 20
	f := x - 1

	if 0x000fffff&(2+hx) < 3 { // |f| < 2**-20
		if f == 0 {
			if k == 0 {
				return 0
			}
			dk := float64(k)
			return float64(dk*ln2Hi) + float64(dk*ln2Lo)
		}
		r := float64(f * f * float64(0.5-float64(0.33333333333333333*f)))
		if k == 0 {
			return f - r
		}
		dk := float64(k)
		return float64(dk*ln2Hi) - ((r - float64(dk*ln2Lo)) - f)
	}

	s := f / (2 + f)
	dk := float64(k)
	z := s * s
	w := z * z
	t1 := float64(w * float64(l2+float64(w*float64(l4+float64(w*l6)))))
	t2 := float64(z * float64(l1+float64(w*float64(l3+float64(w*float64(l5+float64(w*l7)))))))
	r := t2 + t1
	// Positive exactly when 0x6147a <= hx <= 0x6b851.
	i = hx - 0x6147a
	i |= 0x6b851 - hx
	if i > 0 {
		hfsq := float64(0.5 * f * f)
		if k == 0 {
			return f - (hfsq - float64(s*(hfsq+r)))
		}
		return float64(dk*ln2Hi) - ((hfsq - (float64(s*(hfsq+r)) + float64(dk*ln2Lo))) - f)
	}
	if k == 0 {
		return f - float64(s*(f-r))
	}
	return float64(dk*ln2Hi) - ((float64(s*(f-r)) - float64(dk*ln2Lo)) - f)
}
