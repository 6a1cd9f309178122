package javarand

import (
	"math"

	"github.com/alaingilbert/javarand/internal/strictmath"
)

// NormFloat64 returns a normally distributed value with mean 0 and standard
// deviation 1, using the polar Box-Muller transform. Each accepted candidate
// pair yields two deviates; the second is cached and returned by the next
// call without consuming any draws. SetSeed discards a cached value.
func (r *Rand) NormFloat64() float64 {
	return r.normFloat64()
}

//-----------------------------------------------------------------------------

func (r *Rand) normFloat64() float64 {
	if r.hasGauss {
		r.hasGauss = false
		return r.gauss
	}
	var x, y, s float64
	for {
		x = 2*r.float64() - 1
		y = 2*r.float64() - 1
		// The conversions force both squares to round before the add,
		// keeping the compiler from fusing them into an FMA.
		s = float64(x*x) + float64(y*y)
		if s < 1 && s != 0 {
			break
		}
	}
	m := math.Sqrt(-2 * strictmath.Log(s) / s)
	r.gauss = y * m
	r.hasGauss = true
	return x * m
}
