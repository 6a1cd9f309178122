package javarand

import "github.com/alaingilbert/javarand/internal/mtx"

// global guards a process-wide generator behind the package-level functions,
// for callers that don't need to manage instances themselves.
var global mtx.Mtx[*Rand]

func init() {
	global.Set(newRandomized())
}

// SetSeed reseeds the package-level generator, making the package-level
// functions deterministic from that point on.
func SetSeed(seed int64) { withGlobal(func(r *Rand) { r.setSeed(seed) }) }

// Int32 ...
func Int32() (out int32) {
	withGlobal(func(r *Rand) { out = r.Int32() })
	return
}

// Uint32 ...
func Uint32() (out uint32) {
	withGlobal(func(r *Rand) { out = r.Uint32() })
	return
}

// Int64 ...
func Int64() (out int64) {
	withGlobal(func(r *Rand) { out = r.Int64() })
	return
}

// Uint64 ...
func Uint64() (out uint64) {
	withGlobal(func(r *Rand) { out = r.Uint64() })
	return
}

// Bool ...
func Bool() (out bool) {
	withGlobal(func(r *Rand) { out = r.Bool() })
	return
}

// Float32 ...
func Float32() (out float32) {
	withGlobal(func(r *Rand) { out = r.Float32() })
	return
}

// Float64 ...
func Float64() (out float64) {
	withGlobal(func(r *Rand) { out = r.Float64() })
	return
}

// NormFloat64 ...
func NormFloat64() (out float64) {
	withGlobal(func(r *Rand) { out = r.NormFloat64() })
	return
}

// Int32N ...
func Int32N(n int32) (out int32) {
	withGlobal(func(r *Rand) { out = r.Int32N(n) })
	return
}

// Uint32N ...
func Uint32N(n uint32) (out uint32) {
	withGlobal(func(r *Rand) { out = r.Uint32N(n) })
	return
}

// Fill ...
func Fill(p []byte) {
	withGlobal(func(r *Rand) { r.Fill(p) })
}

//-----------------------------------------------------------------------------

func withGlobal(clb func(r *Rand)) {
	global.With(func(v **Rand) { clb(*v) })
}
