// Package simdops exposes the float64 SIMD kernels used for batch noise
// evaluation and signal analysis.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops bundles the kernels.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	DotProductUnsafe: f64.DotProductUnsafe,
	Interleave2:      f64.Interleave2,
	Sum:              f64.Sum,
	Scale:            f64.Scale,
}

// Float64 returns the float64 kernel table.
func Float64() *Ops {
	return &ops64
}

// Mean returns the arithmetic mean of a, or 0 for an empty slice.
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return ops64.Sum(a) / float64(len(a))
}

// Energy returns the sum of squares of a.
func Energy(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return ops64.DotProductUnsafe(a, a)
}
