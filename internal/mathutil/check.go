package mathutil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// IsRate reports whether v is a usable non-negative rate: not NaN and
// not +Inf.
func IsRate(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFiniteVec reports whether every component of v is finite.
func IsFiniteVec(v r3.Vec) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}
