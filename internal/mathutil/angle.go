package mathutil

import "math"

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	r := t - math.Floor(t/length)*length
	if r < 0 {
		return 0
	}
	if r >= length {
		return 0
	}
	return r
}

// DeltaAngle returns the shortest signed difference target - current in
// degrees, wrapped to (-180, 180].
func DeltaAngle(current, target float64) float64 {
	d := Repeat(target-current, fullTurnDegrees)
	if d > halfTurnDegrees {
		d -= fullTurnDegrees
	}
	return d
}

// Lerp blends a toward b by t without clamping.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
