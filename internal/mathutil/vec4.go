package mathutil

import "math"

// Vec4 is a flattened quaternion (or any 4-component vector). Spring
// integration of rotations runs on Vec4 before renormalising, so velocities
// are never stored as quaternions.
type Vec4 struct {
	X, Y, Z, W float64
}

// Add4 returns p + q.
func Add4(p, q Vec4) Vec4 {
	return Vec4{p.X + q.X, p.Y + q.Y, p.Z + q.Z, p.W + q.W}
}

// Sub4 returns p - q.
func Sub4(p, q Vec4) Vec4 {
	return Vec4{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.W - q.W}
}

// Scale4 returns f * p.
func Scale4(f float64, p Vec4) Vec4 {
	return Vec4{f * p.X, f * p.Y, f * p.Z, f * p.W}
}

// Dot4 returns the dot product of p and q.
func Dot4(p, q Vec4) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z + p.W*q.W
}

// Norm4 returns the Euclidean length of p.
func Norm4(p Vec4) float64 {
	return math.Sqrt(Dot4(p, p))
}

// Unit4 returns p scaled to unit length. A near-zero vector yields the
// zero vector rather than NaN.
func Unit4(p Vec4) Vec4 {
	n := Norm4(p)
	if n < normEpsilon {
		return Vec4{}
	}
	return Scale4(1/n, p)
}

// Lerp4 blends a toward b by t component-wise.
func Lerp4(a, b Vec4, t float64) Vec4 {
	return Vec4{
		Lerp(a.X, b.X, t),
		Lerp(a.Y, b.Y, t),
		Lerp(a.Z, b.Z, t),
		Lerp(a.W, b.W, t),
	}
}
