package mathutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis unit vectors.
var (
	AxisX = r3.Vec{X: 1}
	AxisY = r3.Vec{Y: 1}
	AxisZ = r3.Vec{Z: 1}
)

// IdentityQuat is the unit quaternion with no rotation.
var IdentityQuat = quat.Number{Real: 1}

// QuatToVec4 flattens q as (x, y, z, w) = (Imag, Jmag, Kmag, Real).
func QuatToVec4(q quat.Number) Vec4 {
	return Vec4{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

// Vec4ToQuat reinterprets v as a quaternion without normalising.
func Vec4ToQuat(v Vec4) quat.Number {
	return quat.Number{Real: v.W, Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Vec4ToUnitQuat normalises v and reinterprets it as a rotation. A
// degenerate zero vector maps to the identity.
func Vec4ToUnitQuat(v Vec4) quat.Number {
	u := Unit4(v)
	if u == (Vec4{}) {
		return IdentityQuat
	}
	return Vec4ToQuat(u)
}

// NormalizeQuat returns q with unit length, or the identity for q == 0.
func NormalizeQuat(q quat.Number) quat.Number {
	return Vec4ToUnitQuat(QuatToVec4(q))
}

// QuatDot is the 4-D dot product of two quaternions.
func QuatDot(p, q quat.Number) float64 {
	return Dot4(QuatToVec4(p), QuatToVec4(q))
}

// SameRotation reports whether p and q describe the same orientation,
// accounting for the q / -q double cover.
func SameRotation(p, q quat.Number, eps float64) bool {
	return 1-math.Abs(QuatDot(p, q)) <= eps
}

// AngleAxis returns the rotation by angle degrees around axis. A zero axis
// yields the identity.
func AngleAxis(angle float64, axis r3.Vec) quat.Number {
	if r3.Norm(axis) < normEpsilon {
		return IdentityQuat
	}
	return quat.Number(r3.NewRotation(angle*Deg2Rad, axis))
}

// Euler builds a rotation from angles in degrees. The rotation applies z
// about the Z axis first, then x about X, then y about Y, all about fixed
// axes: q = qy * qx * qz.
func Euler(x, y, z float64) quat.Number {
	qx := AngleAxis(x, AxisX)
	qy := AngleAxis(y, AxisY)
	qz := AngleAxis(z, AxisZ)
	return quat.Mul(qy, quat.Mul(qx, qz))
}

// EulerVec is Euler with the angles packed in a vector.
func EulerVec(v r3.Vec) quat.Number {
	return Euler(v.X, v.Y, v.Z)
}

// Rotate applies the unit quaternion q to p.
func Rotate(q quat.Number, p r3.Vec) r3.Vec {
	return r3.Rotation(q).Rotate(p)
}
