// Package motion implements procedural transform animators on a plain Pose:
// Brownian wandering, constant drift and spin, and smooth target following.
// Randomness comes from hash lanes drawn from an explicit seed factory, so
// an animator built from a fresh factory behaves the same on every run.
package motion

import (
	"math"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is a position and a unit rotation.
type Pose struct {
	Position r3.Vec
	Rotation quat.Number
}

// IdentityPose is the origin with no rotation.
var IdentityPose = Pose{Rotation: mathutil.IdentityQuat}

// NewPose returns a pose with a normalised rotation.
func NewPose(position r3.Vec, rotation quat.Number) Pose {
	return Pose{Position: position, Rotation: mathutil.NormalizeQuat(rotation)}
}

// clampDt maps negative and NaN frame times to zero.
func clampDt(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return dt
}

// onUnitSphere returns a hash-derived direction, uniform over the sphere.
// It consumes keys key and key+1.
func onUnitSphere(h xxhash.Hash, key int32) r3.Vec {
	z := h.RangeFloat(-1, 1, key)
	theta := h.RangeFloat(0, 2*math.Pi, key+1)
	r := math.Sqrt(max(0, 1-z*z))
	sin, cos := math.Sincos(theta)
	return r3.Vec{X: r * cos, Y: r * sin, Z: z}
}
