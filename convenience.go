package tween

import (
	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/noise"
	"github.com/tphakala/go-motion-tween/internal/smooth"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Common frame rates for convenience functions.
const (
	// FPS30 is a typical console/mobile frame rate.
	FPS30 = 30

	// FPS60 is the common desktop frame rate.
	FPS60 = 60

	// FPS120 is a high refresh rate.
	FPS120 = 120

	// FPS240 is used by tests that need fine time steps.
	FPS240 = 240
)

// Re-exported types.
type (
	// Vec4 is a flattened quaternion (x, y, z, w) used for spring velocity.
	Vec4 = mathutil.Vec4

	// Hash is a seeded xxHash32 generator.
	Hash = xxhash.Hash

	// SeedFactory hands out decorrelated seeds from an explicit counter.
	SeedFactory = xxhash.SeedFactory

	// NoiseField is a fractal noise source with a phase accumulator.
	NoiseField = noise.Field

	// Damped is a scalar critically damped spring state.
	Damped = smooth.Damped

	// DampedVec2 is a 2-D critically damped spring state.
	DampedVec2 = smooth.DampedVec2

	// DampedVec3 is a 3-D critically damped spring state.
	DampedVec3 = smooth.DampedVec3

	// DampedQuat is a rotation spring state.
	DampedQuat = smooth.DampedQuat
)

// HashSum returns the xxHash32 of a single key under seed.
func HashSum(data, seed int32) uint32 {
	return xxhash.Sum(data, seed)
}

// NewHash returns a hash generator for seed.
func NewHash(seed int32) Hash {
	return xxhash.New(seed)
}

// NewSeedFactory returns a seed factory whose counter starts at start.
func NewSeedFactory(start uint32) *SeedFactory {
	return xxhash.NewSeedFactory(start)
}

// NewNoiseField creates a noise field with lane seeds drawn from seeds.
// A nil factory uses the shared default.
func NewNoiseField(frequency float64, seeds *SeedFactory) (*NoiseField, error) {
	return noise.New(frequency, seeds)
}

// NewNoiseFieldWithSeed creates a reproducible noise field.
func NewNoiseFieldWithSeed(seed int32, frequency float64) (*NoiseField, error) {
	return noise.NewWithSeed(seed, frequency)
}

// Exp moves current toward target by exponential decay.
func Exp(current, target, omega, dt float64) (float64, error) {
	return smooth.Exp(current, target, omega, dt)
}

// ExpAngle is Exp for angles in degrees along the shortest arc.
func ExpAngle(current, target, omega, dt float64) (float64, error) {
	return smooth.ExpAngle(current, target, omega, dt)
}

// ExpStep is Exp without argument checks, for callers that validated
// omega and dt once up front.
func ExpStep(current, target, omega, dt float64) float64 {
	return smooth.ExpStep(current, target, omega, dt)
}

// ExpVec2 is Exp for 2-D vectors.
func ExpVec2(current, target r2.Vec, omega, dt float64) (r2.Vec, error) {
	return smooth.ExpVec2(current, target, omega, dt)
}

// ExpVec3 is Exp for 3-D vectors.
func ExpVec3(current, target r3.Vec, omega, dt float64) (r3.Vec, error) {
	return smooth.ExpVec3(current, target, omega, dt)
}

// ExpVec4 is Exp for 4-component vectors.
func ExpVec4(current, target Vec4, omega, dt float64) (Vec4, error) {
	return smooth.ExpVec4(current, target, omega, dt)
}

// ExpQuat is Exp for rotations.
func ExpQuat(current, target quat.Number, omega, dt float64) (quat.Number, error) {
	return smooth.ExpQuat(current, target, omega, dt)
}

// ExpQuatStep is ExpQuat without argument checks.
func ExpQuatStep(current, target quat.Number, omega, dt float64) quat.Number {
	return smooth.ExpQuatStep(current, target, omega, dt)
}

// Spring advances a scalar critically damped spring.
func Spring(current, target float64, velocity *float64, omega, dt float64) (float64, error) {
	return smooth.Spring(current, target, velocity, omega, dt)
}

// SpringStep is Spring without argument checks.
func SpringStep(current, target float64, velocity *float64, omega, dt float64) float64 {
	return smooth.SpringStep(current, target, velocity, omega, dt)
}

// SpringVec2 advances a 2-D critically damped spring.
func SpringVec2(current, target r2.Vec, velocity *r2.Vec, omega, dt float64) (r2.Vec, error) {
	return smooth.SpringVec2(current, target, velocity, omega, dt)
}

// SpringVec3 advances a 3-D critically damped spring.
func SpringVec3(current, target r3.Vec, velocity *r3.Vec, omega, dt float64) (r3.Vec, error) {
	return smooth.SpringVec3(current, target, velocity, omega, dt)
}

// SpringVec4 advances a 4-component critically damped spring.
func SpringVec4(current, target Vec4, velocity *Vec4, omega, dt float64) (Vec4, error) {
	return smooth.SpringVec4(current, target, velocity, omega, dt)
}

// SpringQuat advances a rotation spring.
func SpringQuat(current, target quat.Number, velocity *Vec4, omega, dt float64) (quat.Number, error) {
	return smooth.SpringQuat(current, target, velocity, omega, dt)
}

// SpringQuatStep is SpringQuat without argument checks.
func SpringQuatStep(current, target quat.Number, velocity *Vec4, omega, dt float64) quat.Number {
	return smooth.SpringQuatStep(current, target, velocity, omega, dt)
}

// NewDamped returns a scalar spring at rest.
func NewDamped(pos, omega float64) (*Damped, error) {
	return smooth.NewDamped(pos, omega)
}

// NewDampedVec2 returns a 2-D spring at rest.
func NewDampedVec2(pos r2.Vec, omega float64) (*DampedVec2, error) {
	return smooth.NewDampedVec2(pos, omega)
}

// NewDampedVec3 returns a 3-D spring at rest.
func NewDampedVec3(pos r3.Vec, omega float64) (*DampedVec3, error) {
	return smooth.NewDampedVec3(pos, omega)
}

// NewDampedQuat returns a rotation spring at rest.
func NewDampedQuat(rot quat.Number, omega float64) (*DampedQuat, error) {
	return smooth.NewDampedQuat(rot, omega)
}

// Euler builds a rotation from angles in degrees, applying z, then x,
// then y about fixed axes.
func Euler(x, y, z float64) quat.Number {
	return mathutil.Euler(x, y, z)
}

// AngleAxis returns the rotation by angle degrees around axis.
func AngleAxis(angle float64, axis r3.Vec) quat.Number {
	return mathutil.AngleAxis(angle, axis)
}

// Sample is one frame of a step response.
type Sample struct {
	Frame    int
	Time     float64
	Value    float64
	Velocity float64
}

// StepResponse records frames steps of an interpolator that starts at rest
// on initial and is driven toward target at a fixed frame time dt.
func StepResponse(config *Config, initial, target, dt float64, frames int) []Sample {
	frames = max(frames, 0)
	interp := NewInterpolator(initial, config)
	out := make([]Sample, 0, frames)
	for f := 1; f <= frames; f++ {
		v := interp.Step(target, dt)
		out = append(out, Sample{
			Frame:    f,
			Time:     float64(f) * dt,
			Value:    v,
			Velocity: interp.Velocity(),
		})
	}
	return out
}
