// Package smooth implements frame-rate independent interpolation: first
// order exponential decay and a critically damped second order spring.
// Every step takes the elapsed time dt explicitly.
package smooth

import (
	"fmt"
	"math"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func checkExpOmega(omega float64) error {
	if omega < 0 || math.IsNaN(omega) {
		return fmt.Errorf("%w: exponential rate must be non-negative, got %v",
			mathutil.ErrInvalidArgument, omega)
	}
	return nil
}

// decay is the fraction of the remaining distance left after dt.
func decay(omega, dt float64) float64 {
	return math.Exp(-omega * dt)
}

// ExpStep is the unchecked scalar kernel: target + (current-target)*e^(-omega*dt).
func ExpStep(current, target, omega, dt float64) float64 {
	return target + (current-target)*decay(omega, dt)
}

// Exp moves current toward target by exponential decay with rate omega.
// omega == 0 leaves current unchanged.
func Exp(current, target, omega, dt float64) (float64, error) {
	if err := checkExpOmega(omega); err != nil {
		return current, err
	}
	return ExpStep(current, target, omega, dt), nil
}

// ExpAngle is Exp for angles in degrees, following the shortest way
// around the circle. The result is expressed relative to target, so it
// may differ from current by a multiple of 360.
func ExpAngle(current, target, omega, dt float64) (float64, error) {
	if err := checkExpOmega(omega); err != nil {
		return current, err
	}
	return target - mathutil.DeltaAngle(current, target)*decay(omega, dt), nil
}

// ExpVec2 applies Exp component-wise.
func ExpVec2(current, target r2.Vec, omega, dt float64) (r2.Vec, error) {
	if err := checkExpOmega(omega); err != nil {
		return current, err
	}
	return r2.Add(target, r2.Scale(decay(omega, dt), r2.Sub(current, target))), nil
}

// ExpVec3 applies Exp component-wise.
func ExpVec3(current, target r3.Vec, omega, dt float64) (r3.Vec, error) {
	if err := checkExpOmega(omega); err != nil {
		return current, err
	}
	return ExpVec3Step(current, target, omega, dt), nil
}

// ExpVec3Step is the unchecked vector kernel.
func ExpVec3Step(current, target r3.Vec, omega, dt float64) r3.Vec {
	return r3.Add(target, r3.Scale(decay(omega, dt), r3.Sub(current, target)))
}

// ExpVec4 applies Exp component-wise.
func ExpVec4(current, target mathutil.Vec4, omega, dt float64) (mathutil.Vec4, error) {
	if err := checkExpOmega(omega); err != nil {
		return current, err
	}
	return ExpVec4Step(current, target, omega, dt), nil
}

// ExpVec4Step is the unchecked 4-vector kernel.
func ExpVec4Step(current, target mathutil.Vec4, omega, dt float64) mathutil.Vec4 {
	return mathutil.Lerp4(target, current, decay(omega, dt))
}

// ExpQuat blends current toward target with a normalised linear blend.
// When both already describe the same rotation (within
// mathutil.QuatEpsilon, either sign) target is returned unchanged.
func ExpQuat(current, target quat.Number, omega, dt float64) (quat.Number, error) {
	if err := checkExpOmega(omega); err != nil {
		return current, err
	}
	return ExpQuatStep(current, target, omega, dt), nil
}

// ExpQuatStep is the unchecked quaternion kernel.
func ExpQuatStep(current, target quat.Number, omega, dt float64) quat.Number {
	if current == target || mathutil.SameRotation(current, target, mathutil.QuatEpsilon) {
		return target
	}

	vc := mathutil.QuatToVec4(current)
	vt := mathutil.QuatToVec4(target)
	if mathutil.Dot4(vc, vt) < 0 {
		vc = mathutil.Scale4(-1, vc)
	}

	blend := mathutil.Lerp4(vt, vc, decay(omega, dt))
	if mathutil.Norm4(blend) < blendEpsilon {
		return target
	}
	return mathutil.Vec4ToUnitQuat(blend)
}
