package smooth

import (
	"fmt"
	"math"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// The spring update is the implicit closed form
//
//	n1 = v - (x - target) * omega² * dt
//	n2 = 1 + omega * dt
//	v' = n1 / n2²
//	x' = x + v' * dt
//
// which never oscillates and stays stable for large omega * dt at the cost
// of slight overdamping.

func checkSpring(omega, dt float64) error {
	if omega <= 0 || math.IsNaN(omega) {
		return fmt.Errorf("%w: spring rate must be positive, got %v",
			mathutil.ErrInvalidArgument, omega)
	}
	if dt < 0 || math.IsNaN(dt) {
		return fmt.Errorf("%w: time step must be non-negative, got %v",
			mathutil.ErrInvalidArgument, dt)
	}
	return nil
}

// springCoeffs returns (omega² * dt, 1 / (1 + omega*dt)²).
func springCoeffs(omega, dt float64) (stiff, damp float64) {
	n2 := 1 + omega*dt
	return omega * omega * dt, 1 / (n2 * n2)
}

// SpringStep is the unchecked scalar kernel. It updates *velocity and
// returns the new position.
func SpringStep(current, target float64, velocity *float64, omega, dt float64) float64 {
	stiff, damp := springCoeffs(omega, dt)
	n1 := *velocity - (current-target)*stiff
	*velocity = n1 * damp
	return current + *velocity*dt
}

// Spring advances a scalar critically damped spring by dt.
func Spring(current, target float64, velocity *float64, omega, dt float64) (float64, error) {
	if err := checkSpring(omega, dt); err != nil {
		return current, err
	}
	return SpringStep(current, target, velocity, omega, dt), nil
}

// SpringVec2 is Spring for 2-D vectors.
func SpringVec2(current, target r2.Vec, velocity *r2.Vec, omega, dt float64) (r2.Vec, error) {
	if err := checkSpring(omega, dt); err != nil {
		return current, err
	}
	stiff, damp := springCoeffs(omega, dt)
	n1 := r2.Sub(*velocity, r2.Scale(stiff, r2.Sub(current, target)))
	*velocity = r2.Scale(damp, n1)
	return r2.Add(current, r2.Scale(dt, *velocity)), nil
}

// SpringVec3 is Spring for 3-D vectors.
func SpringVec3(current, target r3.Vec, velocity *r3.Vec, omega, dt float64) (r3.Vec, error) {
	if err := checkSpring(omega, dt); err != nil {
		return current, err
	}
	return SpringVec3Step(current, target, velocity, omega, dt), nil
}

// SpringVec3Step is the unchecked 3-D kernel.
func SpringVec3Step(current, target r3.Vec, velocity *r3.Vec, omega, dt float64) r3.Vec {
	stiff, damp := springCoeffs(omega, dt)
	n1 := r3.Sub(*velocity, r3.Scale(stiff, r3.Sub(current, target)))
	*velocity = r3.Scale(damp, n1)
	return r3.Add(current, r3.Scale(dt, *velocity))
}

// SpringVec4 is Spring for 4-D vectors.
func SpringVec4(current, target mathutil.Vec4, velocity *mathutil.Vec4, omega, dt float64) (mathutil.Vec4, error) {
	if err := checkSpring(omega, dt); err != nil {
		return current, err
	}
	return springVec4Step(current, target, velocity, omega, dt), nil
}

func springVec4Step(current, target mathutil.Vec4, velocity *mathutil.Vec4, omega, dt float64) mathutil.Vec4 {
	stiff, damp := springCoeffs(omega, dt)
	n1 := mathutil.Sub4(*velocity, mathutil.Scale4(stiff, mathutil.Sub4(current, target)))
	*velocity = mathutil.Scale4(damp, n1)
	return mathutil.Add4(current, mathutil.Scale4(dt, *velocity))
}

// SpringQuat springs a rotation toward target. The target is flipped onto
// the current hemisphere first so q and -q never pull against each other,
// the spring runs on the flattened 4-vectors, and the result is
// renormalised.
func SpringQuat(current, target quat.Number, velocity *mathutil.Vec4, omega, dt float64) (quat.Number, error) {
	if err := checkSpring(omega, dt); err != nil {
		return current, err
	}
	return SpringQuatStep(current, target, velocity, omega, dt), nil
}

// SpringQuatStep is the unchecked quaternion kernel.
func SpringQuatStep(current, target quat.Number, velocity *mathutil.Vec4, omega, dt float64) quat.Number {
	vc := mathutil.QuatToVec4(current)
	vt := mathutil.QuatToVec4(target)
	if mathutil.Dot4(vc, vt) < 0 {
		vt = mathutil.Scale4(-1, vt)
	}
	return mathutil.Vec4ToUnitQuat(springVec4Step(vc, vt, velocity, omega, dt))
}
