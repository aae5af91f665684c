package smooth

import (
	"fmt"
	"math"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func checkOmega(omega float64) error {
	if omega <= 0 || math.IsNaN(omega) || math.IsInf(omega, 0) {
		return fmt.Errorf("%w: spring rate must be positive and finite, got %v",
			mathutil.ErrInvalidArgument, omega)
	}
	return nil
}

// Damped is a scalar critically damped spring state.
type Damped struct {
	Position float64
	Velocity float64
	Omega    float64
}

// NewDamped returns a spring at rest at pos.
func NewDamped(pos, omega float64) (*Damped, error) {
	if err := checkOmega(omega); err != nil {
		return nil, err
	}
	return &Damped{Position: pos, Omega: omega}, nil
}

// Step advances the spring toward target by dt.
func (d *Damped) Step(target, dt float64) error {
	p, err := Spring(d.Position, target, &d.Velocity, d.Omega, dt)
	if err != nil {
		return err
	}
	d.Position = p
	return nil
}

// Value returns the current position.
func (d *Damped) Value() float64 { return d.Position }

// Reset places the spring at rest at pos.
func (d *Damped) Reset(pos float64) {
	d.Position = pos
	d.Velocity = 0
}

// DampedVec2 is Damped for 2-D vectors.
type DampedVec2 struct {
	Position r2.Vec
	Velocity r2.Vec
	Omega    float64
}

// NewDampedVec2 returns a spring at rest at pos.
func NewDampedVec2(pos r2.Vec, omega float64) (*DampedVec2, error) {
	if err := checkOmega(omega); err != nil {
		return nil, err
	}
	return &DampedVec2{Position: pos, Omega: omega}, nil
}

// Step advances the spring toward target by dt.
func (d *DampedVec2) Step(target r2.Vec, dt float64) error {
	p, err := SpringVec2(d.Position, target, &d.Velocity, d.Omega, dt)
	if err != nil {
		return err
	}
	d.Position = p
	return nil
}

// Value returns the current position.
func (d *DampedVec2) Value() r2.Vec { return d.Position }

// Reset places the spring at rest at pos.
func (d *DampedVec2) Reset(pos r2.Vec) {
	d.Position = pos
	d.Velocity = r2.Vec{}
}

// DampedVec3 is Damped for 3-D vectors.
type DampedVec3 struct {
	Position r3.Vec
	Velocity r3.Vec
	Omega    float64
}

// NewDampedVec3 returns a spring at rest at pos.
func NewDampedVec3(pos r3.Vec, omega float64) (*DampedVec3, error) {
	if err := checkOmega(omega); err != nil {
		return nil, err
	}
	return &DampedVec3{Position: pos, Omega: omega}, nil
}

// Step advances the spring toward target by dt.
func (d *DampedVec3) Step(target r3.Vec, dt float64) error {
	p, err := SpringVec3(d.Position, target, &d.Velocity, d.Omega, dt)
	if err != nil {
		return err
	}
	d.Position = p
	return nil
}

// Value returns the current position.
func (d *DampedVec3) Value() r3.Vec { return d.Position }

// Reset places the spring at rest at pos.
func (d *DampedVec3) Reset(pos r3.Vec) {
	d.Position = pos
	d.Velocity = r3.Vec{}
}

// DampedQuat is a rotation spring. Velocity is kept as a flattened
// 4-vector, never as a quaternion.
type DampedQuat struct {
	Rotation quat.Number
	Velocity mathutil.Vec4
	Omega    float64
}

// NewDampedQuat returns a spring at rest at rot. rot is normalised.
func NewDampedQuat(rot quat.Number, omega float64) (*DampedQuat, error) {
	if err := checkOmega(omega); err != nil {
		return nil, err
	}
	return &DampedQuat{Rotation: mathutil.NormalizeQuat(rot), Omega: omega}, nil
}

// Step advances the spring toward target by dt.
func (d *DampedQuat) Step(target quat.Number, dt float64) error {
	q, err := SpringQuat(d.Rotation, target, &d.Velocity, d.Omega, dt)
	if err != nil {
		return err
	}
	d.Rotation = q
	return nil
}

// Value returns the current rotation.
func (d *DampedQuat) Value() quat.Number { return d.Rotation }

// Reset places the spring at rest at rot.
func (d *DampedQuat) Reset(rot quat.Number) {
	d.Rotation = mathutil.NormalizeQuat(rot)
	d.Velocity = mathutil.Vec4{}
}
