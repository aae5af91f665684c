package motion

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/smooth"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// FollowMode selects how a Follower chases its target.
type FollowMode int

const (
	// FollowExponential uses exponential smoothing.
	FollowExponential FollowMode = iota

	// FollowSpring is a loose, underdamped spring. Its pull is applied per
	// step rather than per second, so it feels different at other frame
	// rates.
	FollowSpring

	// FollowDampedSpring uses the critically damped spring.
	FollowDampedSpring
)

var followModeNames = [...]string{"exponential", "spring", "damped-spring"}

// String returns the preset-file name of the mode.
func (m FollowMode) String() string {
	if m < FollowExponential || int(m) >= len(followModeNames) {
		return fmt.Sprintf("FollowMode(%d)", int(m))
	}
	return followModeNames[m]
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FollowMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range followModeNames {
		if s == name {
			*m = FollowMode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown follow mode %q", mathutil.ErrInvalidArgument, string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (m FollowMode) MarshalText() ([]byte, error) {
	if m < FollowExponential || int(m) >= len(followModeNames) {
		return nil, fmt.Errorf("%w: unknown follow mode %d", mathutil.ErrInvalidArgument, int(m))
	}
	return []byte(followModeNames[m]), nil
}

// FollowerConfig holds the follow parameters. A speed of zero disables
// that channel. JumpAngle is in degrees.
type FollowerConfig struct {
	Mode          FollowMode `toml:"mode"`
	PositionSpeed float64    `toml:"position_speed"`
	RotationSpeed float64    `toml:"rotation_speed"`
	JumpDistance  float64    `toml:"jump_distance"`
	JumpAngle     float64    `toml:"jump_angle"`
}

// DefaultFollowerConfig returns a damped spring follower at speed 2.
func DefaultFollowerConfig() FollowerConfig {
	return FollowerConfig{
		Mode:          FollowDampedSpring,
		PositionSpeed: defaultFollowSpeed,
		RotationSpeed: defaultFollowSpeed,
		JumpDistance:  defaultJumpDistance,
		JumpAngle:     defaultJumpAngle,
	}
}

// Validate checks if the configuration is valid.
func (c *FollowerConfig) Validate() error {
	if c.Mode < FollowExponential || c.Mode > FollowDampedSpring {
		return fmt.Errorf("%w: unknown follow mode %d", mathutil.ErrInvalidArgument, int(c.Mode))
	}
	if !(c.PositionSpeed >= 0 && c.PositionSpeed <= maxFollowSpeed) ||
		!(c.RotationSpeed >= 0 && c.RotationSpeed <= maxFollowSpeed) {
		return fmt.Errorf("%w: follow speeds must be 0-%v", mathutil.ErrInvalidArgument, maxFollowSpeed)
	}
	if !mathutil.IsRate(c.JumpDistance) {
		return fmt.Errorf("%w: jump distance must be non-negative and finite", mathutil.ErrInvalidArgument)
	}
	if !(c.JumpAngle >= 0 && c.JumpAngle <= maxJumpAngle) {
		return fmt.Errorf("%w: jump angle must be 0-%v", mathutil.ErrInvalidArgument, maxJumpAngle)
	}
	return nil
}

// Follower chases a target pose.
type Follower struct {
	config FollowerConfig
	pose   Pose

	vposition r3.Vec
	vrotation mathutil.Vec4

	hash  xxhash.Hash
	jumps int32
}

// NewFollower creates a follower at rest on initial. Jump randomness is
// drawn from seeds; a nil factory uses xxhash.DefaultSeeds.
func NewFollower(initial Pose, config FollowerConfig, seeds *xxhash.SeedFactory) (*Follower, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if seeds == nil {
		seeds = xxhash.DefaultSeeds
	}
	return &Follower{
		config: config,
		pose:   NewPose(initial.Position, initial.Rotation),
		hash:   seeds.NextHash(),
	}, nil
}

// Pose returns the current pose.
func (f *Follower) Pose() Pose { return f.pose }

// Config returns a copy of the configuration.
func (f *Follower) Config() FollowerConfig { return f.config }

// SetConfig replaces the configuration. Velocities are kept.
func (f *Follower) SetConfig(config FollowerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	f.config = config
	return nil
}

// Step moves one frame of dt seconds toward target and returns the new pose.
func (f *Follower) Step(target Pose, dt float64) Pose {
	dt = clampDt(dt)
	ps, rs := f.config.PositionSpeed, f.config.RotationSpeed

	switch f.config.Mode {
	case FollowExponential:
		if ps > 0 {
			f.pose.Position = smooth.ExpVec3Step(f.pose.Position, target.Position, ps, dt)
		}
		if rs > 0 {
			f.pose.Rotation = smooth.ExpQuatStep(f.pose.Rotation, target.Rotation, rs, dt)
		}
	case FollowDampedSpring:
		if ps > 0 {
			f.pose.Position = smooth.SpringVec3Step(f.pose.Position, target.Position, &f.vposition, ps, dt)
		}
		if rs > 0 {
			f.pose.Rotation = smooth.SpringQuatStep(f.pose.Rotation, target.Rotation, &f.vrotation, rs, dt)
		}
	default:
		if ps > 0 {
			f.pose.Position = f.loosePosition(target.Position, dt)
		}
		if rs > 0 {
			f.pose.Rotation = f.looseRotation(target.Rotation, dt)
		}
	}

	return f.pose
}

// loosePosition is the underdamped spring: the velocity decays toward zero
// and receives a pull proportional to the remaining distance.
func (f *Follower) loosePosition(target r3.Vec, dt float64) r3.Vec {
	speed := f.config.PositionSpeed
	f.vposition = smooth.ExpVec3Step(f.vposition, r3.Vec{}, springDragBase+speed*springDragPerUnit, dt)
	pull := r3.Scale(speed*springPullPerUnit, r3.Sub(target, f.pose.Position))
	f.vposition = r3.Add(f.vposition, pull)
	return r3.Add(f.pose.Position, r3.Scale(dt, f.vposition))
}

// looseRotation is loosePosition on flattened quaternions.
func (f *Follower) looseRotation(target quat.Number, dt float64) quat.Number {
	speed := f.config.RotationSpeed
	vc := mathutil.QuatToVec4(f.pose.Rotation)
	vt := mathutil.QuatToVec4(target)
	if mathutil.Dot4(vc, vt) < 0 {
		vt = mathutil.Scale4(-1, vt)
	}
	f.vrotation = smooth.ExpVec4Step(f.vrotation, mathutil.Vec4{}, springDragBase+speed*springDragPerUnit, dt)
	f.vrotation = mathutil.Add4(f.vrotation, mathutil.Scale4(speed*springPullPerUnit, mathutil.Sub4(vt, vc)))
	return mathutil.Vec4ToUnitQuat(mathutil.Add4(vc, mathutil.Scale4(dt, f.vrotation)))
}

// Snap copies the enabled channels of target. Velocities are kept.
func (f *Follower) Snap(target Pose) {
	if f.config.PositionSpeed > 0 {
		f.pose.Position = target.Position
	}
	if f.config.RotationSpeed > 0 {
		f.pose.Rotation = target.Rotation
	}
}

// JumpRandomly places the follower at a random offset from target: a
// distance of JumpDistance and an angle of JumpAngle, each scaled by a
// factor in [0.5, 1]. Every call draws new values.
func (f *Follower) JumpRandomly(target Pose) {
	key := f.jumps * jumpKeyStride
	f.jumps++

	r1 := f.hash.RangeFloat(jumpScaleMin, jumpScaleMax, key)
	r2 := f.hash.RangeFloat(jumpScaleMin, jumpScaleMax, key+1)

	dp := r3.Scale(f.config.JumpDistance*r1, onUnitSphere(f.hash, key+2))
	dr := mathutil.AngleAxis(f.config.JumpAngle*r2, onUnitSphere(f.hash, key+4))

	f.pose.Position = r3.Add(target.Position, dp)
	f.pose.Rotation = quat.Mul(dr, target.Rotation)
}
