package tween

import (
	"github.com/tphakala/go-motion-tween/internal/motion"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Procedural motion types.
type (
	// Pose is a position and a unit rotation.
	Pose = motion.Pose

	// Brownian wanders a pose around its initial value with fbm noise.
	Brownian = motion.Brownian

	// BrownianConfig holds the noise parameters of a Brownian animator.
	BrownianConfig = motion.BrownianConfig

	// Constant moves and spins a pose at a constant rate.
	Constant = motion.Constant

	// ConstantConfig describes a steady drift and spin.
	ConstantConfig = motion.ConstantConfig

	// Direction selects the axis a Constant animator uses.
	Direction = motion.Direction

	// Follower chases a target pose.
	Follower = motion.Follower

	// FollowerConfig holds the follow parameters.
	FollowerConfig = motion.FollowerConfig

	// FollowMode selects how a Follower chases its target.
	FollowMode = motion.FollowMode
)

// Constant directions.
const (
	DirectionOff    = motion.DirectionOff
	DirectionX      = motion.DirectionX
	DirectionY      = motion.DirectionY
	DirectionZ      = motion.DirectionZ
	DirectionVector = motion.DirectionVector
	DirectionRandom = motion.DirectionRandom
)

// Follow modes.
const (
	FollowExponential  = motion.FollowExponential
	FollowSpring       = motion.FollowSpring
	FollowDampedSpring = motion.FollowDampedSpring
)

// IdentityPose is the origin with no rotation.
var IdentityPose = motion.IdentityPose

// NewPose returns a pose with a normalised rotation.
func NewPose(position r3.Vec, rotation quat.Number) Pose {
	return motion.NewPose(position, rotation)
}

// DefaultBrownianConfig returns gentle wandering on all position axes and
// on the X and Y rotation axes.
func DefaultBrownianConfig() BrownianConfig {
	return motion.DefaultBrownianConfig()
}

// NewBrownian creates a Brownian animator around initial. Phases are drawn
// from seeds; a nil factory uses the shared default.
func NewBrownian(initial Pose, config BrownianConfig, seeds *SeedFactory) (*Brownian, error) {
	return motion.NewBrownian(initial, config, seeds)
}

// DefaultConstantConfig returns a config with both channels off.
func DefaultConstantConfig() ConstantConfig {
	return motion.DefaultConstantConfig()
}

// NewConstant validates config and creates a constant motion animator.
func NewConstant(config ConstantConfig, seeds *SeedFactory) (*Constant, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return motion.NewConstant(config, seeds), nil
}

// DefaultFollowerConfig returns a damped spring follower.
func DefaultFollowerConfig() FollowerConfig {
	return motion.DefaultFollowerConfig()
}

// NewFollower creates a follower at rest on initial.
func NewFollower(initial Pose, config FollowerConfig, seeds *SeedFactory) (*Follower, error) {
	return motion.NewFollower(initial, config, seeds)
}
