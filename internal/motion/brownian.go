package motion

import (
	"fmt"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/perlin"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// BrownianConfig holds the noise parameters of a Brownian animator.
// Rotation amplitude is in degrees.
type BrownianConfig struct {
	PositionEnabled bool `toml:"position_enabled"`
	RotationEnabled bool `toml:"rotation_enabled"`

	PositionFrequency float64 `toml:"position_frequency"`
	RotationFrequency float64 `toml:"rotation_frequency"`

	PositionAmplitude float64 `toml:"position_amplitude"`
	RotationAmplitude float64 `toml:"rotation_amplitude"`

	PositionScale r3.Vec `toml:"position_scale"`
	RotationScale r3.Vec `toml:"rotation_scale"`

	PositionFractal int `toml:"position_fractal"`
	RotationFractal int `toml:"rotation_fractal"`
}

// DefaultBrownianConfig returns gentle wandering on all position axes and
// on the X and Y rotation axes.
func DefaultBrownianConfig() BrownianConfig {
	return BrownianConfig{
		PositionEnabled:   true,
		RotationEnabled:   true,
		PositionFrequency: defaultNoiseFrequency,
		RotationFrequency: defaultNoiseFrequency,
		PositionAmplitude: defaultPositionAmplitude,
		RotationAmplitude: defaultRotationAmplitude,
		PositionScale:     r3.Vec{X: 1, Y: 1, Z: 1},
		RotationScale:     r3.Vec{X: 1, Y: 1},
		PositionFractal:   defaultBrownianFractal,
		RotationFractal:   defaultBrownianFractal,
	}
}

// Validate checks if the configuration is valid.
func (c *BrownianConfig) Validate() error {
	if !mathutil.IsRate(c.PositionFrequency) || !mathutil.IsRate(c.RotationFrequency) {
		return fmt.Errorf("%w: brownian frequencies must be non-negative and finite", mathutil.ErrInvalidArgument)
	}
	if !mathutil.IsFinite(c.PositionAmplitude) || !mathutil.IsFinite(c.RotationAmplitude) ||
		!mathutil.IsFiniteVec(c.PositionScale) || !mathutil.IsFiniteVec(c.RotationScale) {
		return fmt.Errorf("%w: brownian amplitudes and scales must be finite", mathutil.ErrInvalidArgument)
	}
	if c.PositionFractal < 0 || c.PositionFractal > perlin.MaxOctaves ||
		c.RotationFractal < 0 || c.RotationFractal > perlin.MaxOctaves {
		return fmt.Errorf("%w: fractal level must be 0-%d", mathutil.ErrInvalidArgument, perlin.MaxOctaves)
	}
	return nil
}

// Brownian wanders a pose around its initial value with fbm noise. Each of
// the six axes has its own phase.
type Brownian struct {
	config  BrownianConfig
	seeds   *xxhash.SeedFactory
	initial Pose
	pose    Pose
	time    [brownianChannels]float64
}

// NewBrownian creates a Brownian animator around initial. Phases are drawn
// from seeds; a nil factory uses xxhash.DefaultSeeds.
func NewBrownian(initial Pose, config BrownianConfig, seeds *xxhash.SeedFactory) (*Brownian, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if seeds == nil {
		seeds = xxhash.DefaultSeeds
	}

	b := &Brownian{
		config:  config,
		seeds:   seeds,
		initial: initial,
		pose:    initial,
	}
	b.Rehash()
	return b, nil
}

// Rehash jumps every axis to a fresh random phase.
func (b *Brownian) Rehash() {
	h := b.seeds.NextHash()
	for i := range b.time {
		b.time[i] = h.RangeFloat(brownianPhaseMin, brownianPhaseMax, int32(i))
	}
}

// Update advances the phases by dt and returns the new pose. Disabled
// channels keep their last value.
func (b *Brownian) Update(dt float64) Pose {
	dt = clampDt(dt)
	c := &b.config

	if c.PositionEnabled {
		n := b.sample(0, c.PositionFrequency*dt, c.PositionFractal)
		n = scaleVec(n, c.PositionScale)
		n = r3.Scale(c.PositionAmplitude*perlin.FbmNorm, n)
		b.pose.Position = r3.Add(b.initial.Position, n)
	}

	if c.RotationEnabled {
		n := b.sample(brownianRotationChannel, c.RotationFrequency*dt, c.RotationFractal)
		n = scaleVec(n, c.RotationScale)
		n = r3.Scale(c.RotationAmplitude*perlin.FbmNorm, n)
		b.pose.Rotation = quat.Mul(mathutil.EulerVec(n), b.initial.Rotation)
	}

	return b.pose
}

// sample advances three phases starting at channel and returns their fbm.
func (b *Brownian) sample(channel int, advance float64, octaves int) r3.Vec {
	t := b.time[channel : channel+3]
	for i := range t {
		t[i] += advance
	}
	return r3.Vec{
		X: perlin.Fbm(t[0], octaves),
		Y: perlin.Fbm(t[1], octaves),
		Z: perlin.Fbm(t[2], octaves),
	}
}

// Pose returns the most recent pose.
func (b *Brownian) Pose() Pose { return b.pose }

// Initial returns the rest pose the noise is applied to.
func (b *Brownian) Initial() Pose { return b.initial }

// SetInitial moves the rest pose.
func (b *Brownian) SetInitial(p Pose) { b.initial = p }

// Config returns a copy of the configuration.
func (b *Brownian) Config() BrownianConfig { return b.config }

// SetConfig replaces the configuration.
func (b *Brownian) SetConfig(config BrownianConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	b.config = config
	return nil
}

// Phases returns the six noise phases, position axes first.
func (b *Brownian) Phases() [brownianChannels]float64 { return b.time }

func scaleVec(v, s r3.Vec) r3.Vec {
	return r3.Vec{X: v.X * s.X, Y: v.Y * s.Y, Z: v.Z * s.Z}
}
