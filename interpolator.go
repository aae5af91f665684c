package tween

import (
	"math"

	"github.com/tphakala/go-motion-tween/internal/smooth"
)

// Interpolator moves a scalar toward a target once per frame according to
// its Config. The zero value is not usable; create one with NewInterpolator.
//
// An Interpolator never fails. A speed outside the validated range still
// produces defined output: speed <= 0 freezes the value and very large
// speeds approach a snap.
type Interpolator struct {
	config   *Config
	current  float64
	target   float64
	velocity float64
}

// NewInterpolator returns an interpolator at rest on initial. A nil config
// falls back to DefaultConfig.
func NewInterpolator(initial float64, config *Config) *Interpolator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Interpolator{
		config:  config,
		current: initial,
		target:  initial,
	}
}

// Step sets the target and advances one frame of dt seconds. It returns
// the new current value.
func (i *Interpolator) Step(target, dt float64) float64 {
	i.target = target
	return i.Advance(dt)
}

// Advance moves toward the existing target by dt seconds. Negative dt is
// treated as zero.
func (i *Interpolator) Advance(dt float64) float64 {
	if !(dt > 0) {
		dt = 0
	}
	speed := i.config.Speed

	switch i.config.Mode {
	case ModeExponential:
		if speed > 0 && dt > 0 {
			i.current = smooth.ExpStep(i.current, i.target, speed, dt)
		}
		i.velocity = 0
	case ModeDampedSpring:
		if speed > 0 && !math.IsInf(speed, 1) {
			i.current = smooth.SpringStep(i.current, i.target, &i.velocity, speed, dt)
		} else if speed > 0 {
			i.current, i.velocity = i.target, 0
		}
	default:
		i.current = i.target
		i.velocity = 0
	}

	return i.current
}

// Current returns the current value.
func (i *Interpolator) Current() float64 { return i.current }

// Target returns the most recent target.
func (i *Interpolator) Target() float64 { return i.target }

// Velocity returns the spring velocity. It is zero outside spring mode.
func (i *Interpolator) Velocity() float64 { return i.velocity }

// SetCurrent places the interpolator at rest on value, with the target
// also set to value.
func (i *Interpolator) SetCurrent(value float64) {
	i.current = value
	i.target = value
	i.velocity = 0
}

// Config returns the config in use.
func (i *Interpolator) Config() *Config { return i.config }

// SetConfig replaces the config. A nil config falls back to DefaultConfig.
// Switching modes keeps the current value; spring velocity survives only
// while the new mode is also a spring.
func (i *Interpolator) SetConfig(config *Config) {
	if config == nil {
		config = DefaultConfig()
	}
	i.config = config
}
