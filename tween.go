package tween

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
)

// Mode selects how an Interpolator moves toward its target.
type Mode int

const (
	// ModeDirect snaps to the target every step.
	ModeDirect Mode = iota

	// ModeExponential decays the remaining distance exponentially.
	ModeExponential

	// ModeDampedSpring follows the target with a critically damped spring.
	ModeDampedSpring
)

// String returns the preset-file name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return modeNameDirect
	case ModeExponential:
		return modeNameExponential
	case ModeDampedSpring:
		return modeNameDampedSpring
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to a Mode. Matching ignores case, and
// "spring" and "exp" are accepted as short forms.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case modeNameDirect, "none":
		return ModeDirect, nil
	case modeNameExponential, "exp":
		return ModeExponential, nil
	case modeNameDampedSpring, "dampedspring", "spring":
		return ModeDampedSpring, nil
	default:
		return ModeDirect, fmt.Errorf("%w: unknown interpolation mode %q", ErrInvalidConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < ModeDirect || m > ModeDampedSpring {
		return nil, fmt.Errorf("%w: unknown interpolation mode %d", ErrInvalidConfig, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Config selects the interpolation mode and its rate. A Config is a value
// object and may be shared by any number of interpolators.
type Config struct {
	// Mode is the interpolation behaviour.
	Mode Mode `toml:"mode"`

	// Speed is the rate parameter in 1/s. Higher is snappier.
	// Validate accepts 0.1 to 100. Direct mode ignores it.
	Speed float64 `toml:"speed"`
}

// Common errors.
var (
	// ErrInvalidArgument indicates an out-of-domain rate, time step or
	// frequency passed to a primitive operation.
	ErrInvalidArgument = mathutil.ErrInvalidArgument

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid tween configuration")
)

// NewConfig returns a config for mode and speed.
func NewConfig(mode Mode, speed float64) *Config {
	return &Config{Mode: mode, Speed: speed}
}

// DefaultConfig returns a damped spring at speed 10.
func DefaultConfig() *Config {
	return NewConfig(ModeDampedSpring, defaultSpeed)
}

// DirectConfig returns a config that disables interpolation.
func DirectConfig() *Config {
	return NewConfig(ModeDirect, defaultSpeed)
}

// QuickConfig returns a fast damped spring at speed 50.
func QuickConfig() *Config {
	return NewConfig(ModeDampedSpring, quickSpeed)
}

// Enabled reports whether the config interpolates at all.
func (c *Config) Enabled() bool {
	return c.Mode != ModeDirect
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode < ModeDirect || c.Mode > ModeDampedSpring {
		return fmt.Errorf("%w: unknown interpolation mode %d", ErrInvalidConfig, int(c.Mode))
	}

	if math.IsNaN(c.Speed) || c.Speed < minSpeed || c.Speed > maxSpeed {
		return fmt.Errorf("%w: speed must be in [%v, %v], got %v",
			ErrInvalidConfig, minSpeed, maxSpeed, c.Speed)
	}

	return nil
}
