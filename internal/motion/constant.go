package motion

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Direction selects the axis a Constant animator moves or spins along.
type Direction int

const (
	// DirectionOff disables the channel.
	DirectionOff Direction = iota
	// DirectionX is the +X axis.
	DirectionX
	// DirectionY is the +Y axis.
	DirectionY
	// DirectionZ is the +Z axis.
	DirectionZ
	// DirectionVector uses the configured vector.
	DirectionVector
	// DirectionRandom uses a hash-derived unit vector fixed at construction.
	DirectionRandom
)

var directionNames = [...]string{"off", "x", "y", "z", "vector", "random"}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if d < DirectionOff || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range directionNames {
		if s == name {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown direction %q", mathutil.ErrInvalidArgument, string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d < DirectionOff || int(d) >= len(directionNames) {
		return nil, fmt.Errorf("%w: unknown direction %d", mathutil.ErrInvalidArgument, int(d))
	}
	return []byte(directionNames[d]), nil
}

// ConstantConfig describes a steady drift and spin. Translation speed is in
// units per second along the direction vector, rotation speed in degrees
// per second.
type ConstantConfig struct {
	Translation       Direction `toml:"translation"`
	TranslationVector r3.Vec    `toml:"translation_vector"`
	TranslationSpeed  float64   `toml:"translation_speed"`

	Rotation      Direction `toml:"rotation"`
	RotationAxis  r3.Vec    `toml:"rotation_axis"`
	RotationSpeed float64   `toml:"rotation_speed"`
}

// Validate checks if the configuration is valid.
func (c *ConstantConfig) Validate() error {
	if c.Translation < DirectionOff || int(c.Translation) >= len(directionNames) ||
		c.Rotation < DirectionOff || int(c.Rotation) >= len(directionNames) {
		return fmt.Errorf("%w: unknown direction", mathutil.ErrInvalidArgument)
	}
	if !mathutil.IsFinite(c.TranslationSpeed) || !mathutil.IsFinite(c.RotationSpeed) {
		return fmt.Errorf("%w: constant speeds must be finite", mathutil.ErrInvalidArgument)
	}
	if !mathutil.IsFiniteVec(c.TranslationVector) || !mathutil.IsFiniteVec(c.RotationAxis) {
		return fmt.Errorf("%w: constant directions must be finite", mathutil.ErrInvalidArgument)
	}
	return nil
}

// DefaultConstantConfig returns a config with both channels off, moving
// along +Z and spinning about +Y once enabled.
func DefaultConstantConfig() ConstantConfig {
	return ConstantConfig{
		TranslationVector: mathutil.AxisZ,
		TranslationSpeed:  defaultTranslationSpeed,
		RotationAxis:      mathutil.AxisY,
		RotationSpeed:     defaultRotationSpeed,
	}
}

// Constant moves and spins a pose at a constant rate.
type Constant struct {
	config  ConstantConfig
	randomT r3.Vec
	randomR r3.Vec
}

// NewConstant creates a constant motion animator. The random directions
// are drawn from seeds; a nil factory uses xxhash.DefaultSeeds.
func NewConstant(config ConstantConfig, seeds *xxhash.SeedFactory) *Constant {
	if seeds == nil {
		seeds = xxhash.DefaultSeeds
	}
	h := seeds.NextHash()
	return &Constant{
		config:  config,
		randomT: onUnitSphere(h, 0),
		randomR: onUnitSphere(h, 2),
	}
}

// Config returns a copy of the configuration.
func (c *Constant) Config() ConstantConfig { return c.config }

// SetConfig replaces the configuration. Random directions are kept.
func (c *Constant) SetConfig(config ConstantConfig) { c.config = config }

// TranslationVector returns the current drift direction.
func (c *Constant) TranslationVector() r3.Vec {
	return c.direction(c.config.Translation, c.config.TranslationVector, c.randomT)
}

// RotationVector returns the current spin axis.
func (c *Constant) RotationVector() r3.Vec {
	return c.direction(c.config.Rotation, c.config.RotationAxis, c.randomR)
}

func (c *Constant) direction(d Direction, custom, random r3.Vec) r3.Vec {
	switch d {
	case DirectionX:
		return mathutil.AxisX
	case DirectionY:
		return mathutil.AxisY
	case DirectionZ:
		return mathutil.AxisZ
	case DirectionVector:
		return custom
	default:
		return random
	}
}

// Update returns p moved by one frame of dt seconds. The spin is applied
// in the parent frame: rotation = spin * p.Rotation.
func (c *Constant) Update(p Pose, dt float64) Pose {
	dt = clampDt(dt)

	if c.config.Translation != DirectionOff {
		dp := r3.Scale(c.config.TranslationSpeed*dt, c.TranslationVector())
		p.Position = r3.Add(p.Position, dp)
	}

	if c.config.Rotation != DirectionOff {
		dr := mathutil.AngleAxis(c.config.RotationSpeed*dt, c.RotationVector())
		p.Rotation = quat.Mul(dr, p.Rotation)
	}

	return p
}
