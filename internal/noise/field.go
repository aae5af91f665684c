// Package noise implements a phase-driven fractal noise field with scalar,
// vector and rotation outputs. Many elements can sample one field; each
// element index gets its own fixed offset along the shared noise curve.
package noise

import (
	"fmt"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/perlin"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field is a single noise channel. It is not safe for concurrent use;
// give each channel its own Field.
type Field struct {
	hash1, hash2, hash3 xxhash.Hash

	fractal   int
	frequency float64
	time      float64
}

// New creates a field whose three lane seeds are drawn from seeds. A nil
// factory uses xxhash.DefaultSeeds.
func New(frequency float64, seeds *xxhash.SeedFactory) (*Field, error) {
	if err := validateFrequency(frequency); err != nil {
		return nil, err
	}
	if seeds == nil {
		seeds = xxhash.DefaultSeeds
	}

	return &Field{
		hash1:     seeds.NextHash(),
		hash2:     seeds.NextHash(),
		hash3:     seeds.NextHash(),
		fractal:   DefaultFractalLevel,
		frequency: frequency,
	}, nil
}

// NewWithSeed creates a field with lanes derived from one master seed.
// The same seed always yields the same three lanes.
func NewWithSeed(seed int32, frequency float64) (*Field, error) {
	if err := validateFrequency(frequency); err != nil {
		return nil, err
	}

	return &Field{
		hash1:     xxhash.New(seed),
		hash2:     xxhash.New(seed ^ laneSeed2),
		hash3:     xxhash.New(seed ^ laneSeed3),
		fractal:   DefaultFractalLevel,
		frequency: frequency,
	}, nil
}

func validateFrequency(frequency float64) error {
	if !mathutil.IsRate(frequency) {
		return fmt.Errorf("%w: noise frequency must be non-negative and finite, got %v",
			mathutil.ErrInvalidArgument, frequency)
	}
	return nil
}

// Step advances the phase by frequency * dt. Negative dt is ignored so the
// phase never runs backwards. Call once per frame before querying.
func (f *Field) Step(dt float64) {
	if dt <= 0 {
		return
	}
	f.time += f.frequency * dt
}

// Time returns the current phase.
func (f *Field) Time() float64 { return f.time }

// Frequency returns the phase rate.
func (f *Field) Frequency() float64 { return f.frequency }

// SetFrequency changes the phase rate.
func (f *Field) SetFrequency(frequency float64) error {
	if err := validateFrequency(frequency); err != nil {
		return err
	}
	f.frequency = frequency
	return nil
}

// FractalLevel returns the octave count.
func (f *Field) FractalLevel() int { return f.fractal }

// SetFractalLevel sets the octave count, clamped to [0, perlin.MaxOctaves].
func (f *Field) SetFractalLevel(level int) {
	f.fractal = max(0, min(level, perlin.MaxOctaves))
}

// Seeds returns the three lane seeds.
func (f *Field) Seeds() [3]int32 {
	return [3]int32{f.hash1.Seed, f.hash2.Seed, f.hash3.Seed}
}

func (f *Field) offset(h xxhash.Hash, index int32) float64 {
	return h.RangeFloat(-offsetRange, offsetRange, index)
}

func (f *Field) sample(h xxhash.Hash, index int32) float64 {
	return perlin.Fbm(f.time+f.offset(h, index), f.fractal) * perlin.FbmNorm
}

// Value01 returns lane-1 noise for index mapped to roughly [0, 1].
func (f *Field) Value01(index int32) float64 {
	return f.sample(f.hash1, index)*0.5 + 0.5
}

// Value returns lane-1 noise for index, roughly in [-1, 1].
func (f *Field) Value(index int32) float64 {
	return f.sample(f.hash1, index)
}

// Vector returns one sample per lane for index.
func (f *Field) Vector(index int32) r3.Vec {
	return r3.Vec{
		X: f.sample(f.hash1, index),
		Y: f.sample(f.hash2, index),
		Z: f.sample(f.hash3, index),
	}
}

// Rotation returns a rotation whose Euler angles are the three lane
// samples scaled by angle degrees.
func (f *Field) Rotation(index int32, angle float64) quat.Number {
	return f.RotationXYZ(index, angle, angle, angle)
}

// RotationXYZ is Rotation with a separate scale per axis. Angles are
// composed by mathutil.Euler.
func (f *Field) RotationXYZ(index int32, rx, ry, rz float64) quat.Number {
	v := f.Vector(index)
	return mathutil.Euler(v.X*rx, v.Y*ry, v.Z*rz)
}
