// Package preset loads and saves named parameter sets for interpolators,
// noise fields and motion animators from TOML files. Every table is
// layered over the type's defaults, so a preset only needs the fields it
// changes:
//
//	[interpolators.camera]
//	mode = "damped-spring"
//	speed = 12.5
//
//	[noise.wobble]
//	seed = 42
//	frequency = 0.5
//	fractal = 3
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	tween "github.com/tphakala/go-motion-tween"
	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/motion"
	"github.com/tphakala/go-motion-tween/internal/noise"
	"github.com/tphakala/go-motion-tween/internal/perlin"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
)

// ErrNotFound indicates a preset name that is not in the file.
var ErrNotFound = errors.New("preset not found")

// Noise describes a noise field. A nil Seed draws lane seeds from a seed
// factory instead of deriving them from one master seed.
type Noise struct {
	Seed      *int32  `toml:"seed,omitempty"`
	Frequency float64 `toml:"frequency"`
	Fractal   int     `toml:"fractal"`
}

// DefaultNoise returns an unseeded field at frequency 1 with the default
// fractal level.
func DefaultNoise() Noise {
	return Noise{Frequency: defaultNoiseFrequency, Fractal: noise.DefaultFractalLevel}
}

// Validate checks if the noise preset is valid.
func (n *Noise) Validate() error {
	if !mathutil.IsRate(n.Frequency) {
		return fmt.Errorf("%w: noise frequency must be non-negative and finite, got %v", tween.ErrInvalidConfig, n.Frequency)
	}
	if n.Fractal < 0 || n.Fractal > perlin.MaxOctaves {
		return fmt.Errorf("%w: fractal level must be 0-%d", tween.ErrInvalidConfig, perlin.MaxOctaves)
	}
	return nil
}

// File is a set of named presets.
type File struct {
	Interpolators map[string]tween.Config          `toml:"interpolators,omitempty"`
	Noise         map[string]Noise                 `toml:"noise,omitempty"`
	Brownian      map[string]motion.BrownianConfig `toml:"brownian,omitempty"`
	Follow        map[string]motion.FollowerConfig `toml:"follow,omitempty"`
	Constant      map[string]motion.ConstantConfig `toml:"constant,omitempty"`
}

// document is the raw shape of a preset file before defaults are applied.
type document struct {
	Interpolators map[string]map[string]any `toml:"interpolators"`
	Noise         map[string]map[string]any `toml:"noise"`
	Brownian      map[string]map[string]any `toml:"brownian"`
	Follow        map[string]map[string]any `toml:"follow"`
	Constant      map[string]map[string]any `toml:"constant"`
}

// Load reads and validates a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates preset TOML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var doc document
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", tween.ErrInvalidConfig, err)
	}

	f := &File{}
	var err error
	if f.Interpolators, err = overlay("interpolators", doc.Interpolators, func() tween.Config { return *tween.DefaultConfig() }); err != nil {
		return nil, err
	}
	if f.Noise, err = overlay("noise", doc.Noise, DefaultNoise); err != nil {
		return nil, err
	}
	if f.Brownian, err = overlay("brownian", doc.Brownian, motion.DefaultBrownianConfig); err != nil {
		return nil, err
	}
	if f.Follow, err = overlay("follow", doc.Follow, motion.DefaultFollowerConfig); err != nil {
		return nil, err
	}
	if f.Constant, err = overlay("constant", doc.Constant, motion.DefaultConstantConfig); err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// overlay decodes each raw table on top of a fresh default value.
func overlay[T any](section string, raw map[string]map[string]any, defaults func() T) (map[string]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]T, len(raw))
	for name, table := range raw {
		v := defaults()
		data, err := toml.Marshal(table)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", tween.ErrInvalidConfig, section, name, err)
		}
		if err := decodeStrict(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", tween.ErrInvalidConfig, section, name, err)
		}
		out[name] = v
	}
	return out, nil
}

func decodeStrict(data []byte, v any) error {
	return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(v)
}

// Validate checks every preset in the file.
func (f *File) Validate() error {
	for _, name := range sortedKeys(f.Interpolators) {
		cfg := f.Interpolators[name]
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("interpolators.%s: %w", name, err)
		}
	}
	for _, name := range sortedKeys(f.Noise) {
		n := f.Noise[name]
		if err := n.Validate(); err != nil {
			return fmt.Errorf("noise.%s: %w", name, err)
		}
	}
	for _, name := range sortedKeys(f.Brownian) {
		cfg := f.Brownian[name]
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: brownian.%s: %w", tween.ErrInvalidConfig, name, err)
		}
	}
	for _, name := range sortedKeys(f.Follow) {
		cfg := f.Follow[name]
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: follow.%s: %w", tween.ErrInvalidConfig, name, err)
		}
	}
	for _, name := range sortedKeys(f.Constant) {
		cfg := f.Constant[name]
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: constant.%s: %w", tween.ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// Encode writes the file as TOML.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).SetIndentTables(true).Encode(f)
}

// Save writes the file to path.
func (f *File) Save(path string) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), presetFileMode); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}
	return nil
}

// Interpolator returns a copy of the named interpolator config.
func (f *File) Interpolator(name string) (*tween.Config, error) {
	cfg, ok := f.Interpolators[name]
	if !ok {
		return nil, fmt.Errorf("%w: interpolators.%s", ErrNotFound, name)
	}
	return &cfg, nil
}

// NoiseField builds the named noise field. Unseeded presets draw lane
// seeds from seeds.
func (f *File) NoiseField(name string, seeds *xxhash.SeedFactory) (*noise.Field, error) {
	n, ok := f.Noise[name]
	if !ok {
		return nil, fmt.Errorf("%w: noise.%s", ErrNotFound, name)
	}

	var field *noise.Field
	var err error
	if n.Seed != nil {
		field, err = noise.NewWithSeed(*n.Seed, n.Frequency)
	} else {
		field, err = noise.New(n.Frequency, seeds)
	}
	if err != nil {
		return nil, err
	}
	field.SetFractalLevel(n.Fractal)
	return field, nil
}

// BrownianMotion builds the named Brownian animator around initial.
func (f *File) BrownianMotion(name string, initial motion.Pose, seeds *xxhash.SeedFactory) (*motion.Brownian, error) {
	cfg, ok := f.Brownian[name]
	if !ok {
		return nil, fmt.Errorf("%w: brownian.%s", ErrNotFound, name)
	}
	return motion.NewBrownian(initial, cfg, seeds)
}

// Follower builds the named follower at rest on initial.
func (f *File) Follower(name string, initial motion.Pose, seeds *xxhash.SeedFactory) (*motion.Follower, error) {
	cfg, ok := f.Follow[name]
	if !ok {
		return nil, fmt.Errorf("%w: follow.%s", ErrNotFound, name)
	}
	return motion.NewFollower(initial, cfg, seeds)
}

// ConstantMotion builds the named constant motion animator.
func (f *File) ConstantMotion(name string, seeds *xxhash.SeedFactory) (*motion.Constant, error) {
	cfg, ok := f.Constant[name]
	if !ok {
		return nil, fmt.Errorf("%w: constant.%s", ErrNotFound, name)
	}
	return motion.NewConstant(cfg, seeds), nil
}

// Names returns the sorted preset names of every section.
func (f *File) Names() map[string][]string {
	return map[string][]string{
		"interpolators": sortedKeys(f.Interpolators),
		"noise":         sortedKeys(f.Noise),
		"brownian":      sortedKeys(f.Brownian),
		"follow":        sortedKeys(f.Follow),
		"constant":      sortedKeys(f.Constant),
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
