package noise

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/testutil"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
	"gonum.org/v1/gonum/spatial/r3"
)

const frameDT = 1.0 / 60

func mustSeeded(t *testing.T, seed int32, frequency float64) *Field {
	t.Helper()
	f, err := NewWithSeed(seed, frequency)
	require.NoError(t, err)
	return f
}

// TestField_Golden is the regression baseline for seed 42 at 1 Hz after
// one second of 60 fps steps.
func TestField_Golden(t *testing.T) {
	f := mustSeeded(t, 42, 1.0)
	for range 60 {
		f.Step(frameDT)
	}

	assert.InDelta(t, 1.0, f.Time(), 1e-12)
	assert.InDelta(t, 0.10699254467984848, f.Value01(0), 1e-9)
	assert.InDelta(t, -0.786014910640303, f.Value(0), 1e-9)
	testutil.AssertVecInDelta(t,
		r3.Vec{X: -0.13458391837455622, Y: -0.4245741276052804, Z: -0.12295982287108234},
		f.Vector(7), 1e-9)

	f.SetFractalLevel(3)
	assert.InDelta(t, -0.3023405507122616, f.Value(5), 1e-9)
	testutil.AssertVecInDelta(t,
		r3.Vec{X: -0.646302545087089, Y: 0.6383483836776214, Z: -0.04181959871795278},
		f.Vector(-3), 1e-9)
}

// TestField_GoldenNegativeSeed covers a second seed and frequency.
func TestField_GoldenNegativeSeed(t *testing.T) {
	f := mustSeeded(t, -12345, 0.5)
	for range 100 {
		f.Step(1.0 / 30)
	}
	assert.InDelta(t, 1.6666666666666656, f.Time(), 1e-12)
	assert.InDelta(t, 0.07357506683632915, f.Value(3), 1e-9)
}

// TestField_LaneSeeds tests master seed derivation.
func TestField_LaneSeeds(t *testing.T) {
	f := mustSeeded(t, 42, 1)
	assert.Equal(t, [3]int32{42, 42 ^ 0x1327495a, 42 ^ 0x3cbe84f2}, f.Seeds())
	assert.Equal(t, f.Seeds(), mustSeeded(t, 42, 3).Seeds())
}

// TestField_Deterministic tests identical construction gives identical sequences.
func TestField_Deterministic(t *testing.T) {
	a := mustSeeded(t, 7, 0.8)
	b := mustSeeded(t, 7, 0.8)
	dts := []float64{1.0 / 60, 1.0 / 30, 0.001, 0.25, 1.0 / 144}

	for i := range 500 {
		dt := dts[i%len(dts)]
		a.Step(dt)
		b.Step(dt)
		idx := int32(i % 17)
		assert.Equal(t, a.Value(idx), b.Value(idx))
		assert.Equal(t, a.Vector(idx), b.Vector(idx))
		assert.Equal(t, a.Rotation(idx, 30), b.Rotation(idx, 30))
	}
}

// TestField_FactorySeeds tests fields built from a seed factory.
func TestField_FactorySeeds(t *testing.T) {
	fa, err := New(1, xxhash.NewSeedFactory(0))
	require.NoError(t, err)
	fb, err := New(1, xxhash.NewSeedFactory(0))
	require.NoError(t, err)
	assert.Equal(t, fa.Seeds(), fb.Seeds(), "same factory state gives same lanes")

	shared := xxhash.NewSeedFactory(0)
	f1, err := New(1, shared)
	require.NoError(t, err)
	f2, err := New(1, shared)
	require.NoError(t, err)
	assert.NotEqual(t, f1.Seeds(), f2.Seeds(), "back-to-back fields decorrelate")
	assert.Equal(t, uint32(6), shared.Count())

	f3, err := New(1, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFractalLevel, f3.FractalLevel())
}

// TestField_InvalidFrequency tests argument validation.
func TestField_InvalidFrequency(t *testing.T) {
	_, err := NewWithSeed(1, -1)
	assert.True(t, errors.Is(err, mathutil.ErrInvalidArgument))

	_, err = New(-0.1, nil)
	assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)

	_, err = NewWithSeed(1, math.NaN())
	assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)
	_, err = NewWithSeed(1, math.Inf(1))
	assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)

	f := mustSeeded(t, 1, 1)
	assert.ErrorIs(t, f.SetFrequency(-2), mathutil.ErrInvalidArgument)
	assert.ErrorIs(t, f.SetFrequency(math.NaN()), mathutil.ErrInvalidArgument)
	assert.Equal(t, 1.0, f.Frequency())
	require.NoError(t, f.SetFrequency(2.5))
	assert.Equal(t, 2.5, f.Frequency())
}

// TestField_PhaseMonotonic tests the phase never decreases.
func TestField_PhaseMonotonic(t *testing.T) {
	f := mustSeeded(t, 3, 2)
	phases := []float64{f.Time()}
	for _, dt := range []float64{0.1, -0.5, 0, 0.2, -1, 0.01} {
		f.Step(dt)
		phases = append(phases, f.Time())
	}
	testutil.AssertMonotonic(t, phases)
	assert.InDelta(t, 2*(0.1+0.2+0.01), f.Time(), 1e-12)

	z := mustSeeded(t, 3, 0)
	z.Step(1)
	assert.Zero(t, z.Time())
}

// TestField_QueriesStableBetweenSteps tests that queries are pure.
func TestField_QueriesStableBetweenSteps(t *testing.T) {
	f := mustSeeded(t, 11, 1)
	f.Step(0.37)
	first := f.Value(4)
	for range 10 {
		assert.Equal(t, first, f.Value(4))
	}
}

// TestField_ZeroFractal tests degenerate-but-defined output.
func TestField_ZeroFractal(t *testing.T) {
	f := mustSeeded(t, 5, 1)
	f.SetFractalLevel(0)
	f.Step(0.3)
	assert.Zero(t, f.Value(1))
	assert.Equal(t, 0.5, f.Value01(1))
	assert.Equal(t, r3.Vec{}, f.Vector(1))
	testutil.AssertUnitQuat(t, f.Rotation(1, 90))
	assert.InDelta(t, 1.0, f.Rotation(1, 90).Real, 1e-12)
}

// TestField_FractalClamp tests the octave clamp.
func TestField_FractalClamp(t *testing.T) {
	f := mustSeeded(t, 5, 1)
	f.SetFractalLevel(-3)
	assert.Equal(t, 0, f.FractalLevel())
	f.SetFractalLevel(20)
	assert.Equal(t, 8, f.FractalLevel())
	f.SetFractalLevel(4)
	assert.Equal(t, 4, f.FractalLevel())
}

// TestField_Value01Range tests the mapped range over many elements.
func TestField_Value01Range(t *testing.T) {
	f := mustSeeded(t, 21, 1.3)
	values := make([]float64, 0, 5000)
	for range 50 {
		f.Step(frameDT)
		for i := range int32(100) {
			values = append(values, f.Value01(i))
		}
	}
	testutil.AssertNoNaNOrInf(t, values)
	// Two octaves peak at 0.75 before normalisation, so the mapping stays in [0, 1].
	testutil.AssertAllInRange(t, values, 0, 1)
}

// TestField_IndexDecorrelation tests that different indices follow different points.
func TestField_IndexDecorrelation(t *testing.T) {
	f := mustSeeded(t, 8, 1)
	f.Step(0.5)
	distinct := make(map[float64]bool)
	for i := range int32(64) {
		distinct[f.Value(i)] = true
	}
	assert.Greater(t, len(distinct), 60)
}

// TestField_Rotation tests rotation outputs are unit quaternions matching the Euler composition.
func TestField_Rotation(t *testing.T) {
	f := mustSeeded(t, 13, 0.7)
	for range 30 {
		f.Step(frameDT)
		for i := range int32(8) {
			q := f.Rotation(i, 45)
			testutil.AssertUnitQuat(t, q)

			v := f.Vector(i)
			want := mathutil.Euler(v.X*45, v.Y*45, v.Z*45)
			testutil.AssertSameRotation(t, want, q, 1e-12)

			qz := f.RotationXYZ(i, 0, 0, 30)
			assert.InDelta(t, 0.0, qz.Imag, 1e-12, "only Z rotation expected")
			assert.InDelta(t, 0.0, qz.Jmag, 1e-12)
			assert.InDelta(t, math.Cos(v.Z*30*mathutil.Deg2Rad/2), qz.Real, 1e-12)
		}
	}
}
