package smooth

import (
	"fmt"
	"math"
	"testing"

	"github.com/charmbracelet/harmonica"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/testutil"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestSpring_Formula tests a single step against the closed form.
func TestSpring_Formula(t *testing.T) {
	const omega, dt = 8.0, 1.0 / 50
	v := 0.5
	got, err := Spring(2, -1, &v, omega, dt)
	require.NoError(t, err)

	n1 := 0.5 - (2.0+1.0)*(omega*omega*dt)
	n2 := 1 + omega*dt
	wantV := n1 / (n2 * n2)
	assert.InDelta(t, wantV, v, 1e-15)
	assert.InDelta(t, 2+wantV*dt, got, 1e-15)
}

// TestSpring_ZeroDt tests that dt == 0 changes neither position nor velocity.
func TestSpring_ZeroDt(t *testing.T) {
	v := 3.25
	got, err := Spring(1, 10, &v, 12, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
	assert.Equal(t, 3.25, v)

	vel := mathutil.Vec4{X: 0.1, W: -0.2}
	q := mathutil.Euler(10, 20, 30)
	gotQ, err := SpringQuat(q, mathutil.IdentityQuat, &vel, 12, 0)
	require.NoError(t, err)
	testutil.AssertSameRotation(t, q, gotQ, 1e-12)
	assert.Equal(t, mathutil.Vec4{X: 0.1, W: -0.2}, vel)
}

// TestSpring_FixedPoint tests that a spring at rest on its target stays put.
func TestSpring_FixedPoint(t *testing.T) {
	v := 0.0
	got, err := Spring(7, 7, &v, 20, 1.0/60)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
	assert.Equal(t, 0.0, v)
}

// TestSpring_InvalidArguments tests rate and time step validation.
func TestSpring_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		omega, dt float64
	}{
		{"Zero omega", 0, 1.0 / 60},
		{"Negative omega", -1, 1.0 / 60},
		{"NaN omega", math.NaN(), 1.0 / 60},
		{"Negative dt", 10, -1.0 / 60},
		{"NaN dt", 10, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := 1.0
			got, err := Spring(2, 5, &v, tt.omega, tt.dt)
			require.ErrorIs(t, err, mathutil.ErrInvalidArgument)
			assert.Equal(t, 2.0, got)
			assert.Equal(t, 1.0, v, "velocity untouched on error")

			v2 := r2.Vec{}
			_, err = SpringVec2(r2.Vec{}, r2.Vec{X: 1}, &v2, tt.omega, tt.dt)
			assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)
			v3 := r3.Vec{}
			_, err = SpringVec3(r3.Vec{}, r3.Vec{X: 1}, &v3, tt.omega, tt.dt)
			assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)
			v4 := mathutil.Vec4{}
			_, err = SpringVec4(mathutil.Vec4{}, mathutil.Vec4{X: 1}, &v4, tt.omega, tt.dt)
			assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)
			_, err = SpringQuat(mathutil.IdentityQuat, mathutil.Euler(0, 90, 0), &v4, tt.omega, tt.dt)
			assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)
		})
	}
}

// TestSpring_ConvergesWithoutOvershoot steps from rest toward a fixed target
// across a grid of rates and frame times.
func TestSpring_ConvergesWithoutOvershoot(t *testing.T) {
	omegas := []float64{0.5, 1, 5, 10, 25, 50}
	dts := []float64{1.0 / 240, 1.0 / 120, 1.0 / 60, 1.0 / 30}

	for _, omega := range omegas {
		for _, dt := range dts {
			t.Run(fmt.Sprintf("omega=%v/dt=%.4f", omega, dt), func(t *testing.T) {
				const start, target = -3.0, 4.0
				steps := int(math.Ceil(40 / (omega * dt)))

				trace := make([]float64, 0, steps+1)
				x, v := start, 0.0
				trace = append(trace, x)
				for range steps {
					x = SpringStep(x, target, &v, omega, dt)
					trace = append(trace, x)
				}

				testutil.AssertNoNaNOrInf(t, trace)
				testutil.AssertApproaches(t, trace, target, 1e-12)
				testutil.AssertAllInRange(t, trace, start, target+1e-12)
				assert.InDelta(t, target, x, 1e-6)
			})
		}
	}
}

// TestSpring_TracksAnalyticSolution compares the discrete spring with an
// exact critically damped spring.
func TestSpring_TracksAnalyticSolution(t *testing.T) {
	const omega, fps = 5.0, 240
	dt := 1.0 / fps
	ref := harmonica.NewSpring(harmonica.FPS(fps), omega, 1.0)

	x, v := 1.0, 0.0
	rx, rv := 1.0, 0.0
	for range fps * 2 {
		x = SpringStep(x, 0, &v, omega, dt)
		rx, rv = ref.Update(rx, rv, 0)
		assert.InDelta(t, rx, x, 5e-3)
	}
}

// TestSpringVectors tests that vector springs match the scalar kernel
// component-wise.
func TestSpringVectors(t *testing.T) {
	const omega, dt = 6.0, 1.0 / 60

	pos2, vel2 := r2.Vec{X: 1, Y: -2}, r2.Vec{X: 0.5}
	pos3, vel3 := r3.Vec{X: 1, Y: -2, Z: 3}, r3.Vec{Z: -1}
	target3 := r3.Vec{X: 4, Y: 4, Z: -4}

	sx, svx := 1.0, 0.5
	sz, svz := 3.0, -1.0
	for range 30 {
		var err error
		pos2, err = SpringVec2(pos2, r2.Vec{X: 4, Y: 4}, &vel2, omega, dt)
		require.NoError(t, err)
		pos3, err = SpringVec3(pos3, target3, &vel3, omega, dt)
		require.NoError(t, err)
		sx = SpringStep(sx, 4, &svx, omega, dt)
		sz = SpringStep(sz, -4, &svz, omega, dt)
	}

	assert.InDelta(t, sx, pos2.X, 1e-12)
	assert.InDelta(t, svx, vel2.X, 1e-12)
	assert.InDelta(t, sx, pos3.X, 1e-12)
	assert.InDelta(t, sz, pos3.Z, 1e-12)
	assert.InDelta(t, svz, vel3.Z, 1e-12)
}

// TestSpringQuat_DoubleCover tests that q and -q targets give the same
// rotation from the same state.
func TestSpringQuat_DoubleCover(t *testing.T) {
	start := mathutil.Euler(15, -40, 5)
	targets := []quat.Number{
		mathutil.Euler(0, 90, 0),
		mathutil.Euler(170, 10, -60),
		mathutil.AngleAxis(179, r3.Vec{X: 1, Y: 1}),
	}

	for _, target := range targets {
		va := mathutil.Vec4{X: 0.05, Y: -0.1}
		vb := va
		qa, qb := start, start
		for range 20 {
			var err error
			qa, err = SpringQuat(qa, target, &va, 10, 1.0/60)
			require.NoError(t, err)
			qb, err = SpringQuat(qb, quat.Scale(-1, target), &vb, 10, 1.0/60)
			require.NoError(t, err)
			testutil.AssertSameRotation(t, qa, qb, 1e-12)
			testutil.AssertUnitQuat(t, qa)
		}
	}
}

// TestSpringQuat_Converges tests that the rotation spring settles on target.
func TestSpringQuat_Converges(t *testing.T) {
	target := mathutil.Euler(30, 120, -45)
	d, err := NewDampedQuat(mathutil.IdentityQuat, 8)
	require.NoError(t, err)

	for range 600 {
		require.NoError(t, d.Step(target, 1.0/60))
	}
	testutil.AssertSameRotation(t, target, d.Value(), 1e-6)
}

// TestDamped tests the scalar spring state type.
func TestDamped(t *testing.T) {
	_, err := NewDamped(0, 0)
	require.ErrorIs(t, err, mathutil.ErrInvalidArgument)
	_, err = NewDamped(0, math.Inf(1))
	require.ErrorIs(t, err, mathutil.ErrInvalidArgument)

	d, err := NewDamped(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Value())
	assert.Zero(t, d.Velocity)

	v := 0.0
	want := SpringStep(1, 5, &v, 10, 1.0/60)
	require.NoError(t, d.Step(5, 1.0/60))
	assert.Equal(t, want, d.Value())
	assert.Equal(t, v, d.Velocity)

	assert.ErrorIs(t, d.Step(5, -1), mathutil.ErrInvalidArgument)
	assert.Equal(t, want, d.Value(), "failed step leaves state")

	d.Reset(-2)
	assert.Equal(t, -2.0, d.Value())
	assert.Zero(t, d.Velocity)
}

// TestDampedVectors tests the vector spring state types.
func TestDampedVectors(t *testing.T) {
	d2, err := NewDampedVec2(r2.Vec{}, 12)
	require.NoError(t, err)
	d3, err := NewDampedVec3(r3.Vec{}, 12)
	require.NoError(t, err)

	for range 300 {
		require.NoError(t, d2.Step(r2.Vec{X: 1, Y: 2}, 1.0/60))
		require.NoError(t, d3.Step(r3.Vec{X: 1, Y: 2, Z: 3}, 1.0/60))
	}
	assert.InDelta(t, 1.0, d2.Value().X, 1e-6)
	assert.InDelta(t, 2.0, d2.Value().Y, 1e-6)
	testutil.AssertVecInDelta(t, r3.Vec{X: 1, Y: 2, Z: 3}, d3.Value(), 1e-6)

	d2.Reset(r2.Vec{X: -1})
	assert.Equal(t, r2.Vec{X: -1}, d2.Value())
	assert.Equal(t, r2.Vec{}, d2.Velocity)
	d3.Reset(r3.Vec{})
	assert.Equal(t, r3.Vec{}, d3.Velocity)

	_, err = NewDampedVec3(r3.Vec{}, -5)
	assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)
	_, err = NewDampedQuat(mathutil.IdentityQuat, 0)
	assert.ErrorIs(t, err, mathutil.ErrInvalidArgument)
}

// TestDampedQuat_Normalises tests that the rotation spring stores unit
// quaternions.
func TestDampedQuat_Normalises(t *testing.T) {
	d, err := NewDampedQuat(quat.Number{Real: 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, mathutil.IdentityQuat, d.Value())

	require.NoError(t, d.Step(mathutil.Euler(0, 0, 90), 1.0/30))
	testutil.AssertUnitQuat(t, d.Value())

	d.Reset(quat.Number{Kmag: 3})
	assert.Equal(t, quat.Number{Kmag: 1}, d.Value())
	assert.Equal(t, mathutil.Vec4{}, d.Velocity)
}

func BenchmarkSpringQuatStep(b *testing.B) {
	q := mathutil.IdentityQuat
	target := mathutil.Euler(30, 60, 90)
	var v mathutil.Vec4
	for b.Loop() {
		q = SpringQuatStep(q, target, &v, 10, 1.0/60)
	}
	_ = q
}
