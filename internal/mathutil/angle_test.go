package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeltaAngle tests shortest signed angular differences.
func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		expected        float64
	}{
		{"Same", 10, 10, 0},
		{"Small positive", 10, 30, 20},
		{"Small negative", 30, 10, -20},
		{"Across +180", 170, -170, 20},
		{"Across -180", -170, 170, -20},
		{"Exactly half turn", 0, 180, 180},
		{"Negative half turn maps to positive", 180, 0, 180},
		{"Multiple turns", 0, 725, 5},
		{"Negative multiple turns", 0, -725, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DeltaAngle(tt.current, tt.target), 1e-9)
		})
	}
}

// TestDeltaAngle_Range tests that results always fall in (-180, 180].
func TestDeltaAngle_Range(t *testing.T) {
	for a := -720.0; a <= 720.0; a += 7.5 {
		for b := -720.0; b <= 720.0; b += 11.25 {
			d := DeltaAngle(a, b)
			assert.Greater(t, d, -180.0, "DeltaAngle(%v, %v) = %v", a, b, d)
			assert.LessOrEqual(t, d, 180.0, "DeltaAngle(%v, %v) = %v", a, b, d)
		}
	}
}

// TestRepeat tests wrapping into [0, length).
func TestRepeat(t *testing.T) {
	assert.InDelta(t, 10.0, Repeat(370, 360), 1e-12)
	assert.InDelta(t, 350.0, Repeat(-10, 360), 1e-12)
	assert.InDelta(t, 0.0, Repeat(720, 360), 1e-12)
	assert.InDelta(t, 0.25, Repeat(2.25, 1), 1e-12)
}

// TestLerpAndClamp tests the scalar helpers.
func TestLerpAndClamp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-12)
	assert.InDelta(t, 12.0, Lerp(0, 10, 1.2), 1e-12)
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}
