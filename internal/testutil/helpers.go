// Package testutil provides reusable test helper functions for motion math tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// UnitTolerance is the allowed deviation from unit length for rotations.
const UnitTolerance = 1e-9

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice never decreases.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertApproaches verifies that |s[i] - target| never grows from one
// sample to the next, which rules out overshoot for a trajectory starting
// on one side of the target.
func AssertApproaches(t *testing.T, s []float64, target, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		prev := math.Abs(s[i-1] - target)
		curr := math.Abs(s[i] - target)
		if curr > prev+tolerance {
			return assert.Fail(t, "moved away from target",
				"|s[%d]-target|=%g > |s[%d]-target|=%g", i, curr, i-1, prev)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertVecInDelta verifies two vectors match component-wise.
func AssertVecInDelta(t *testing.T, expected, actual r3.Vec, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	ok = assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...) && ok
	return assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...) && ok
}

// AssertUnitQuat verifies that q has unit length.
func AssertUnitQuat(t *testing.T, q quat.Number, msgAndArgs ...any) bool {
	t.Helper()
	if quat.IsNaN(q) {
		return assert.Fail(t, "quaternion is NaN", msgAndArgs...)
	}
	return assert.InDelta(t, 1.0, quat.Abs(q), UnitTolerance, msgAndArgs...)
}

// AssertSameRotation verifies that p and q are equal up to sign.
func AssertSameRotation(t *testing.T, p, q quat.Number, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if quat.Abs(quat.Sub(p, q)) <= delta || quat.Abs(quat.Add(p, q)) <= delta {
		return true
	}
	return assert.Fail(t, "rotations differ",
		"p=%v q=%v (tolerance %g, up to sign)", p, q, delta)
}

// AssertSymmetric verifies that s[i] == s[len-1-i] within tolerance.
func AssertSymmetric(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	n := len(s)
	for i := range n / 2 {
		if math.Abs(s[i]-s[n-1-i]) > tolerance {
			return assert.Fail(t, "not symmetric",
				"s[%d]=%g != s[%d]=%g", i, s[i], n-1-i, s[n-1-i])
		}
	}
	return true
}
