package xxhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-motion-tween/internal/testutil"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestSum tests Sum against xxHash32 digests of the 4-byte key encoding.
func TestSum(t *testing.T) {
	tests := []struct {
		data, seed int32
		expected   uint32
	}{
		{0, 0, 148298089},
		{1, 0, 4089149075},
		{0, 1, 2012518600},
		{42, 0, 1161967057},
		{-1, 0, 67608159},
		{12345, 0x7fffffff, 4037294146},
		{-100, -5, 2099434},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Sum(tt.data, tt.seed),
			"Sum(%d, %d)", tt.data, tt.seed)
	}
}

// TestHash_Deterministic tests that repeated calls return the same value.
func TestHash_Deterministic(t *testing.T) {
	h := New(1234)
	for k := int32(-50); k < 50; k++ {
		first := h.Sum(k)
		for range 3 {
			assert.Equal(t, first, h.Sum(k))
		}
		assert.Equal(t, first, Hash{Seed: 1234}.Sum(k), "copies hash identically")
	}
}

// TestHash_Range tests signed truncated modulo semantics.
func TestHash_Range(t *testing.T) {
	h := New(42)
	expected := []int32{12, -289, -15, 99, -58, -194, -179, -232}
	for k, want := range expected {
		assert.Equal(t, want, h.Range(-100, 100, int32(k)), "key %d", k)
	}

	// A negative reinterpretation lands below min.
	assert.Less(t, h.Range(-100, 100, 1), int32(-100))

	assert.Equal(t, int32(7), h.Range(7, 7, 3), "empty span returns min")
	assert.Equal(t, int32(0), h.RangeN(0, 3))
	assert.Equal(t, int32(2132181312)%10, h.RangeN(10, 0))
}

// TestHash_Value01 tests the unit interval mapping.
func TestHash_Value01(t *testing.T) {
	h := New(42)
	assert.InDelta(t, 0.496437147375298, h.Value01(0), 1e-15)
	assert.InDelta(t, -0.7125705249404035, h.RangeFloat(-100, 100, 0), 1e-12)

	values := make([]float64, 2000)
	for i := range values {
		values[i] = h.Value01(int32(i))
	}
	testutil.AssertAllInRange(t, values, 0, 1)
}

// TestHash_RangeUniformity runs a chi-square test over 10000 keys.
func TestHash_RangeUniformity(t *testing.T) {
	const (
		buckets = 50
		samples = 10000
	)

	for _, seed := range []int32{0, 1, 42, -7, 0x1327495a} {
		h := New(seed)
		obs := make([]float64, buckets)
		for k := range samples {
			v := h.Range(0, buckets, int32(k))
			if v < 0 {
				v += buckets
			}
			require.Less(t, v, int32(buckets))
			obs[v]++
		}

		exp := make([]float64, buckets)
		for i := range exp {
			exp[i] = samples / buckets
		}

		chi2 := stat.ChiSquare(obs, exp)
		critical := distuv.ChiSquared{K: buckets - 1}.Quantile(0.9999)
		assert.Less(t, chi2, critical, "seed %d: chi-square %f exceeds %f", seed, chi2, critical)
	}
}

// TestHash_UnitUniformity checks the float mapping fills the interval.
func TestHash_UnitUniformity(t *testing.T) {
	const (
		buckets = 20
		samples = 20000
	)

	h := New(99)
	obs := make([]float64, buckets)
	for k := range samples {
		b := int(h.Value01(int32(k)) * buckets)
		if b == buckets {
			b--
		}
		obs[b]++
	}

	exp := make([]float64, buckets)
	for i := range exp {
		exp[i] = samples / buckets
	}
	critical := distuv.ChiSquared{K: buckets - 1}.Quantile(0.9999)
	assert.Less(t, stat.ChiSquare(obs, exp), critical)
}

// BenchmarkSum benchmarks the single-key hash.
func BenchmarkSum(b *testing.B) {
	var k int32
	for b.Loop() {
		_ = Sum(k, 42)
		k++
	}
}
