package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-motion-tween/internal/testutil"
)

// i0Series sums I0(x) = Σ ((x/2)^k / k!)² until the terms vanish.
func i0Series(x float64) float64 {
	sum, term := 1.0, 1.0
	q := x * x / 4
	for k := 1.0; term > sum*1e-17; k++ {
		term *= q / (k * k)
		sum += term
	}
	return sum
}

// TestBesselI0_Series tests both approximation branches against the power
// series over the range window design uses.
func TestBesselI0_Series(t *testing.T) {
	for x := 0.0; x <= 16; x += 0.25 {
		testutil.AssertRelativeError(t, i0Series(x), BesselI0(x), 1e-6)
		assert.Equal(t, BesselI0(x), BesselI0(-x), "I0 is even")
	}
}

// TestBesselI0_BranchJoin tests that the polynomial and asymptotic branches
// meet without a step.
func TestBesselI0_BranchJoin(t *testing.T) {
	below := BesselI0(math.Nextafter(besselSmallArgThreshold, 0))
	at := BesselI0(besselSmallArgThreshold)
	testutil.AssertRelativeError(t, below, at, 1e-6)
	assert.Greater(t, BesselI0(besselSmallArgThreshold+0.01), at)
}

// TestKaiserBeta_Branches tests the rectangular cutoff and that β never
// falls as the requested attenuation rises.
func TestKaiserBeta_Branches(t *testing.T) {
	assert.Zero(t, KaiserBeta(0))
	assert.Zero(t, KaiserBeta(math.Nextafter(kaiserAttMedium, 0)))
	assert.Zero(t, KaiserBeta(kaiserAttMedium))
	assert.Greater(t, KaiserBeta(kaiserAttMedium+1), 0.0)

	prev := 0.0
	for att := kaiserAttMedium; att <= 160; att += 0.5 {
		beta := KaiserBeta(att)
		assert.GreaterOrEqual(t, beta, prev, "att=%v", att)
		prev = beta
	}
	assert.InDelta(t, kaiserBetaHighCoeff*(100-kaiserBetaHighShift), KaiserBeta(100), 1e-12)
}

func BenchmarkBesselI0(b *testing.B) {
	for b.Loop() {
		_ = BesselI0(2.5)
		_ = BesselI0(8.6)
	}
}
