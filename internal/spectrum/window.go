// Package spectrum measures rendered motion signals: Kaiser-windowed power
// spectra, RMS level and spectral centroid. It is used to check that noise
// output has the expected low-frequency character.
package spectrum

import (
	"math"

	"github.com/tphakala/go-motion-tween/internal/mathutil"
	"github.com/tphakala/go-motion-tween/internal/simdops"
)

// KaiserWindow returns a symmetric Kaiser window of the given length with
// peak value 1:
//
//	w[n] = I0(β * sqrt(1 - ((n - α)/α)²)) / I0(β),  α = (N-1)/2
//
// β = 0 gives a rectangular window.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	alpha := float64(length-1) / windowHalf
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		arg := beta * math.Sqrt(max(0, 1.0-x*x))
		window[n] = mathutil.BesselI0(arg) / i0Beta
	}

	return window
}

// WindowForAttenuation returns a Kaiser window whose sidelobes sit about
// attenuation dB below the main lobe.
func WindowForAttenuation(length int, attenuation float64) []float64 {
	return KaiserWindow(length, mathutil.KaiserBeta(attenuation))
}

// CoherentGain returns the window sum divided by its length. A sine's
// spectral peak is scaled by this factor.
func CoherentGain(window []float64) float64 {
	return simdops.Mean(window)
}
