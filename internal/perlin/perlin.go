// Package perlin provides one-dimensional gradient noise and its fractal
// (fBm) sum.
package perlin

import "math"

// FbmNorm rescales a two-octave fbm sum (max 0.5 + 0.25) to roughly
// [-1, 1]. It is applied as a fixed constant whatever the octave count.
const FbmNorm = 1 / 0.75

// MaxOctaves is the largest octave count accepted by callers that clamp.
const MaxOctaves = 8

const (
	permMask       = 0xff
	noiseScale     = 2.0 // maps the raw gradient blend to [-1, 1]
	firstAmplitude = 0.5
	octaveGain     = 0.5
	octaveLacunar  = 2.0
)

// Noise returns 1-D gradient noise at x in [-1, 1]. Noise is zero at
// every integer lattice point.
func Noise(x float64) float64 {
	fx := math.Floor(x)
	xi := int(int64(fx) & permMask)
	x -= fx
	u := fade(x)
	return lerp(u, grad(perm[xi], x), grad(perm[xi+1], x-1)) * noiseScale
}

// Fbm sums octaves of Noise, doubling frequency and halving amplitude each
// octave, starting at amplitude 0.5. Zero or negative octaves yield 0.
func Fbm(x float64, octaves int) float64 {
	f := 0.0
	w := firstAmplitude
	for range octaves {
		f += w * Noise(x)
		x *= octaveLacunar
		w *= octaveGain
	}
	return f
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x float64) float64 {
	if hash&1 == 0 {
		return x
	}
	return -x
}
