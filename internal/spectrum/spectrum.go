package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-motion-tween/internal/simdops"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrInvalidInput indicates a signal or sample rate that cannot be analysed.
var ErrInvalidInput = errors.New("invalid spectrum input")

// Bin is one frequency bin of a one-sided power spectrum. Power is scaled so
// that a unit-amplitude sine centred on a bin reads 0.5, its mean square.
type Bin struct {
	Freq  float64
	Power float64
}

// Analyzer computes windowed power spectra of a fixed length. It reuses its
// buffers and is not safe for concurrent use.
type Analyzer struct {
	fft        *fourier.FFT
	window     []float64
	windowed   []float64
	coeffs     []complex128
	sampleRate float64
	scale      float64
}

// NewAnalyzer creates an analyzer for signals of size samples at sampleRate
// Hz, windowed with a Kaiser window of the given attenuation in dB.
func NewAnalyzer(size int, sampleRate, attenuation float64) (*Analyzer, error) {
	if size < minTransformSize || size > maxTransformSize {
		return nil, fmt.Errorf("%w: transform size %d outside [%d, %d]",
			ErrInvalidInput, size, minTransformSize, maxTransformSize)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidInput, sampleRate)
	}

	window := WindowForAttenuation(size, attenuation)
	sum := simdops.Float64().Sum(window)

	return &Analyzer{
		fft:        fourier.NewFFT(size),
		window:     window,
		windowed:   make([]float64, size),
		coeffs:     make([]complex128, size/2+1),
		sampleRate: sampleRate,
		scale:      1 / (sum * sum),
	}, nil
}

// Size returns the transform length.
func (a *Analyzer) Size() int { return len(a.window) }

// Analyze returns the power spectrum of signal, which must have exactly
// Size samples. The mean is not removed; it shows up in the DC bin.
func (a *Analyzer) Analyze(signal []float64) ([]Bin, error) {
	if len(signal) != len(a.window) {
		return nil, fmt.Errorf("%w: expected %d samples, got %d", ErrInvalidInput, len(a.window), len(signal))
	}

	for i, w := range a.window {
		a.windowed[i] = signal[i] * w
	}
	a.coeffs = a.fft.Coefficients(a.coeffs, a.windowed)

	n := len(a.window)
	bins := make([]Bin, len(a.coeffs))
	for k, c := range a.coeffs {
		mag := cmplx.Abs(c)
		p := mag * mag * a.scale
		if k != 0 && !(n%2 == 0 && k == n/2) {
			p *= oneSidedFactor
		}
		bins[k] = Bin{Freq: a.fft.Freq(k) * a.sampleRate, Power: p}
	}
	return bins, nil
}

// PowerSpectrum analyses a whole signal with the default window.
func PowerSpectrum(signal []float64, sampleRate float64) ([]Bin, error) {
	a, err := NewAnalyzer(len(signal), sampleRate, DefaultAttenuation)
	if err != nil {
		return nil, err
	}
	return a.Analyze(signal)
}

// Centroid returns the power-weighted mean frequency of bins, or 0 when the
// spectrum carries no power.
func Centroid(bins []Bin) float64 {
	var num, den float64
	for _, b := range bins {
		num += b.Freq * b.Power
		den += b.Power
	}
	if den < minPower {
		return 0
	}
	return num / den
}

// BandFraction returns the share of total power in bins with lo <= Freq < hi.
func BandFraction(bins []Bin, lo, hi float64) float64 {
	var band, total float64
	for _, b := range bins {
		total += b.Power
		if b.Freq >= lo && b.Freq < hi {
			band += b.Power
		}
	}
	if total < minPower {
		return 0
	}
	return band / total
}

// PeakBin returns the bin with the highest power, or the zero Bin when bins
// is empty.
func PeakBin(bins []Bin) Bin {
	if len(bins) == 0 {
		return Bin{}
	}
	best := bins[0]
	for _, b := range bins[1:] {
		if b.Power > best.Power {
			best = b
		}
	}
	return best
}
