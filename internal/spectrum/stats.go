package spectrum

import (
	"math"

	"github.com/tphakala/go-motion-tween/internal/simdops"
)

// Mean returns the arithmetic mean of signal, or 0 when empty.
func Mean(signal []float64) float64 {
	return simdops.Mean(signal)
}

// RMS returns the root mean square of signal, or 0 when empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(simdops.Energy(signal) / float64(len(signal)))
}

// Peak returns the largest absolute value in signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, v := range signal {
		peak = max(peak, math.Abs(v))
	}
	return peak
}

// PowerDB converts a power ratio to decibels, flooring tiny values.
func PowerDB(power float64) float64 {
	return dbPowerMultiplier * math.Log10(max(power, minPower))
}
