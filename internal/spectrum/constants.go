package spectrum

const (
	// Window normalisation: the window centre is (length-1)/2.
	windowHalf = 2.0

	// Default sidelobe attenuation for analysis windows, in dB.
	DefaultAttenuation = 100.0

	// Smallest power treated as non-zero in ratios and dB conversion.
	minPower = 1e-20

	// One-sided spectra double every bin except DC and Nyquist.
	oneSidedFactor = 2.0

	// 10*log10 for power quantities.
	dbPowerMultiplier = 10.0

	// Transform size limits.
	minTransformSize = 2
	maxTransformSize = 1 << 20
)
