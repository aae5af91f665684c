package mathutil

// Angle conversion constants
const (
	Deg2Rad = 0.017453292519943295 // π / 180
	Rad2Deg = 57.29577951308232    // 180 / π

	fullTurnDegrees = 360.0
	halfTurnDegrees = 180.0
)

// Numerical stability thresholds
const (
	// QuatEpsilon is the tolerance used when deciding whether two unit
	// quaternions describe the same rotation (1 - |dot| below this value).
	QuatEpsilon = 1e-12

	// normEpsilon guards normalisation of near-zero vectors.
	normEpsilon = 1e-15
)

// Bessel function approximation constants.
// Chebyshev polynomial coefficients from Abramowitz & Stegun,
// "Handbook of Mathematical Functions".
const (
	besselSmallArgThreshold = 3.75 // |x| threshold for the polynomial branch

	besselI0Coeff1 = 3.5156229
	besselI0Coeff2 = 3.0899424
	besselI0Coeff3 = 1.2067492
	besselI0Coeff4 = 0.2659732
	besselI0Coeff5 = 0.360768e-1
	besselI0Coeff6 = 0.45813e-2

	besselI0AsympCoeff0 = 0.39894228
	besselI0AsympCoeff1 = 0.1328592e-1
	besselI0AsympCoeff2 = 0.225319e-2
	besselI0AsympCoeff3 = -0.157565e-2
	besselI0AsympCoeff4 = 0.916281e-2
	besselI0AsympCoeff5 = -0.2057706e-1
	besselI0AsympCoeff6 = 0.2635537e-1
	besselI0AsympCoeff7 = -0.1647633e-1
	besselI0AsympCoeff8 = 0.392377e-2
)

// Kaiser window β formula constants (Kaiser & Schafer).
const (
	kaiserAttHigh   = 50.0 // dB
	kaiserAttMedium = 21.0 // dB

	kaiserBetaHighCoeff = 0.1102
	kaiserBetaHighShift = 8.7

	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886
)
