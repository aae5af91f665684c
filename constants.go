package tween

// Speed limits accepted by Config.Validate.
const (
	minSpeed = 0.1
	maxSpeed = 100.0
)

// Preset speeds.
const (
	defaultSpeed = 10.0
	quickSpeed   = 50.0
)

// Mode names used by String, ParseMode and preset files.
const (
	modeNameDirect       = "direct"
	modeNameExponential  = "exponential"
	modeNameDampedSpring = "damped-spring"
)

// Bank limits.
const maxChannels = 256
