package main

// Default command-line flag values
const (
	defaultMode    = "damped-spring"
	defaultTarget  = 1.0
	defaultFPS     = 60.0
	defaultSeconds = 1.0
)

// followYaw is the heading of the follower's goal pose, in degrees.
const followYaw = 90.0

// Demo comparison settings
const (
	demoFrames = 30
	demoTarget = 5.0
)

// Output precision
const (
	floatFormat    = 'g'
	floatPrecision = -1
	floatBits      = 64
)
