package motion

// Brownian defaults.
const (
	defaultNoiseFrequency    = 0.2
	defaultPositionAmplitude = 0.5
	defaultRotationAmplitude = 10.0
	defaultBrownianFractal   = 3
	brownianPhaseMin         = -10000.0
	brownianPhaseMax         = 0.0
	brownianChannels         = 6
	brownianRotationChannel  = 3
)

// Constant motion defaults.
const (
	defaultTranslationSpeed = 1.0
	defaultRotationSpeed    = 30.0
)

// Follower defaults and limits.
const (
	defaultFollowSpeed  = 2.0
	maxFollowSpeed      = 20.0
	defaultJumpDistance = 1.0
	defaultJumpAngle    = 60.0
	maxJumpAngle        = 360.0
	jumpScaleMin        = 0.5
	jumpScaleMax        = 1.0

	// Keys consumed per jump: two scales and two sphere directions.
	jumpKeyStride = 6

	// Legacy spring mode: velocity drag and per-step pull per unit speed.
	springDragBase    = 1.0
	springDragPerUnit = 0.5
	springPullPerUnit = 0.1
)
