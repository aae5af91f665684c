package preset

const (
	defaultNoiseFrequency = 1.0

	presetFileMode = 0o644
)
