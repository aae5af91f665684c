package tween

import (
	"fmt"
	"sync"
)

// Bank drives several independent interpolators that share one Config,
// such as the components of an animated property or a set of sliders.
type Bank struct {
	config   *Config
	channels []*Interpolator

	// parallel traces channels concurrently. Stepping a single frame is
	// always sequential.
	parallel bool
}

// NewBank creates one interpolator per initial value. When parallel is
// true, Trace processes channels concurrently.
func NewBank(initial []float64, config *Config, parallel bool) (*Bank, error) {
	if len(initial) < 1 {
		return nil, fmt.Errorf("%w: bank needs at least 1 channel", ErrInvalidConfig)
	}
	if len(initial) > maxChannels {
		return nil, fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}
	if config == nil {
		config = DefaultConfig()
	}

	b := &Bank{
		config:   config,
		channels: make([]*Interpolator, len(initial)),
		parallel: parallel,
	}
	for ch, v := range initial {
		b.channels[ch] = NewInterpolator(v, config)
	}
	return b, nil
}

// Channels returns the channel count.
func (b *Bank) Channels() int { return len(b.channels) }

// Channel returns the interpolator for channel ch.
func (b *Bank) Channel(ch int) *Interpolator { return b.channels[ch] }

// Config returns the shared config.
func (b *Bank) Config() *Config { return b.config }

// SetConfig replaces the config of every channel.
func (b *Bank) SetConfig(config *Config) {
	if config == nil {
		config = DefaultConfig()
	}
	b.config = config
	for _, ch := range b.channels {
		ch.SetConfig(config)
	}
}

// Step advances every channel one frame toward its target. dst receives
// the new values and is allocated when nil or too short.
func (b *Bank) Step(dst, targets []float64, dt float64) ([]float64, error) {
	if len(targets) != len(b.channels) {
		return nil, fmt.Errorf("expected %d targets, got %d", len(b.channels), len(targets))
	}
	if len(dst) < len(b.channels) {
		dst = make([]float64, len(b.channels))
	}
	for ch, interp := range b.channels {
		dst[ch] = interp.Step(targets[ch], dt)
	}
	return dst[:len(b.channels)], nil
}

// Current returns a copy of every channel's current value.
func (b *Bank) Current() []float64 {
	out := make([]float64, len(b.channels))
	for ch, interp := range b.channels {
		out[ch] = interp.Current()
	}
	return out
}

// Reset places every channel at rest on values.
func (b *Bank) Reset(values []float64) error {
	if len(values) != len(b.channels) {
		return fmt.Errorf("expected %d values, got %d", len(b.channels), len(values))
	}
	for ch, interp := range b.channels {
		interp.SetCurrent(values[ch])
	}
	return nil
}

// Trace runs a whole target sequence per channel with a fixed frame time
// and returns the value after every frame. When the bank is parallel,
// channels are processed concurrently.
func (b *Bank) Trace(targets [][]float64, dt float64) ([][]float64, error) {
	if len(targets) != len(b.channels) {
		return nil, fmt.Errorf("expected %d channels, got %d", len(b.channels), len(targets))
	}

	output := make([][]float64, len(targets))

	if !b.parallel || len(targets) <= 1 {
		for ch := range targets {
			output[ch] = b.traceChannel(ch, targets[ch], dt)
		}
		return output, nil
	}

	var wg sync.WaitGroup
	for ch := range targets {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			output[channel] = b.traceChannel(channel, targets[channel], dt)
		}(ch)
	}
	wg.Wait()

	return output, nil
}

// traceChannel steps a single channel through its target sequence.
func (b *Bank) traceChannel(channel int, targets []float64, dt float64) []float64 {
	interp := b.channels[channel]
	out := make([]float64, len(targets))
	for i, target := range targets {
		out[i] = interp.Step(target, dt)
	}
	return out
}
