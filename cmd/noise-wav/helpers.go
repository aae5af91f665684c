package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-motion-tween/internal/noise"
	"github.com/tphakala/go-motion-tween/internal/simdops"
	"github.com/tphakala/go-motion-tween/internal/spectrum"
)

// renderOptions holds the output format and signal settings.
type renderOptions struct {
	rate      int
	bitDepth  int
	duration  float64
	amplitude float64
	index     int32
}

func (o *renderOptions) validate() error {
	if o.rate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", o.rate)
	}
	switch o.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("unsupported bit depth %d", o.bitDepth)
	}
	if !(o.duration > 0) || math.IsInf(o.duration, 0) {
		return fmt.Errorf("duration must be positive, got %v", o.duration)
	}
	return nil
}

// totalFrames returns the number of frames to render.
func (o *renderOptions) totalFrames() int {
	return int(o.duration * float64(o.rate))
}

// renderWAV writes lanes 1 and 2 of field at opts.index to path and
// returns the number of frames written.
func renderWAV(path string, field *noise.Field, opts renderOptions) (frames int, err error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	enc := wav.NewEncoder(out, opts.rate, opts.bitDepth, stereoChannels, wavFormatPCM)
	defer func() {
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	buffers := newRenderBuffers(opts)
	dt := 1 / float64(opts.rate)
	total := opts.totalFrames()

	for frames < total {
		n := min(bufferSize, total-frames)
		fillLanes(field, opts.index, dt, buffers.left[:n], buffers.right[:n])

		samples := interleaveInto(buffers.left[:n], buffers.right[:n], buffers.interleaved, buffers.pcm.Data, opts.amplitude, buffers.maxVal)
		buffers.pcm.Data = buffers.pcm.Data[:samples]
		if err := enc.Write(buffers.pcm); err != nil {
			return frames, fmt.Errorf("failed to write audio data: %w", err)
		}
		buffers.pcm.Data = buffers.pcm.Data[:cap(buffers.pcm.Data)]
		frames += n
	}

	return frames, nil
}

// renderBuffers holds the preallocated per-chunk buffers.
type renderBuffers struct {
	left, right []float64
	interleaved []float64
	pcm         *audio.IntBuffer
	maxVal      float64
}

func newRenderBuffers(opts renderOptions) *renderBuffers {
	return &renderBuffers{
		left:        make([]float64, bufferSize),
		right:       make([]float64, bufferSize),
		interleaved: make([]float64, bufferSize*stereoChannels),
		pcm: &audio.IntBuffer{
			Data: make([]int, bufferSize*stereoChannels),
			Format: &audio.Format{
				NumChannels: stereoChannels,
				SampleRate:  opts.rate,
			},
			SourceBitDepth: opts.bitDepth,
		},
		maxVal: getMaxValue(opts.bitDepth),
	}
}

// fillLanes steps field by dt per frame and records lanes 1 and 2.
func fillLanes(field *noise.Field, index int32, dt float64, left, right []float64) {
	for i := range left {
		field.Step(dt)
		v := field.Vector(index)
		left[i] = v.X
		right[i] = v.Y
	}
}

// interleaveInto interleaves left and right, applies gain and quantizes to
// dst. Returns the number of elements written.
func interleaveInto(left, right, scratch []float64, dst []int, gain, maxVal float64) int {
	n := len(left) * stereoChannels
	ops := simdops.Float64()
	ops.Interleave2(scratch[:n], left, right)
	ops.Scale(scratch[:n], scratch[:n], gain)

	for i, s := range scratch[:n] {
		dst[i] = int(max(-1, min(1, s)) * maxVal)
	}
	return n
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// wavInput holds a decoded WAV file as normalized per-channel samples.
type wavInput struct {
	rate     int
	bitDepth int
	channels [][]float64
}

// readWAV decodes path into per-channel samples in [-1, 1].
func readWAV(path string) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	numChannels := buf.Format.NumChannels
	bitDepth := int(dec.BitDepth)
	invMaxVal := 1 / getMaxValue(bitDepth)
	frames := len(buf.Data) / numChannels

	channels := make([][]float64, numChannels)
	for ch := range numChannels {
		channels[ch] = make([]float64, frames)
	}
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			channels[ch][i] = float64(buf.Data[base+ch]) * invMaxVal
		}
	}

	return &wavInput{rate: buf.Format.SampleRate, bitDepth: bitDepth, channels: channels}, nil
}

// channelSummary describes one analysed channel.
type channelSummary struct {
	rms, peak, mean float64
	centroid        float64
	peaks           []spectrum.Bin
}

// summarize analyses the last analysisWindow samples of signal.
func summarize(signal []float64, rate int) (*channelSummary, error) {
	size := min(len(signal), analysisWindow)
	analyzer, err := spectrum.NewAnalyzer(size, float64(rate), spectrum.DefaultAttenuation)
	if err != nil {
		return nil, err
	}

	history := spectrum.NewHistory(size)
	history.Write(signal...)
	bins, err := analyzer.AnalyzeHistory(history)
	if err != nil {
		return nil, err
	}

	return &channelSummary{
		rms:      spectrum.RMS(signal),
		peak:     spectrum.Peak(signal),
		mean:     spectrum.Mean(signal),
		centroid: spectrum.Centroid(bins),
		peaks:    topBins(bins[1:], summaryPeaks),
	}, nil
}

// topBins returns the n strongest bins, strongest first.
func topBins(bins []spectrum.Bin, n int) []spectrum.Bin {
	out := make([]spectrum.Bin, 0, n)
	used := make([]bool, len(bins))
	for range min(n, len(bins)) {
		best := -1
		for i, b := range bins {
			if !used[i] && (best < 0 || b.Power > bins[best].Power) {
				best = i
			}
		}
		used[best] = true
		out = append(out, bins[best])
	}
	return out
}

// analyzeWAV prints level and spectrum statistics for every channel.
func analyzeWAV(path string, verbose bool) error {
	in, err := readWAV(path)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", in.rate, len(in.channels), in.bitDepth)
	}

	for ch, signal := range in.channels {
		s, err := summarize(signal, in.rate)
		if err != nil {
			return fmt.Errorf("channel %d: %w", ch, err)
		}
		fmt.Printf("Channel %d: rms %.4f, peak %.4f, mean %+.4f, centroid %.2f Hz\n",
			ch, s.rms, s.peak, s.mean, s.centroid)
		for _, b := range s.peaks {
			fmt.Printf("  %10.2f Hz  %7.2f dB\n", b.Freq, spectrum.PowerDB(b.Power))
		}
	}
	return nil
}
