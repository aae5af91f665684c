// Command noise-wav renders two lanes of a noise field as a stereo WAV file,
// so a motion signal can be listened to or inspected in an audio editor.
// The left channel is lane 1 and the right channel lane 2 of the same index.
//
// Usage:
//
//	noise-wav -seed 42 -frequency 220 -duration 5 out.wav
//	noise-wav -preset presets.toml -name wobble -fractal 4 out.wav
//	noise-wav -analyze out.wav                  # Print a spectrum summary
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-motion-tween/internal/noise"
	"github.com/tphakala/go-motion-tween/internal/preset"
	"github.com/tphakala/go-motion-tween/internal/xxhash"
)

const (
	// Frames rendered per chunk
	bufferSize = 8192

	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// CLI defaults
	defaultRate      = 48000
	defaultFrequency = 220.0
	defaultDuration  = 5.0
	defaultAmplitude = 0.8
	defaultSeed      = 0
	minRequiredArgs  = 1

	// Spectrum summary
	analysisWindow = 1 << 16
	summaryPeaks   = 5

	// WAV audio format tag for integer PCM
	wavFormatPCM = 1
)

var errUsage = errors.New("insufficient arguments")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	seed := flag.Int("seed", defaultSeed, "Master seed for the three noise lanes")
	frequency := flag.Float64("frequency", defaultFrequency, "Noise phase advance per second")
	fractal := flag.Int("fractal", noise.DefaultFractalLevel, "Fractal level (0-8)")
	rate := flag.Int("rate", defaultRate, "Sample rate in Hz")
	duration := flag.Float64("duration", defaultDuration, "Duration in seconds")
	index := flag.Int("index", 0, "Noise index to render")
	bits := flag.Int("bits", bitsPerSample16, "Bit depth: 16, 24 or 32")
	amplitude := flag.Float64("amplitude", defaultAmplitude, "Output gain applied to the noise")
	presetPath := flag.String("preset", "", "Preset file to read the noise field from")
	presetName := flag.String("name", "", "Noise preset name (with -preset)")
	analyze := flag.Bool("analyze", false, "Analyze an existing WAV file instead of rendering")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errUsage
	}
	path := args[0]

	if *analyze {
		return analyzeWAV(path, *verbose)
	}

	opts := renderOptions{
		rate:      *rate,
		bitDepth:  *bits,
		duration:  *duration,
		amplitude: *amplitude,
		index:     int32(*index),
	}
	if err := opts.validate(); err != nil {
		return err
	}

	field, err := buildField(*presetPath, *presetName, int32(*seed), *frequency)
	if err != nil {
		return err
	}
	if !isFlagSet("fractal") && *presetPath != "" {
		*fractal = field.FractalLevel()
	}
	field.SetFractalLevel(*fractal)

	if *verbose {
		log.Printf("Output: %s", path)
		log.Printf("Format: %d Hz, %d-bit stereo", opts.rate, opts.bitDepth)
		log.Printf("Noise: seeds %v, frequency %v, fractal %d, index %d",
			field.Seeds(), field.Frequency(), field.FractalLevel(), opts.index)
	}

	start := time.Now()
	frames, err := renderWAV(path, field, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %s\n", filepath.Base(path))
	fmt.Printf("  %d frames at %d Hz (%.2fs)\n", frames, opts.rate, float64(frames)/float64(opts.rate))
	fmt.Printf("  Took %.2fs\n", elapsed.Seconds())
	return nil
}

// buildField creates the noise field from a preset or from the flags.
func buildField(presetPath, name string, seed int32, frequency float64) (*noise.Field, error) {
	if presetPath == "" {
		return noise.NewWithSeed(seed, frequency)
	}
	if name == "" {
		return nil, fmt.Errorf("-name is required with -preset")
	}
	f, err := preset.Load(presetPath)
	if err != nil {
		return nil, err
	}
	return f.NoiseField(name, xxhash.NewSeedFactory(uint32(seed)))
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
