// Command tween-trace prints the step response of an interpolator as CSV:
// one row per frame with the time, value and velocity. With -motion it
// traces a motion preset instead, one pose per row.
//
// Usage:
//
//	tween-trace -mode exponential -speed 10 -target 5
//	tween-trace -preset presets.toml -name camera -fps 120 -frames 240
//	tween-trace -demo
//	tween-trace -preset presets.toml -motion brownian -name wobble -seed 7
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	tween "github.com/tphakala/go-motion-tween"
	"github.com/tphakala/go-motion-tween/internal/preset"
)

func main() {
	var (
		mode       = flag.String("mode", defaultMode, "Interpolation mode: direct, exponential, damped-spring")
		speed      = flag.Float64("speed", tween.DefaultConfig().Speed, "Speed (rate for exponential, omega for spring)")
		initial    = flag.Float64("initial", 0, "Starting value")
		target     = flag.Float64("target", defaultTarget, "Target value")
		fps        = flag.Float64("fps", defaultFPS, "Frames per second")
		frames     = flag.Int("frames", 0, "Number of frames (default: one second)")
		presetPath = flag.String("preset", "", "Preset file to read the interpolator from")
		presetName = flag.String("name", "", "Interpolator preset name (with -preset)")
		demo       = flag.Bool("demo", false, "Compare all modes side by side")
		motionKind = flag.String("motion", "", "Trace a motion preset: brownian, follow, constant")
		seed       = flag.Uint("seed", 0, "First seed for motion presets")
	)
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %v", *fps)
	}
	dt := 1 / *fps
	n := *frames
	if n <= 0 {
		n = int(*fps * defaultSeconds)
	}

	if *demo {
		if err := writeComparison(os.Stdout, dt, demoFrames); err != nil {
			log.Fatalf("Failed to write comparison: %v", err)
		}
		return
	}

	if *motionKind != "" {
		step, err := loadMotion(*presetPath, *motionKind, *presetName, *target, uint32(*seed))
		if err != nil {
			log.Fatalf("Failed to create motion: %v", err)
		}
		if err := writePoseCSV(os.Stdout, step, dt, n); err != nil {
			log.Fatalf("Failed to write trace: %v", err)
		}
		return
	}

	config, err := loadConfig(*presetPath, *presetName, *mode, *speed)
	if err != nil {
		log.Fatalf("Failed to create interpolator config: %v", err)
	}

	samples := tween.StepResponse(config, *initial, *target, dt, n)
	if err := writeCSV(os.Stdout, samples); err != nil {
		log.Fatalf("Failed to write trace: %v", err)
	}
}

// loadConfig returns the preset config when a preset file is given, or
// builds one from the mode and speed flags.
func loadConfig(presetPath, name, mode string, speed float64) (*tween.Config, error) {
	if presetPath != "" {
		if name == "" {
			return nil, fmt.Errorf("-name is required with -preset")
		}
		f, err := preset.Load(presetPath)
		if err != nil {
			return nil, err
		}
		return f.Interpolator(name)
	}

	m, err := tween.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	config := tween.NewConfig(m, speed)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, floatFormat, floatPrecision, floatBits)
}

// writeCSV writes samples with a header row.
func writeCSV(w io.Writer, samples []tween.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "time", "value", "velocity"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{strconv.Itoa(s.Frame), formatFloat(s.Time), formatFloat(s.Value), formatFloat(s.Velocity)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeComparison writes one value column per mode for a unit step toward
// demoTarget at default speed.
func writeComparison(w io.Writer, dt float64, frames int) error {
	configs := []*tween.Config{
		tween.DirectConfig(),
		tween.NewConfig(tween.ModeExponential, tween.DefaultConfig().Speed),
		tween.DefaultConfig(),
		tween.QuickConfig(),
	}

	header := []string{"frame", "time"}
	traces := make([][]tween.Sample, len(configs))
	for i, c := range configs {
		header = append(header, fmt.Sprintf("%s@%s", c.Mode, formatFloat(c.Speed)))
		traces[i] = tween.StepResponse(c, 0, demoTarget, dt, frames)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for f := range frames {
		row := []string{strconv.Itoa(f + 1), formatFloat(traces[0][f].Time)}
		for _, tr := range traces {
			row = append(row, formatFloat(tr[f].Value))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
