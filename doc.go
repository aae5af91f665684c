// Package tween provides frame-rate independent motion math in pure Go.
//
// The library covers the portable core of procedural animation: a
// deterministic xxHash32 generator for reproducible randomness, fractal
// gradient noise with scalar, vector and rotation outputs, first order
// exponential smoothing, and a critically damped spring for scalars, vectors
// and quaternions. Every operation takes the elapsed time explicitly and
// keeps no hidden global state.
//
// # Features
//
//   - Exponential and critically damped spring interpolation with a single
//     configuration-driven [Interpolator]
//   - Quaternion springs with double-cover correction
//   - Seeded noise fields whose output is reproducible bit for bit
//   - Explicit [SeedFactory] instead of a process-wide counter
//   - Optional parallel stepping of many channels via [Bank]
//   - Vector and quaternion types from gonum
//
// # Quick Start
//
// Smoothing a scalar toward a moving target:
//
//	interp := tween.NewInterpolator(0, tween.DefaultConfig())
//	for frame := range frames {
//	    value := interp.Step(frame.Target, frame.DeltaTime)
//	    apply(value)
//	}
//
// Sampling a noise field for many elements:
//
//	field, err := tween.NewNoiseFieldWithSeed(42, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	field.Step(dt)
//	for i := range elements {
//	    elements[i].Offset = field.Vector(int32(i))
//	}
//
// # Modes
//
//   - [ModeDirect]: the value snaps to the target. Speed is ignored.
//   - [ModeExponential]: next = target + (current-target)*exp(-speed*dt).
//   - [ModeDampedSpring]: critically damped spring with rate speed. The
//     implicit update stays stable for large speed*dt and never overshoots
//     a fixed target.
//
// # Errors
//
// Primitive operations reject out-of-domain rates and time steps with
// [ErrInvalidArgument]. Configuration validation reports [ErrInvalidConfig].
// Numerical degeneracies such as equal or antipodal quaternions are handled
// locally and never surface as errors.
package tween
