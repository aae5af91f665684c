package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	tween "github.com/tphakala/go-motion-tween"
	"github.com/tphakala/go-motion-tween/internal/preset"
	"gonum.org/v1/gonum/spatial/r3"
)

// Motion preset kinds accepted by -motion.
const (
	motionBrownian = "brownian"
	motionFollow   = "follow"
	motionConstant = "constant"
)

// poseStepper advances an animator by one frame.
type poseStepper func(dt float64) tween.Pose

// loadMotion builds the named motion preset of the given kind. Followers
// chase a pose at target on X, turned followYaw degrees about Y.
func loadMotion(presetPath, kind, name string, target float64, seed uint32) (poseStepper, error) {
	if presetPath == "" || name == "" {
		return nil, fmt.Errorf("-preset and -name are required with -motion")
	}
	f, err := preset.Load(presetPath)
	if err != nil {
		return nil, err
	}
	seeds := tween.NewSeedFactory(seed)

	switch kind {
	case motionBrownian:
		b, err := f.BrownianMotion(name, tween.IdentityPose, seeds)
		if err != nil {
			return nil, err
		}
		return b.Update, nil
	case motionFollow:
		fl, err := f.Follower(name, tween.IdentityPose, seeds)
		if err != nil {
			return nil, err
		}
		goal := tween.NewPose(r3.Vec{X: target}, tween.Euler(0, followYaw, 0))
		return func(dt float64) tween.Pose { return fl.Step(goal, dt) }, nil
	case motionConstant:
		c, err := f.ConstantMotion(name, seeds)
		if err != nil {
			return nil, err
		}
		pose := tween.IdentityPose
		return func(dt float64) tween.Pose {
			pose = c.Update(pose, dt)
			return pose
		}, nil
	default:
		return nil, fmt.Errorf("unknown motion kind %q (want %s, %s or %s)",
			kind, motionBrownian, motionFollow, motionConstant)
	}
}

// writePoseCSV steps the animator frames times and writes one pose per row.
func writePoseCSV(w io.Writer, step poseStepper, dt float64, frames int) error {
	cw := csv.NewWriter(w)
	header := []string{"frame", "time", "px", "py", "pz", "qw", "qx", "qy", "qz"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range frames {
		p := step(dt)
		row := []string{
			strconv.Itoa(i + 1), formatFloat(float64(i+1) * dt),
			formatFloat(p.Position.X), formatFloat(p.Position.Y), formatFloat(p.Position.Z),
			formatFloat(p.Rotation.Real), formatFloat(p.Rotation.Imag),
			formatFloat(p.Rotation.Jmag), formatFloat(p.Rotation.Kmag),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
