package noise

import (
	"github.com/tphakala/go-motion-tween/internal/simdops"
	"gonum.org/v1/gonum/spatial/r3"
)

// FillValues writes Value(first+i) * amplitude into dst[i].
func (f *Field) FillValues(dst []float64, first int32, amplitude float64) {
	for i := range dst {
		dst[i] = f.Value(first + int32(i))
	}
	simdops.Float64().Scale(dst, dst, amplitude)
}

// FillVectors writes Vector(first+i) scaled per axis into dst[i].
func (f *Field) FillVectors(dst []r3.Vec, first int32, scale r3.Vec) {
	for i := range dst {
		v := f.Vector(first + int32(i))
		dst[i] = r3.Vec{X: v.X * scale.X, Y: v.Y * scale.Y, Z: v.Z * scale.Z}
	}
}

// Trace steps the field len(dst) times by dt and records Value(index)
// after each step, scaled by amplitude. The field is left advanced.
func (f *Field) Trace(dst []float64, index int32, dt, amplitude float64) {
	for i := range dst {
		f.Step(dt)
		dst[i] = f.Value(index)
	}
	simdops.Float64().Scale(dst, dst, amplitude)
}
