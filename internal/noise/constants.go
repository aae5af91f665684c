package noise

// DefaultFractalLevel is the octave count of a new Field.
const DefaultFractalLevel = 2

// Lane seed decorrelators for NewWithSeed.
const (
	laneSeed2 int32 = 0x1327495a
	laneSeed3 int32 = 0x3cbe84f2
)

// offsetRange bounds the per-element phase offset to [-offsetRange, offsetRange].
const offsetRange = 100.0
