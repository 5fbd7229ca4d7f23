package field

import "github.com/chewxy/math32"

// Params is the full set of user-adjustable values. Structural fields
// change the geometry and require a rebuild of the line set; cosmetic
// fields only affect how the existing geometry is drawn.
type Params struct {
	// Structural.
	Lines         int
	PointsPerLine int
	Strength      float32

	// Cosmetic.
	PointSize      float32
	Glow           float32
	HueShift       float32
	Shimmer        float32
	RotateSpeed    float32
	SphereGlow     float32
	BloomStrength  float32
	BloomRadius    float32
	BloomThreshold float32
}

// Defaults returns the startup parameter set.
func Defaults() Params {
	return Params{
		Lines:         128,
		PointsPerLine: 64,
		Strength:      10,

		PointSize:      2.5,
		Glow:           1.6,
		HueShift:       0,
		Shimmer:        0.35,
		RotateSpeed:    0.15,
		SphereGlow:     0.5,
		BloomStrength:  1.1,
		BloomRadius:    4,
		BloomThreshold: 0.55,
	}
}

// Parameter ranges. Out-of-range values are folded back in at the
// boundaries (flags, presets, panel steps); the generator itself never
// validates.
const (
	MinLines         = 1
	MaxLines         = 512
	MinPointsPerLine = 1
	MaxPointsPerLine = 256

	MinStrength = float32(0.5)
	MaxStrength = float32(30)
)

// Clamp folds every field into its legal range and returns the result.
func (p Params) Clamp() Params {
	p.Lines = clampInt(p.Lines, MinLines, MaxLines)
	p.PointsPerLine = clampInt(p.PointsPerLine, MinPointsPerLine, MaxPointsPerLine)
	p.Strength = clampF(p.Strength, MinStrength, MaxStrength)

	p.PointSize = clampF(p.PointSize, 0.5, 8)
	p.Glow = clampF(p.Glow, 0, 4)
	p.HueShift = wrapDegrees(p.HueShift)
	p.Shimmer = clampF(p.Shimmer, 0, 1)
	p.RotateSpeed = clampF(p.RotateSpeed, -2, 2)
	p.SphereGlow = clampF(p.SphereGlow, 0, 2)
	p.BloomStrength = clampF(p.BloomStrength, 0, 3)
	p.BloomRadius = clampF(p.BloomRadius, 0, 12)
	p.BloomThreshold = clampF(p.BloomThreshold, 0, 1)
	return p
}

// StructuralEq reports whether two parameter sets build identical geometry.
func (p Params) StructuralEq(o Params) bool {
	return p.Lines == o.Lines &&
		p.PointsPerLine == o.PointsPerLine &&
		p.Strength == o.Strength
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float32) float32 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapDegrees(v float32) float32 {
	if v != v {
		return 0
	}
	v = math32.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v
}
