// Package scene owns the drawable state of the visualizer: the managed
// field-line set, the central wireframe sphere and the shared display
// material. One goroutine owns all of it; rebuilds are synchronous and
// complete before the next frame is drawn.
package scene

import (
	"github.com/chewxy/math32"

	"corona/field"
	"corona/geom"
)

// Material carries the cosmetic display properties shared by every line.
// Changing it never touches geometry.
type Material struct {
	PointSize      float32
	Glow           float32
	HueShift       float32
	Shimmer        float32
	SphereGlow     float32
	BloomStrength  float32
	BloomRadius    float32
	BloomThreshold float32
}

func materialFrom(p field.Params) Material {
	return Material{
		PointSize:      p.PointSize,
		Glow:           p.Glow,
		HueShift:       p.HueShift,
		Shimmer:        p.Shimmer,
		SphereGlow:     p.SphereGlow,
		BloomStrength:  p.BloomStrength,
		BloomRadius:    p.BloomRadius,
		BloomThreshold: p.BloomThreshold,
	}
}

// Line is one generated field line. Points is immutable between rebuilds;
// Shade is the line's fixed position in the palette.
type Line struct {
	Points []geom.Vec3
	Shade  float32
}

// LineSet manages the full collection of field lines. Structural parameter
// changes go through Rebuild, which regenerates every line; cosmetic
// changes go through SetCosmetic and only update the shared material.
//
// Point buffers are recycled through an internal free pool: Rebuild
// releases every old buffer before generating replacements, so repeated
// rebuilds settle into zero steady-state allocation.
type LineSet struct {
	Tilt float32

	gen   field.Generator
	cur   field.Params
	lines []Line
	mat   Material

	rotateSpeed float32
	yaw         float32
	phase       float32

	pool   [][]geom.Vec3
	alloc  int
	builds int
}

// NewLineSet builds the initial set for p. p must already be clamped.
func NewLineSet(gen field.Generator, p field.Params) *LineSet {
	s := &LineSet{gen: gen}
	s.Rebuild(p)
	return s
}

// Rebuild replaces the whole line set with geometry for p. Old point
// buffers are released to the pool first and reused for the new lines.
// Cosmetic fields of p are applied as well, so a combined edit needs no
// separate SetCosmetic call.
func (s *LineSet) Rebuild(p field.Params) {
	for i := range s.lines {
		s.release(s.lines[i].Points)
		s.lines[i].Points = nil
	}
	if cap(s.lines) < p.Lines {
		s.lines = make([]Line, p.Lines)
	}
	s.lines = s.lines[:p.Lines]

	for i := 0; i < p.Lines; i++ {
		buf := s.grab(p.PointsPerLine)
		s.lines[i] = Line{
			Points: s.gen.Line(i, p.Lines, p.PointsPerLine, p.Strength, buf),
			Shade:  float32(i) / float32(p.Lines),
		}
	}

	s.cur = p
	s.mat = materialFrom(p)
	s.rotateSpeed = p.RotateSpeed
	s.builds++
}

// SetCosmetic applies the cosmetic fields of p to the shared material,
// leaving every point buffer untouched.
func (s *LineSet) SetCosmetic(p field.Params) {
	s.cur.PointSize = p.PointSize
	s.cur.Glow = p.Glow
	s.cur.HueShift = p.HueShift
	s.cur.Shimmer = p.Shimmer
	s.cur.RotateSpeed = p.RotateSpeed
	s.cur.SphereGlow = p.SphereGlow
	s.cur.BloomStrength = p.BloomStrength
	s.cur.BloomRadius = p.BloomRadius
	s.cur.BloomThreshold = p.BloomThreshold

	s.mat = materialFrom(s.cur)
	s.rotateSpeed = s.cur.RotateSpeed
}

// Apply routes p to Rebuild or SetCosmetic depending on whether its
// structural fields differ from the current set.
func (s *LineSet) Apply(p field.Params) {
	if p.StructuralEq(s.cur) {
		s.SetCosmetic(p)
		return
	}
	s.Rebuild(p)
}

// Tick advances the whole-set rotation and the shimmer phase.
func (s *LineSet) Tick(dt float32) {
	s.yaw += s.rotateSpeed * dt
	if s.yaw >= 2*math32.Pi {
		s.yaw -= 2 * math32.Pi
	}
	if s.yaw < 0 {
		s.yaw += 2 * math32.Pi
	}
	s.phase += dt
	if s.phase > 1024 {
		s.phase -= 1024
	}
}

// Model returns the transform shared by every line and the sphere:
// the accumulated yaw around Y over a fixed tilt.
func (s *LineSet) Model() geom.Mat4 {
	return geom.Mat4Mul(geom.Mat4RotateY(s.yaw), geom.Mat4RotateX(s.Tilt))
}

func (s *LineSet) Lines() []Line        { return s.lines }
func (s *LineSet) Material() Material   { return s.mat }
func (s *LineSet) Params() field.Params { return s.cur }
func (s *LineSet) Yaw() float32         { return s.yaw }
func (s *LineSet) Phase() float32       { return s.phase }

// Builds returns how many times the full set has been generated,
// including the initial build.
func (s *LineSet) Builds() int { return s.builds }

// Leaked returns the number of point buffers that are neither held by a
// line nor parked in the free pool. It is zero unless buffer bookkeeping
// is broken.
func (s *LineSet) Leaked() int {
	return s.alloc - len(s.pool) - len(s.lines)
}

func (s *LineSet) grab(n int) []geom.Vec3 {
	if k := len(s.pool); k > 0 {
		buf := s.pool[k-1]
		s.pool = s.pool[:k-1]
		if cap(buf) >= n {
			return buf[:n]
		}
		// Too small for the new layout; let it go.
		s.alloc--
	}
	s.alloc++
	return make([]geom.Vec3, n)
}

func (s *LineSet) release(buf []geom.Vec3) {
	if buf == nil {
		return
	}
	s.pool = append(s.pool, buf[:0])
}
