// Package field generates the dipole-style field lines drawn around the
// central sphere. The generator is pure math: same inputs, same points,
// no shared state.
package field

import (
	"github.com/chewxy/math32"

	"corona/geom"
)

// Generator produces field-line geometry around a sphere of SphereRadius.
// Overshoot extends each line's polar sweep slightly past the poles so
// the ends tuck behind the sphere instead of stopping at the surface.
type Generator struct {
	SphereRadius float32
	Overshoot    float32
}

// NewGenerator returns a generator with the standard sphere radius and
// pole overshoot.
func NewGenerator() Generator {
	return Generator{SphereRadius: 4, Overshoot: 0.2}
}

// Line fills dst with the points of field line index out of total lines,
// sampled at points positions along the arc, and returns the slice. All
// points of one line share a single azimuth so the line stays planar; the
// bulge radius follows strength. dst is reused when it has capacity, so
// callers can pool the backing arrays.
//
// Inputs are trusted: index in [0,total), total and points at least 1,
// strength positive. Callers clamp at the boundary.
func (g Generator) Line(index, total, points int, strength float32, dst []geom.Vec3) []geom.Vec3 {
	if cap(dst) < points {
		dst = make([]geom.Vec3, points)
	}
	dst = dst[:points]

	theta := float32(index) / float32(total) * 2 * math32.Pi
	sweep := math32.Pi/2 + g.Overshoot
	for i := 0; i < points; i++ {
		t := float32(i) / float32(points) * math32.Pi
		sin, cos := math32.Sincos(t)
		r := g.SphereRadius + strength*sin*(1+0.5*cos)
		phi := math32.Pi/2 - cos*sweep
		dst[i] = geom.FromSpherical(r, phi, theta)
	}
	return dst
}

// Points is a convenience wrapper: one freshly allocated line from the
// default generator.
func Points(index, total, points int, strength float32) []geom.Vec3 {
	return NewGenerator().Line(index, total, points, strength, nil)
}
