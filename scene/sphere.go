package scene

import (
	"github.com/chewxy/math32"

	"corona/geom"
)

// Sphere is the central wireframe: latitude rings plus great circles
// through the poles, each stored as a closed polyline (last point equals
// the first). Geometry is built once; brightness comes from the material.
type Sphere struct {
	Radius float32
	Rings  [][]geom.Vec3
}

// NewSphere builds a wireframe sphere. lats is the number of latitude
// rings (poles excluded), merids the number of great circles through the
// poles, segs the segment count per ring.
func NewSphere(radius float32, lats, merids, segs int) Sphere {
	if segs < 3 {
		segs = 3
	}
	s := Sphere{
		Radius: radius,
		Rings:  make([][]geom.Vec3, 0, lats+merids),
	}

	for i := 0; i < lats; i++ {
		polar := math32.Pi * float32(i+1) / float32(lats+1)
		ring := make([]geom.Vec3, segs+1)
		for k := 0; k < segs; k++ {
			az := 2 * math32.Pi * float32(k) / float32(segs)
			ring[k] = geom.FromSpherical(radius, polar, az)
		}
		ring[segs] = ring[0]
		s.Rings = append(s.Rings, ring)
	}

	// A great circle at azimuth a covers a and a+pi as the polar angle
	// sweeps the full turn.
	for j := 0; j < merids; j++ {
		az := math32.Pi * float32(j) / float32(merids)
		ring := make([]geom.Vec3, segs+1)
		for k := 0; k < segs; k++ {
			polar := 2 * math32.Pi * float32(k) / float32(segs)
			ring[k] = geom.FromSpherical(radius, polar, az)
		}
		ring[segs] = ring[0]
		s.Rings = append(s.Rings, ring)
	}
	return s
}
