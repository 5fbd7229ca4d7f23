package field

import (
	"testing"

	"github.com/chewxy/math32"

	"corona/geom"
)

func TestLineLength(t *testing.T) {
	g := NewGenerator()
	for _, n := range []int{1, 2, 7, 64, 256} {
		pts := g.Line(0, 16, n, 10, nil)
		if len(pts) != n {
			t.Fatalf("points=%d want %d", len(pts), n)
		}
	}
}

func TestLineStartsOnSphere(t *testing.T) {
	g := NewGenerator()
	for idx := 0; idx < 16; idx++ {
		pts := g.Line(idx, 16, 64, 10, nil)
		if d := math32.Abs(pts[0].Len() - g.SphereRadius); d > 1e-4 {
			t.Fatalf("line %d first point radius off by %v", idx, d)
		}
	}
}

func TestLineEndApproachesSphere(t *testing.T) {
	g := NewGenerator()
	pts := g.Line(3, 16, 256, 10, nil)
	last := pts[len(pts)-1]
	// The final sample sits at t just short of pi, so its radius is within
	// one sample step's bulge of the sphere surface.
	if d := math32.Abs(last.Len() - g.SphereRadius); d > 0.1 {
		t.Fatalf("last point radius off by %v", d)
	}
}

func TestHalfRotationSymmetry(t *testing.T) {
	g := NewGenerator()
	const total = 8
	a := g.Line(1, total, 64, 10, nil)
	b := g.Line(1+total/2, total, 64, 10, nil)
	for i := range a {
		if math32.Abs(a[i].X+b[i].X) > 1e-3 ||
			math32.Abs(a[i].Y-b[i].Y) > 1e-3 ||
			math32.Abs(a[i].Z+b[i].Z) > 1e-3 {
			t.Fatalf("point %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestLineDeterministic(t *testing.T) {
	a := Points(5, 32, 48, 12)
	b := Points(5, 32, 48, 12)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestKnownEquatorPoint(t *testing.T) {
	// Line 0 of 4 with 4 points and strength 10 around a radius-4 sphere:
	// the sample at t=pi/2 lands on (14, 0, 0).
	pts := Points(0, 4, 4, 10)
	p := pts[2]
	if math32.Abs(p.X-14) > 1e-3 || math32.Abs(p.Y) > 1e-3 || math32.Abs(p.Z) > 1e-3 {
		t.Fatalf("equator point: (%v,%v,%v)", p.X, p.Y, p.Z)
	}
}

func TestAzimuthSpacing(t *testing.T) {
	g := NewGenerator()
	const total = 12
	want := 2 * math32.Pi / total
	for idx := 0; idx < total-1; idx++ {
		a := g.Line(idx, total, 8, 10, nil)
		b := g.Line(idx+1, total, 8, 10, nil)
		// Azimuth read off at the equator sample.
		az0 := math32.Atan2(a[4].Z, a[4].X)
		az1 := math32.Atan2(b[4].Z, b[4].X)
		d := az1 - az0
		if d < 0 {
			d += 2 * math32.Pi
		}
		if math32.Abs(d-want) > 1e-3 {
			t.Fatalf("lines %d..%d spacing %v want %v", idx, idx+1, d, want)
		}
	}
}

func TestLineReusesDst(t *testing.T) {
	g := NewGenerator()
	buf := make([]geom.Vec3, 0, 64)
	out := g.Line(0, 8, 64, 10, buf)
	if &out[0] != &buf[:1][0] {
		t.Fatalf("dst with capacity was not reused")
	}
	// Smaller request still reuses, larger one grows.
	out = g.Line(0, 8, 16, 10, out)
	if len(out) != 16 {
		t.Fatalf("len=%d", len(out))
	}
	out = g.Line(0, 8, 128, 10, out)
	if len(out) != 128 {
		t.Fatalf("len=%d", len(out))
	}
}
