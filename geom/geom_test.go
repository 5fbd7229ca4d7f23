package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

func near(a, b float32) bool { return math32.Abs(a-b) < 1e-4 }

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4RotateY(0.7)
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	m := Mat4RotateY(math32.Pi / 2)
	p := m.Apply(V3(1, 0, 0))
	// +X rotates onto -Z around Y.
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, -1) {
		t.Fatalf("got (%v,%v,%v)", p.X, p.Y, p.Z)
	}
}

func TestFromSpherical(t *testing.T) {
	// polar=0 points along +Y regardless of azimuth.
	p := FromSpherical(2, 0, 1.3)
	if !near(p.X, 0) || !near(p.Y, 2) || !near(p.Z, 0) {
		t.Fatalf("pole: (%v,%v,%v)", p.X, p.Y, p.Z)
	}
	// polar=pi/2, azimuth=0 points along +X.
	p = FromSpherical(3, math32.Pi/2, 0)
	if !near(p.X, 3) || !near(p.Y, 0) || !near(p.Z, 0) {
		t.Fatalf("equator: (%v,%v,%v)", p.X, p.Y, p.Z)
	}
	// polar=pi/2, azimuth=pi/2 points along +Z.
	p = FromSpherical(3, math32.Pi/2, math32.Pi/2)
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, 3) {
		t.Fatalf("quarter: (%v,%v,%v)", p.X, p.Y, p.Z)
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(V3(3, 0, 4))
	if !near(v.Len(), 1) {
		t.Fatalf("len=%v", v.Len())
	}
	if z := Normalize(Vec3{}); z != (Vec3{}) {
		t.Fatalf("zero vector should stay zero, got %v", z)
	}
}

func TestProjectScreenYUp(t *testing.T) {
	cam := Camera{
		Position: V3(0, 0, 12),
		FOVYRad:  1,
		Near:     0.1,
		Far:      100,
	}
	vp := cam.ViewProjection(1)

	_, y0, _, ok := Project(vp, V3(0, 0, 0), 200, 160)
	if !ok {
		t.Fatalf("project origin failed")
	}
	_, yUp, _, ok := Project(vp, V3(0, 1, 0), 200, 160)
	if !ok {
		t.Fatalf("project +Y failed")
	}
	_, yDown, _, ok := Project(vp, V3(0, -1, 0), 200, 160)
	if !ok {
		t.Fatalf("project -Y failed")
	}

	// In screen coordinates, smaller y means "up".
	if !(yUp < y0 && y0 < yDown) {
		t.Fatalf("expected +Y up: yUp=%v y0=%v yDown=%v", yUp, y0, yDown)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := Camera{Position: V3(0, 0, 12), FOVYRad: 1, Near: 0.1, Far: 100}
	vp := cam.ViewProjection(1)
	if _, _, _, ok := Project(vp, V3(0, 0, 50), 200, 160); ok {
		t.Fatalf("point behind camera should not project")
	}
}

func TestProjectDepthIncreasesAway(t *testing.T) {
	cam := Camera{Position: V3(0, 0, 12), FOVYRad: 1, Near: 0.1, Far: 100}
	vp := cam.ViewProjection(1)
	_, _, dNear, ok := Project(vp, V3(0, 0, 4), 200, 160)
	if !ok {
		t.Fatalf("near point failed")
	}
	_, _, dFar, ok := Project(vp, V3(0, 0, -4), 200, 160)
	if !ok {
		t.Fatalf("far point failed")
	}
	if !(dNear < dFar) {
		t.Fatalf("depth order: near=%v far=%v", dNear, dFar)
	}
}

func TestOrbitClamps(t *testing.T) {
	o := Orbit{Radius: 10, MinPitch: -1.4, MaxPitch: 1.4, MinRadius: 6, MaxRadius: 40}
	o.Rotate(0, 9)
	if o.Pitch != 1.4 {
		t.Fatalf("pitch=%v", o.Pitch)
	}
	o.Zoom(-100)
	if o.Radius != 6 {
		t.Fatalf("radius=%v", o.Radius)
	}
	o.Zoom(1000)
	if o.Radius != 40 {
		t.Fatalf("radius=%v", o.Radius)
	}
}

func TestOrbitApplyRadius(t *testing.T) {
	o := Orbit{Yaw: 0.9, Pitch: 0.4, Radius: 15}
	var cam Camera
	o.Apply(&cam)
	if !near(cam.Position.Len(), 15) {
		t.Fatalf("camera distance=%v", cam.Position.Len())
	}
	if cam.Target != (Vec3{}) {
		t.Fatalf("target moved: %v", cam.Target)
	}
}

func TestSmoothOrbitConverges(t *testing.T) {
	s := NewSmoothOrbit(60, Orbit{Radius: 10})
	s.Orbit.Yaw = 2
	var cam Camera
	for i := 0; i < 600; i++ {
		s.Step(&cam)
	}
	if math32.Abs(float32(s.yaw)-2) > 1e-3 {
		t.Fatalf("spring did not converge: yaw=%v", s.yaw)
	}
}
