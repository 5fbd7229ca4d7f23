package geom

import "github.com/charmbracelet/harmonica"

// Orbit positions a camera on a sphere around a target point.
type Orbit struct {
	Target Vec3
	Yaw    float32
	Pitch  float32
	Radius float32

	MinPitch  float32
	MaxPitch  float32
	MinRadius float32
	MaxRadius float32
}

func (o *Orbit) Rotate(deltaYaw, deltaPitch float32) {
	o.Yaw += deltaYaw
	o.Pitch += deltaPitch
	if o.MinPitch != 0 || o.MaxPitch != 0 {
		o.Pitch = Clamp(o.Pitch, o.MinPitch, o.MaxPitch)
	}
}

func (o *Orbit) Zoom(delta float32) {
	o.Radius += delta
	if o.MinRadius != 0 && o.Radius < o.MinRadius {
		o.Radius = o.MinRadius
	}
	if o.MaxRadius != 0 && o.Radius > o.MaxRadius {
		o.Radius = o.MaxRadius
	}
}

// Apply moves cam onto the orbit sphere, looking at the target.
func (o *Orbit) Apply(cam *Camera) {
	r := o.Radius
	if r == 0 {
		r = 3
	}
	m := Mat4Mul(Mat4RotateY(o.Yaw), Mat4RotateX(o.Pitch))
	p := m.Apply(V3(0, 0, r))
	cam.Position = o.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = o.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

// SmoothOrbit wraps an Orbit with critically damped springs so camera
// input glides instead of stepping. The wrapped Orbit holds the targets;
// the springs track the displayed values at a fixed frame rate.
type SmoothOrbit struct {
	Orbit Orbit

	spring             harmonica.Spring
	yaw, pitch, radius float64
	yawV, pitchV, radV float64
}

func NewSmoothOrbit(fps int, o Orbit) *SmoothOrbit {
	return &SmoothOrbit{
		Orbit:  o,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 5.0, 1.0),
		yaw:    float64(o.Yaw),
		pitch:  float64(o.Pitch),
		radius: float64(o.Radius),
	}
}

// Step advances the springs one frame and applies the smoothed orbit to cam.
func (s *SmoothOrbit) Step(cam *Camera) {
	s.yaw, s.yawV = s.spring.Update(s.yaw, s.yawV, float64(s.Orbit.Yaw))
	s.pitch, s.pitchV = s.spring.Update(s.pitch, s.pitchV, float64(s.Orbit.Pitch))
	s.radius, s.radV = s.spring.Update(s.radius, s.radV, float64(s.Orbit.Radius))

	view := Orbit{
		Target: s.Orbit.Target,
		Yaw:    float32(s.yaw),
		Pitch:  float32(s.pitch),
		Radius: float32(s.radius),
	}
	view.Apply(cam)
}
