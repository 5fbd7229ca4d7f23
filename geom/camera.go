package geom

// Camera describes a perspective viewing transform.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad float32
	Near    float32
	Far     float32
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// ViewProjection returns the combined projection*view matrix for a target
// aspect ratio. Compute it once per frame and feed it to Project.
func (c Camera) ViewProjection(aspect float32) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	return Mat4Mul(Mat4Perspective(fov, aspect, c.Near, c.Far), c.View())
}

// Project maps a world point through vp into screen space. sx and sy keep
// subpixel precision. depth is the view-space distance along the camera
// axis; ok is false for points on or behind the near plane.
func Project(vp Mat4, p Vec3, w, h int) (sx, sy, depth float32, ok bool) {
	clip := vp.Apply(p)
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	invW := 1 / clip.W
	nx := clip.X * invW
	ny := clip.Y * invW
	sx = (nx*0.5 + 0.5) * float32(w-1)
	sy = (1 - (ny*0.5 + 0.5)) * float32(h-1)
	return sx, sy, clip.W, true
}
