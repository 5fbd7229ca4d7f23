package render

import (
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"

	"corona/geom"
	"corona/scene"
)

// Renderer draws the scene into a Frame. Create one and reuse it; the
// bloom buffers and noise source live across frames.
type Renderer struct {
	// Background fill, near-black so additive glow reads against it.
	BG [3]byte

	palette Palette
	noise   *perlin.Perlin
	bloom   Bloom
}

func NewRenderer() *Renderer {
	return &Renderer{
		BG:      [3]byte{2, 3, 10},
		palette: NewPalette(),
		noise:   perlin.NewPerlin(2, 2, 3, 1337),
	}
}

// Draw renders one complete frame: sphere wireframe, field-line streaks,
// then bloom. The panel layer is the host's business and comes after.
func (rd *Renderer) Draw(f *Frame, set *scene.LineSet, sph scene.Sphere, cam geom.Camera) {
	f.Clear(rd.BG[0], rd.BG[1], rd.BG[2])

	aspect := float32(f.W) / float32(f.H)
	vp := cam.ViewProjection(aspect)
	mvp := geom.Mat4Mul(vp, set.Model())

	// Depth reference: points at the orbit center draw at unit scale,
	// nearer points larger and brighter.
	ref := cam.Position.Sub(cam.Target).Len()
	if ref <= 0 {
		ref = 1
	}

	mat := set.Material()
	rd.drawSphere(f, sph, mvp, ref, mat.SphereGlow)
	rd.drawStreaks(f, set, mvp, ref, mat)
	rd.bloom.Apply(f, mat.BloomStrength, mat.BloomRadius, mat.BloomThreshold)
}

func (rd *Renderer) drawSphere(f *Frame, sph scene.Sphere, mvp geom.Mat4, ref, glow float32) {
	if glow <= 0 {
		return
	}
	base := glow * 110
	for _, ring := range sph.Rings {
		px, py, pd := float32(0), float32(0), float32(0)
		ok := false
		for i, p := range ring {
			sx, sy, d, vis := geom.Project(mvp, p, f.W, f.H)
			if i > 0 && ok && vis {
				i0 := base * depthFade(pd, ref)
				i1 := base * depthFade(d, ref)
				f.LineAdd(int(px+0.5), int(py+0.5), int(sx+0.5), int(sy+0.5), 120, 170, 255, i0/255, i1/255)
			}
			px, py, pd, ok = sx, sy, d, vis
		}
	}
}

func (rd *Renderer) drawStreaks(f *Frame, set *scene.LineSet, mvp geom.Mat4, ref float32, mat scene.Material) {
	if mat.Glow <= 0 {
		return
	}
	phase := set.Phase()
	lines := set.Lines()
	for li := range lines {
		ln := &lines[li]
		cr, cg, cb := rd.palette.At(ln.Shade, mat.HueShift)

		shimmer := float32(1)
		if mat.Shimmer > 0 {
			n := float32(rd.noise.Noise2D(float64(ln.Shade)*7.3, float64(phase)*0.6))
			shimmer = 1 + mat.Shimmer*n
			if shimmer < 0 {
				shimmer = 0
			}
		}

		n := len(ln.Points)
		arcDen := float32(1)
		if n > 1 {
			arcDen = 1 / float32(n-1)
		}
		for i, p := range ln.Points {
			sx, sy, d, vis := geom.Project(mvp, p, f.W, f.H)
			if !vis {
				continue
			}
			// Brightest at the arc apex, dimming towards both ends.
			arc := math32.Sin(math32.Pi * float32(i) * arcDen)
			if n == 1 {
				arc = 1
			}

			scale := ref / d
			radius := mat.PointSize * scale
			if radius < 0.6 {
				radius = 0.6
			}
			if radius > 24 {
				radius = 24
			}
			gain := mat.Glow * shimmer * (0.25 + 0.75*arc) * depthFade(d, ref)
			f.Splat(sx, sy, radius, cr*255, cg*255, cb*255, gain*0.55)
		}
	}
}

// depthFade dims geometry with distance relative to the orbit center.
func depthFade(d, ref float32) float32 {
	k := ref / d
	k *= k
	if k < 0.15 {
		k = 0.15
	}
	if k > 1.6 {
		k = 1.6
	}
	return k
}
