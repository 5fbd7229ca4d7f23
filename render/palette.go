package render

import "github.com/lucasb-eyer/go-colorful"

// Palette maps a line's shade (0..1) to a color by blending two anchors
// in HCL space, where interpolation stays perceptually even. HueShift
// rotates both anchors around the hue circle.
type Palette struct {
	lo, hi colorful.Color
}

// NewPalette returns the default cyan-to-violet ramp.
func NewPalette() Palette {
	lo, _ := colorful.Hex("#46d8ff")
	hi, _ := colorful.Hex("#a04cff")
	return Palette{lo: lo, hi: hi}
}

// At returns the color for shade with hueShift degrees of rotation.
// Channels are 0..1.
func (p Palette) At(shade, hueShift float32) (r, g, b float32) {
	lo := p.lo
	hi := p.hi
	if hueShift != 0 {
		lo = rotateHue(lo, float64(hueShift))
		hi = rotateHue(hi, float64(hueShift))
	}
	c := lo.BlendHcl(hi, float64(clamp01(shade))).Clamped()
	return float32(c.R), float32(c.G), float32(c.B)
}

func rotateHue(c colorful.Color, deg float64) colorful.Color {
	h, cc, l := c.Hcl()
	return colorful.Hcl(h+deg, cc, l).Clamped()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
