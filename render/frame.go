// Package render is the software rasterizer: field lines become additive
// glow splats, the sphere becomes depth-faded wireframe segments, and a
// bloom pass spreads the bright parts. Everything draws into a plain RGBA
// byte buffer that hosts present however they like.
package render

import "image"

// Frame is an RGBA pixel buffer, 4 bytes per pixel, row-major.
type Frame struct {
	W, H int
	Pix  []byte
}

func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Resize adjusts the buffer to w*h pixels, reallocating only on growth.
func (f *Frame) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	n := w * h * 4
	if cap(f.Pix) < n {
		f.Pix = make([]byte, n)
	}
	f.Pix = f.Pix[:n]
	f.W, f.H = w, h
}

// Clear fills the frame with an opaque color.
func (f *Frame) Clear(r, g, b byte) {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i+0] = r
		f.Pix[i+1] = g
		f.Pix[i+2] = b
		f.Pix[i+3] = 0xFF
	}
}

// Add accumulates color into one pixel, saturating at white. Out-of-range
// coordinates are ignored.
func (f *Frame) Add(x, y int, r, g, b byte) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := (y*f.W + x) * 4
	f.Pix[i+0] = satAdd(f.Pix[i+0], r)
	f.Pix[i+1] = satAdd(f.Pix[i+1], g)
	f.Pix[i+2] = satAdd(f.Pix[i+2], b)
}

// Set overwrites one pixel with an opaque color. Text and other UI layers
// use this so they stay crisp over the glow.
func (f *Frame) Set(x, y int, r, g, b byte) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := (y*f.W + x) * 4
	f.Pix[i+0] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
	f.Pix[i+3] = 0xFF
}

// At returns the pixel at x,y. Out-of-range reads return black.
func (f *Frame) At(x, y int) (r, g, b byte) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return 0, 0, 0
	}
	i := (y*f.W + x) * 4
	return f.Pix[i+0], f.Pix[i+1], f.Pix[i+2]
}

// DimRect darkens a rectangle in place, scaling each channel by factor
// (0..1). Used as the backdrop behind UI text.
func (f *Frame) DimRect(x0, y0, w, h int, factor float32) {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	k := uint32(factor * 256)
	x1 := x0 + w
	y1 := y0 + h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > f.W {
		x1 = f.W
	}
	if y1 > f.H {
		y1 = f.H
	}
	for y := y0; y < y1; y++ {
		i := (y*f.W + x0) * 4
		for x := x0; x < x1; x++ {
			f.Pix[i+0] = byte(uint32(f.Pix[i+0]) * k >> 8)
			f.Pix[i+1] = byte(uint32(f.Pix[i+1]) * k >> 8)
			f.Pix[i+2] = byte(uint32(f.Pix[i+2]) * k >> 8)
			i += 4
		}
	}
}

// Image wraps the buffer as an image.RGBA sharing the same pixels.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.W * 4,
		Rect:   image.Rect(0, 0, f.W, f.H),
	}
}

func satAdd(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 0xFF {
		return 0xFF
	}
	return byte(s)
}
