package render

// Bloom spreads the bright parts of a frame so glowing streaks halo over
// their surroundings. Bright pixels are extracted at half resolution,
// box-blurred, and composited back additively with bilinear upsampling.
// The working buffers persist between frames.
type Bloom struct {
	hw, hh int
	r      []byte
	g      []byte
	b      []byte
	tmp    []byte
}

// Apply runs the bloom pass in place. strength scales the composite,
// radius is the blur radius in full-resolution pixels, threshold (0..1)
// sets the extraction knee. Zero strength or radius disables the pass.
func (bl *Bloom) Apply(f *Frame, strength, radius, threshold float32) {
	if strength <= 0 || radius < 1 {
		return
	}
	hw, hh := f.W/2, f.H/2
	if hw < 2 || hh < 2 {
		return
	}
	bl.ensure(hw, hh)
	bl.extract(f, threshold)

	rr := int(radius/2 + 0.5)
	if rr < 1 {
		rr = 1
	}
	for i := 0; i < 2; i++ {
		boxBlurH(bl.r, bl.tmp, hw, hh, rr)
		boxBlurV(bl.tmp, bl.r, hw, hh, rr)
		boxBlurH(bl.g, bl.tmp, hw, hh, rr)
		boxBlurV(bl.tmp, bl.g, hw, hh, rr)
		boxBlurH(bl.b, bl.tmp, hw, hh, rr)
		boxBlurV(bl.tmp, bl.b, hw, hh, rr)
	}

	bl.composite(f, strength)
}

func (bl *Bloom) ensure(hw, hh int) {
	n := hw * hh
	if cap(bl.r) < n {
		bl.r = make([]byte, n)
		bl.g = make([]byte, n)
		bl.b = make([]byte, n)
		bl.tmp = make([]byte, n)
	}
	bl.r = bl.r[:n]
	bl.g = bl.g[:n]
	bl.b = bl.b[:n]
	bl.tmp = bl.tmp[:n]
	bl.hw, bl.hh = hw, hh
}

// extract averages 2x2 blocks and applies a soft threshold: channels
// below the knee drop to zero, the rest rescale to keep full range.
func (bl *Bloom) extract(f *Frame, threshold float32) {
	t := uint32(clamp01(threshold) * 255)
	scale := uint32(255)
	if t < 255 {
		scale = 255 * 255 / (255 - t)
	}
	for j := 0; j < bl.hh; j++ {
		row0 := (2 * j) * f.W * 4
		row1 := row0 + f.W*4
		for i := 0; i < bl.hw; i++ {
			p0 := row0 + 8*i
			p1 := row1 + 8*i
			r := (uint32(f.Pix[p0]) + uint32(f.Pix[p0+4]) + uint32(f.Pix[p1]) + uint32(f.Pix[p1+4])) / 4
			g := (uint32(f.Pix[p0+1]) + uint32(f.Pix[p0+5]) + uint32(f.Pix[p1+1]) + uint32(f.Pix[p1+5])) / 4
			b := (uint32(f.Pix[p0+2]) + uint32(f.Pix[p0+6]) + uint32(f.Pix[p1+2]) + uint32(f.Pix[p1+6])) / 4
			o := j*bl.hw + i
			bl.r[o] = knee(r, t, scale)
			bl.g[o] = knee(g, t, scale)
			bl.b[o] = knee(b, t, scale)
		}
	}
}

func knee(v, t, scale uint32) byte {
	if v <= t {
		return 0
	}
	s := (v - t) * scale / 255
	if s > 255 {
		s = 255
	}
	return byte(s)
}

func (bl *Bloom) composite(f *Frame, strength float32) {
	sw := uint32(strength * 256)
	for y := 0; y < f.H; y++ {
		// Half-res sample coordinates with bilinear weights.
		v := (float32(y)+0.5)/2 - 0.5
		j0 := int(v)
		fy := v - float32(j0)
		if v < 0 {
			j0, fy = 0, 0
		}
		j1 := j0 + 1
		if j1 >= bl.hh {
			j1 = bl.hh - 1
		}
		wy1 := uint32(fy * 256)
		wy0 := 256 - wy1

		for x := 0; x < f.W; x++ {
			u := (float32(x)+0.5)/2 - 0.5
			i0 := int(u)
			fx := u - float32(i0)
			if u < 0 {
				i0, fx = 0, 0
			}
			i1 := i0 + 1
			if i1 >= bl.hw {
				i1 = bl.hw - 1
			}
			wx1 := uint32(fx * 256)
			wx0 := 256 - wx1

			a := j0*bl.hw + i0
			b := j0*bl.hw + i1
			c := j1*bl.hw + i0
			d := j1*bl.hw + i1

			w00 := wy0 * wx0
			w01 := wy0 * wx1
			w10 := wy1 * wx0
			w11 := wy1 * wx1

			rs := (uint32(bl.r[a])*w00 + uint32(bl.r[b])*w01 + uint32(bl.r[c])*w10 + uint32(bl.r[d])*w11) >> 16
			gs := (uint32(bl.g[a])*w00 + uint32(bl.g[b])*w01 + uint32(bl.g[c])*w10 + uint32(bl.g[d])*w11) >> 16
			bs := (uint32(bl.b[a])*w00 + uint32(bl.b[b])*w01 + uint32(bl.b[c])*w10 + uint32(bl.b[d])*w11) >> 16

			f.Add(x, y, clampByte(rs*sw>>8), clampByte(gs*sw>>8), clampByte(bs*sw>>8))
		}
	}
}

func clampByte(v uint32) byte {
	if v > 255 {
		return 255
	}
	return byte(v)
}

func boxBlurH(src, dst []byte, w, h, r int) {
	div := uint32(2*r + 1)
	for y := 0; y < h; y++ {
		row := y * w
		sum := uint32(src[row]) * uint32(r+1)
		for x := 1; x <= r; x++ {
			sum += uint32(src[row+clampIdx(x, w)])
		}
		for x := 0; x < w; x++ {
			dst[row+x] = byte(sum / div)
			sum += uint32(src[row+clampIdx(x+r+1, w)])
			sum -= uint32(src[row+clampIdx(x-r, w)])
		}
	}
}

func boxBlurV(src, dst []byte, w, h, r int) {
	div := uint32(2*r + 1)
	for x := 0; x < w; x++ {
		sum := uint32(src[x]) * uint32(r+1)
		for y := 1; y <= r; y++ {
			sum += uint32(src[clampIdx(y, h)*w+x])
		}
		for y := 0; y < h; y++ {
			dst[y*w+x] = byte(sum / div)
			sum += uint32(src[clampIdx(y+r+1, h)*w+x])
			sum -= uint32(src[clampIdx(y-r, h)*w+x])
		}
	}
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
