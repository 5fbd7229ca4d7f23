package render

import "github.com/chewxy/math32"

// LineAdd draws a line segment additively, interpolating brightness from
// i0 at one end to i1 at the other. Color channels are 0..255 scale.
func (f *Frame) LineAdd(x0, y0, x1, y1 int, r, g, b float32, i0, i1 float32) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := dx
	if -dy > steps {
		steps = -dy
	}
	inv := float32(0)
	if steps > 0 {
		inv = 1 / float32(steps)
	}

	err := dx + dy
	for n := 0; ; n++ {
		t := float32(n) * inv
		k := i0 + (i1-i0)*t
		if k > 0 {
			f.Add(x0, y0, channel(r*k), channel(g*k), channel(b*k))
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Splat stamps a soft glow disc at a subpixel center. The falloff is
// quadratic from full gain at the center to zero at radius. Color
// channels are 0..255 scale; gain scales the whole stamp.
func (f *Frame) Splat(cx, cy, radius float32, r, g, b float32, gain float32) {
	if gain <= 0 || radius <= 0 {
		return
	}
	minX := int(math32.Floor(cx - radius))
	maxX := int(math32.Ceil(cx + radius))
	minY := int(math32.Floor(cy - radius))
	maxY := int(math32.Ceil(cy + radius))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= f.W {
		maxX = f.W - 1
	}
	if maxY >= f.H {
		maxY = f.H - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	invR := 1 / radius
	for y := minY; y <= maxY; y++ {
		dy := (float32(y) + 0.5) - cy
		for x := minX; x <= maxX; x++ {
			dx := (float32(x) + 0.5) - cx
			d := math32.Sqrt(dx*dx+dy*dy) * invR
			if d >= 1 {
				continue
			}
			fall := 1 - d
			fall *= fall
			k := gain * fall
			f.Add(x, y, channel(r*k), channel(g*k), channel(b*k))
		}
	}
}

func channel(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
