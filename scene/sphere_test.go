package scene

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSphereRings(t *testing.T) {
	s := NewSphere(4, 5, 8, 48)
	if len(s.Rings) != 5+8 {
		t.Fatalf("rings=%d", len(s.Rings))
	}
	for i, ring := range s.Rings {
		if len(ring) != 49 {
			t.Fatalf("ring %d has %d points", i, len(ring))
		}
		if ring[0] != ring[len(ring)-1] {
			t.Fatalf("ring %d not closed: %v vs %v", i, ring[0], ring[len(ring)-1])
		}
		for k, p := range ring {
			if math32.Abs(p.Len()-4) > 1e-3 {
				t.Fatalf("ring %d point %d radius %v", i, k, p.Len())
			}
		}
	}
}

func TestSphereLatitudesLevel(t *testing.T) {
	s := NewSphere(4, 3, 0, 24)
	for i, ring := range s.Rings {
		y := ring[0].Y
		for k, p := range ring {
			if math32.Abs(p.Y-y) > 1e-4 {
				t.Fatalf("ring %d point %d y=%v want %v", i, k, p.Y, y)
			}
		}
	}
}
