package field

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestClampTable(t *testing.T) {
	cases := []struct {
		name string
		in   Params
		chk  func(Params) bool
	}{
		{"lines low", Params{Lines: 0}, func(p Params) bool { return p.Lines == MinLines }},
		{"lines high", Params{Lines: 100000}, func(p Params) bool { return p.Lines == MaxLines }},
		{"points low", Params{PointsPerLine: -3}, func(p Params) bool { return p.PointsPerLine == MinPointsPerLine }},
		{"points high", Params{PointsPerLine: 4096}, func(p Params) bool { return p.PointsPerLine == MaxPointsPerLine }},
		{"strength low", Params{Strength: 0}, func(p Params) bool { return p.Strength == MinStrength }},
		{"strength high", Params{Strength: 1e6}, func(p Params) bool { return p.Strength == MaxStrength }},
		{"strength nan", Params{Strength: math32.NaN()}, func(p Params) bool { return p.Strength == MinStrength }},
		{"hue wraps", Params{HueShift: 400}, func(p Params) bool { return p.HueShift == 40 }},
		{"hue negative", Params{HueShift: -30}, func(p Params) bool { return p.HueShift == 330 }},
		{"threshold high", Params{BloomThreshold: 9}, func(p Params) bool { return p.BloomThreshold == 1 }},
	}
	for _, c := range cases {
		if got := c.in.Clamp(); !c.chk(got) {
			t.Fatalf("%s: %+v", c.name, got)
		}
	}
}

func TestDefaultsAreInRange(t *testing.T) {
	d := Defaults()
	if d.Clamp() != d {
		t.Fatalf("defaults out of range: %+v vs %+v", d, d.Clamp())
	}
}

func TestStructuralEq(t *testing.T) {
	a := Defaults()
	b := a
	b.Glow = 3
	b.HueShift = 180
	if !a.StructuralEq(b) {
		t.Fatalf("cosmetic change flagged as structural")
	}
	b.Lines = 64
	if a.StructuralEq(b) {
		t.Fatalf("line count change not flagged")
	}
	c := a
	c.Strength = 11
	if a.StructuralEq(c) {
		t.Fatalf("strength change not flagged")
	}
}
