package panel

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"corona/render"
)

var panelFont = &proggy.TinySZ8pt7b

var (
	colTitle  = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	colLabel  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
	colActive = color.RGBA{R: 0xFF, G: 0xF2, B: 0xC8, A: 0xFF}
	colPend   = color.RGBA{R: 0xFF, G: 0xB0, B: 0x50, A: 0xFF}
	colHUD    = color.RGBA{R: 0x78, G: 0x88, B: 0xA0, A: 0xFF}
)

// Draw renders the panel (when visible) and the HUD line onto the frame.
// It runs after bloom so the text stays crisp.
func (pl *Panel) Draw(f *render.Frame, hud string) {
	d := &frameDisplayer{f: f}
	lineH := int(panelFont.GetYAdvance())

	if pl.Visible {
		pad := 6
		width := 188
		height := (len(pl.rows)+4)*lineH + pad*2
		f.DimRect(4, 4, width, height, 0.35)

		x := int16(4 + pad)
		y := 4 + pad + lineH - 2
		tinyfont.WriteLine(d, panelFont, x, int16(y), "corona", colTitle)
		y += lineH + lineH/2

		for i := range pl.rows {
			r := &pl.rows[i]
			c := colLabel
			if i == pl.cursor {
				c = colActive
				tinyfont.WriteLine(d, panelFont, x, int16(y), ">", colActive)
			}
			tinyfont.WriteLine(d, panelFont, x+10, int16(y), r.name, c)

			val := formatValue(r, r.get(&pl.pending))
			vc := c
			if pl.editing && r.structural && r.get(&pl.pending) != r.get(&pl.committed) {
				val += " *"
				vc = colPend
			}
			tinyfont.WriteLine(d, panelFont, x+112, int16(y), val, vc)
			y += lineH
		}

		y += lineH / 2
		tinyfont.WriteLine(d, panelFont, x, int16(y), "arrows edit  enter apply  tab hide", colHUD)
	}

	if hud != "" {
		tinyfont.WriteLine(d, panelFont, 6, int16(f.H-5), hud, colHUD)
	}
}

func formatValue(r *row, v float32) string {
	if r.integer {
		return fmt.Sprintf("%d", roundInt(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// frameDisplayer lets tinyfont draw straight into the frame.
type frameDisplayer struct {
	f *render.Frame
}

func (d *frameDisplayer) Size() (int16, int16) {
	return int16(d.f.W), int16(d.f.H)
}

func (d *frameDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.f.Set(int(x), int(y), c.R, c.G, c.B)
}

func (d *frameDisplayer) Display() error { return nil }
