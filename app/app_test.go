package app

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"corona/field"
	"corona/host"
	"corona/render"
)

func testConfig() Config {
	p := field.Defaults()
	p.Lines = 12
	p.PointsPerLine = 16
	p.RotateSpeed = 2
	return Config{
		Width:  96,
		Height: 64,
		Params: p,
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func key(a *App, c host.KeyCode, press bool) {
	a.HandleKey(host.KeyEvent{Code: c, Press: press})
}

func tap(a *App, c host.KeyCode) {
	key(a, c, true)
	key(a, c, false)
}

func snap(f *render.Frame) []byte {
	out := make([]byte, len(f.Pix))
	copy(out, f.Pix)
	return out
}

func TestNewDefaults(t *testing.T) {
	a := New(Config{})
	f := a.Frame()
	if f.W != 640 || f.H != 400 {
		t.Fatalf("frame = %dx%d, want 640x400", f.W, f.H)
	}
	if a.Done() {
		t.Fatal("fresh app reports done")
	}
}

func TestTickRendersScene(t *testing.T) {
	a := New(testConfig())
	a.Tick(1.0 / 60)

	f := a.Frame()
	lit := 0
	for i := 0; i < len(f.Pix); i += 4 {
		if f.Pix[i] > 40 || f.Pix[i+1] > 40 || f.Pix[i+2] > 40 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("expected glow pixels after a tick")
	}
}

func TestPauseFreezesFrame(t *testing.T) {
	a := New(testConfig())
	a.Tick(1.0 / 60)

	before := snap(a.Frame())
	for i := 0; i < 5; i++ {
		a.Tick(1.0 / 60)
	}
	if bytes.Equal(before, snap(a.Frame())) {
		t.Fatal("unpaused frames should change")
	}

	tap(a, host.KeySpace)
	a.Tick(1.0 / 60)
	frozen := snap(a.Frame())
	for i := 0; i < 5; i++ {
		a.Tick(1.0 / 60)
	}
	if !bytes.Equal(frozen, snap(a.Frame())) {
		t.Fatal("paused frames should be identical")
	}
}

func TestArrowsSteerOrbitWhenPanelHidden(t *testing.T) {
	a := New(testConfig())
	tap(a, host.KeySpace) // freeze the scene so only the camera moves
	tap(a, host.KeyTab)   // hide the panel so arrows reach the orbit
	a.Tick(1.0 / 60)

	still := snap(a.Frame())
	for i := 0; i < 30; i++ {
		a.Tick(1.0 / 60)
	}
	if !bytes.Equal(still, snap(a.Frame())) {
		t.Fatal("camera should be at rest before input")
	}

	tap(a, host.KeyRight)
	for i := 0; i < 30; i++ {
		a.Tick(1.0 / 60)
	}
	if bytes.Equal(still, snap(a.Frame())) {
		t.Fatal("orbit input should move the camera")
	}
}

func TestStructuralEditCommitsOnRelease(t *testing.T) {
	a := New(testConfig())

	key(a, host.KeyLeft, true)
	if got := a.Params().Lines; got != 12 {
		t.Fatalf("Lines = %d before release, want 12", got)
	}
	key(a, host.KeyLeft, false)
	if got := a.Params().Lines; got != 4 {
		t.Fatalf("Lines = %d after release, want 4", got)
	}
}

func TestCosmeticEditAppliesOnPress(t *testing.T) {
	a := New(testConfig())
	for i := 0; i < 4; i++ {
		tap(a, host.KeyDown) // move the cursor to the glow row
	}

	want := field.Defaults().Glow + 0.1
	key(a, host.KeyRight, true)
	if got := a.Params().Glow; got != want {
		t.Fatalf("Glow = %g on press, want %g", got, want)
	}
}

func TestTabTogglesPanel(t *testing.T) {
	cfg := testConfig()
	cfg.Params.Glow = 0
	cfg.Params.SphereGlow = 0
	cfg.Params.BloomStrength = 0
	a := New(cfg)

	a.Tick(1.0 / 60)
	if !brightIn(a.Frame(), 0, 0, 190, 30) {
		t.Fatal("expected panel text in the top-left corner")
	}

	tap(a, host.KeyTab)
	a.Tick(1.0 / 60)
	if brightIn(a.Frame(), 0, 0, 190, 30) {
		t.Fatal("expected no panel after hiding it")
	}
}

func brightIn(f *render.Frame, x0, y0, w, h int) bool {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r, g, b := f.At(x, y)
			if r > 100 || g > 100 || b > 100 {
				return true
			}
		}
	}
	return false
}

func TestEscapeQuits(t *testing.T) {
	a := New(testConfig())
	key(a, host.KeyEscape, true)
	if !a.Done() {
		t.Fatal("escape should quit")
	}

	b := New(testConfig())
	b.HandleKey(host.KeyEvent{Rune: 'q', Press: true})
	if !b.Done() {
		t.Fatal("q should quit")
	}
}

func TestReloadChannelApplies(t *testing.T) {
	ch := make(chan field.Params, 1)
	cfg := testConfig()
	cfg.Reload = ch
	a := New(cfg)

	p := field.Defaults()
	p.Lines = 20
	p.Glow = 2
	ch <- p
	a.Tick(1.0 / 60)

	got := a.Params()
	if got.Lines != 20 || got.Glow != 2 {
		t.Fatalf("params = %d lines glow %g, want 20 lines glow 2", got.Lines, got.Glow)
	}
}

func TestResize(t *testing.T) {
	a := New(testConfig())
	a.Resize(120, 80)
	if f := a.Frame(); f.W != 120 || f.H != 80 {
		t.Fatalf("frame = %dx%d, want 120x80", f.W, f.H)
	}
}

func TestScreenshotWritesFile(t *testing.T) {
	cfg := testConfig()
	cfg.ShotDir = t.TempDir()
	a := New(cfg)
	a.Tick(1.0 / 60)

	key(a, host.KeyF2, true)

	ents, err := os.ReadDir(cfg.ShotDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(ents) != 1 || !strings.HasSuffix(ents[0].Name(), ".png") {
		t.Fatalf("dir = %v, want one png", ents)
	}
}
