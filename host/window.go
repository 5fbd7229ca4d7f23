package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop runner.
type WindowConfig struct {
	Title string
	Scale int
	TPS   int
}

// RunWindow opens a desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes or the app
// reports done.
func RunWindow(app App, cfg WindowConfig) error {
	if cfg.Title == "" {
		cfg.Title = "corona"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	f := app.Frame()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(f.W*cfg.Scale, f.H*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	g := &windowGame{app: app, dt: 1 / float32(cfg.TPS)}
	return ebiten.RunGame(g)
}

type windowGame struct {
	app   App
	dt    float32
	fbImg *ebiten.Image
	runes []rune
}

var windowKeys = []struct {
	eb   ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
	{ebiten.KeyF2, KeyF2},
}

// Hold-to-repeat timing in ticks: half a second of delay, then ten
// repeats a second at 60 TPS.
const (
	repeatDelay    = 30
	repeatInterval = 6
)

func (g *windowGame) Update() error {
	g.pollKeys()
	g.app.Tick(g.dt)
	if g.app.Done() {
		return ebiten.Termination
	}
	return nil
}

// pollKeys turns Ebiten's key state into KeyEvents. A held key emits
// repeated presses but only the real release, so a long adjustment still
// ends in exactly one commit.
func (g *windowGame) pollKeys() {
	for _, k := range windowKeys {
		d := inpututil.KeyPressDuration(k.eb)
		if inpututil.IsKeyJustPressed(k.eb) ||
			(d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0) {
			g.app.HandleKey(KeyEvent{Code: k.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(k.eb) {
			g.app.HandleKey(KeyEvent{Code: k.code, Press: false})
		}
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		g.app.HandleKey(KeyEvent{Rune: r, Press: true})
		g.app.HandleKey(KeyEvent{Rune: r, Press: false})
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	f := g.app.Frame()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != f.W || g.fbImg.Bounds().Dy() != f.H {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(f.W, f.H)
	}
	g.fbImg.WritePixels(f.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.app.Frame()
	return f.W, f.H
}
