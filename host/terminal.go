package host

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"corona/render"
)

// TerminalConfig controls the tcell runner.
type TerminalConfig struct {
	TPS int
}

// RunTerminal renders the framebuffer into the terminal, two pixel rows
// per text row. It blocks until ctx is cancelled, the app reports done,
// or the user quits with Ctrl-C.
func RunTerminal(ctx context.Context, app App, cfg TerminalConfig) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 30
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	w, h := screen.Size()
	app.Resize(w, 2*h)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	dt := 1 / float32(cfg.TPS)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				ke, ok := translateKey(tev)
				if !ok {
					continue
				}
				// Terminals report presses only, so every keystroke
				// becomes a complete press/release pair.
				ke.Press = true
				app.HandleKey(ke)
				ke.Press = false
				app.HandleKey(ke)
			case *tcell.EventResize:
				tw, th := tev.Size()
				app.Resize(tw, 2*th)
				screen.Sync()
			}
			if app.Done() {
				return nil
			}

		case <-ticker.C:
			app.Tick(dt)
			if app.Done() {
				return nil
			}
			blit(screen, app.Frame())
		}
	}
}

// translateKey maps a tcell key event onto the host key model. The
// second result is false for keys the app has no use for.
func translateKey(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Code: KeyEscape}, true
	case tcell.KeyTab:
		return KeyEvent{Code: KeyTab}, true
	case tcell.KeyPgUp:
		return KeyEvent{Code: KeyPageUp}, true
	case tcell.KeyPgDn:
		return KeyEvent{Code: KeyPageDown}, true
	case tcell.KeyF2:
		return KeyEvent{Code: KeyF2}, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return KeyEvent{Code: KeySpace}, true
		}
		return KeyEvent{Rune: ev.Rune()}, true
	}
	return KeyEvent{}, false
}

// blit draws two framebuffer rows per terminal row using the upper half
// block: foreground carries the even row, background the odd one.
func blit(screen tcell.Screen, f *render.Frame) {
	w, h := screen.Size()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			tr, tg, tb := f.At(cx, 2*cy)
			br, bg, bb := f.At(cx, 2*cy+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	screen.Show()
}
