// Package host runs the tick loop and presents frames. Three hosts share
// one contract: poll input into KeyEvents, call the app's Tick at a fixed
// rate, and show the app's framebuffer. The window host is an Ebiten
// game, the terminal host draws half-block cells through tcell, and the
// headless host just ticks with an optional frame sink.
package host

// KeyCode identifies a non-printing key.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeySpace
	KeyPageUp
	KeyPageDown
	KeyF2
)

// KeyEvent is one key transition. Printable input arrives as Rune with
// Code == KeyNone. Hosts that cannot observe key releases (the terminal)
// emit a synthetic release right after each press, so a single keystroke
// is always a complete press/release pair.
type KeyEvent struct {
	Code  KeyCode
	Rune  rune
	Press bool
}
