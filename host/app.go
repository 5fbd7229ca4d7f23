package host

import "corona/render"

// App is what a host drives. It knows nothing about windows, terminals
// or tickers; hosts own the clock and the display.
type App interface {
	// Tick advances the simulation by dt seconds and redraws the frame.
	Tick(dt float32)
	// HandleKey feeds one key transition to the app.
	HandleKey(ev KeyEvent)
	// Frame returns the framebuffer the last Tick drew into.
	Frame() *render.Frame
	// Resize retargets the framebuffer. Hosts call it when their
	// display surface changes.
	Resize(w, h int)
	// Done reports that the app wants to exit.
	Done() bool
}
