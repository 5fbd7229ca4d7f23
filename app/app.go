// Package app assembles the visualizer: scene, renderer, camera and
// panel behind the host.App contract. Hosts own the clock and display;
// everything here runs on whichever goroutine calls Tick.
package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"corona/field"
	"corona/geom"
	"corona/host"
	"corona/panel"
	"corona/render"
	"corona/scene"
)

// Config carries the startup state for New.
type Config struct {
	Width  int
	Height int
	FPS    int
	Params field.Params

	// Reload delivers preset parameters while running. Optional.
	Reload <-chan field.Params
	// ShotDir is where screenshots land. Empty means current dir.
	ShotDir string

	Log *slog.Logger
}

// App is the whole application behind a host.
type App struct {
	log     *slog.Logger
	frame   *render.Frame
	rend    *render.Renderer
	set     *scene.LineSet
	sphere  scene.Sphere
	cam     geom.Camera
	orbit   *geom.SmoothOrbit
	panel   *panel.Panel
	reload  <-chan field.Params
	shotDir string

	paused bool
	done   bool

	fps    float32
	fpsN   int
	fpsAcc float32
}

const (
	orbitStep = 0.12
	zoomStep  = 1.5
)

func New(cfg Config) *App {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 400
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}

	p := cfg.Params.Clamp()
	gen := field.NewGenerator()

	a := &App{
		log:     cfg.Log,
		frame:   render.NewFrame(cfg.Width, cfg.Height),
		rend:    render.NewRenderer(),
		set:     scene.NewLineSet(gen, p),
		sphere:  scene.NewSphere(gen.SphereRadius, 5, 8, 48),
		reload:  cfg.Reload,
		shotDir: cfg.ShotDir,
	}
	a.set.Tilt = 0.18

	a.cam = geom.Camera{FOVYRad: 0.95, Near: 0.1, Far: 200}
	a.orbit = geom.NewSmoothOrbit(cfg.FPS, geom.Orbit{
		Yaw:       0.6,
		Pitch:     0.35,
		Radius:    26,
		MinPitch:  -1.45,
		MaxPitch:  1.45,
		MinRadius: 7,
		MaxRadius: 70,
	})
	a.panel = panel.New(p, func(np field.Params) { a.set.Apply(np) })
	return a
}

// Tick advances one frame: drain pending preset reloads, step the scene
// and camera, render, then draw the panel layer on top.
func (a *App) Tick(dt float32) {
	a.drainReload()

	if !a.paused {
		a.set.Tick(dt)
	}
	a.orbit.Step(&a.cam)
	a.rend.Draw(a.frame, a.set, a.sphere, a.cam)
	a.panel.Draw(a.frame, a.hud())

	a.fpsN++
	a.fpsAcc += dt
	if a.fpsAcc >= 1 {
		a.fps = float32(a.fpsN) / a.fpsAcc
		a.fpsN = 0
		a.fpsAcc = 0
	}
}

func (a *App) drainReload() {
	if a.reload == nil {
		return
	}
	for {
		select {
		case p, ok := <-a.reload:
			if !ok {
				a.reload = nil
				return
			}
			p = p.Clamp()
			a.panel.Sync(p)
			a.set.Apply(p)
			a.log.Info("preset applied", "lines", p.Lines, "points", p.PointsPerLine)
		default:
			return
		}
	}
}

// HandleKey routes input: app-level keys first, then the panel, and
// whatever the panel declines steers the camera.
func (a *App) HandleKey(ev host.KeyEvent) {
	if ev.Press {
		switch {
		case ev.Code == host.KeyEscape || ev.Rune == 'q':
			a.done = true
			return
		case ev.Code == host.KeyTab:
			a.panel.Visible = !a.panel.Visible
			return
		case ev.Code == host.KeySpace:
			a.paused = !a.paused
			return
		case ev.Code == host.KeyF2:
			a.screenshot()
			return
		}
	}

	if a.panel.HandleKey(ev) {
		return
	}
	if !ev.Press {
		return
	}

	switch ev.Code {
	case host.KeyLeft:
		a.orbit.Orbit.Rotate(-orbitStep, 0)
	case host.KeyRight:
		a.orbit.Orbit.Rotate(orbitStep, 0)
	case host.KeyUp:
		a.orbit.Orbit.Rotate(0, orbitStep)
	case host.KeyDown:
		a.orbit.Orbit.Rotate(0, -orbitStep)
	case host.KeyPageUp:
		a.orbit.Orbit.Zoom(-zoomStep)
	case host.KeyPageDown:
		a.orbit.Orbit.Zoom(zoomStep)
	}
	switch ev.Rune {
	case '[':
		a.orbit.Orbit.Zoom(zoomStep)
	case ']':
		a.orbit.Orbit.Zoom(-zoomStep)
	}
}

func (a *App) Frame() *render.Frame { return a.frame }
func (a *App) Done() bool           { return a.done }

func (a *App) Resize(w, h int) { a.frame.Resize(w, h) }

// Params returns the parameters of the geometry on screen.
func (a *App) Params() field.Params { return a.set.Params() }

func (a *App) hud() string {
	p := a.set.Params()
	state := ""
	if a.paused {
		state = "  paused"
	}
	return fmt.Sprintf("%.0f fps  %d lines x %d pts%s", a.fps, p.Lines, p.PointsPerLine, state)
}

func (a *App) screenshot() {
	name := fmt.Sprintf("corona_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(a.shotDir, name)
	if err := host.WritePNG(path, a.frame); err != nil {
		a.log.Error("screenshot failed", "path", path, "err", err)
		return
	}
	a.log.Info("screenshot saved", "path", path)
}
