// Package panel is the keyboard-driven parameter panel. Cosmetic values
// apply the moment they change; structural values accumulate while the
// adjust key is held and commit once on release or Enter, so dragging
// through intermediate values costs one rebuild instead of dozens.
package panel

import (
	"corona/field"
	"corona/host"
)

type row struct {
	name       string
	structural bool
	integer    bool
	step       float32
	get        func(*field.Params) float32
	set        func(*field.Params, float32)
}

func paramRows() []row {
	return []row{
		{name: "lines", structural: true, integer: true, step: 8,
			get: func(p *field.Params) float32 { return float32(p.Lines) },
			set: func(p *field.Params, v float32) { p.Lines = roundInt(v) }},
		{name: "points/line", structural: true, integer: true, step: 8,
			get: func(p *field.Params) float32 { return float32(p.PointsPerLine) },
			set: func(p *field.Params, v float32) { p.PointsPerLine = roundInt(v) }},
		{name: "strength", structural: true, step: 0.5,
			get: func(p *field.Params) float32 { return p.Strength },
			set: func(p *field.Params, v float32) { p.Strength = v }},
		{name: "point size", step: 0.25,
			get: func(p *field.Params) float32 { return p.PointSize },
			set: func(p *field.Params, v float32) { p.PointSize = v }},
		{name: "glow", step: 0.1,
			get: func(p *field.Params) float32 { return p.Glow },
			set: func(p *field.Params, v float32) { p.Glow = v }},
		{name: "hue shift", step: 10,
			get: func(p *field.Params) float32 { return p.HueShift },
			set: func(p *field.Params, v float32) { p.HueShift = v }},
		{name: "shimmer", step: 0.05,
			get: func(p *field.Params) float32 { return p.Shimmer },
			set: func(p *field.Params, v float32) { p.Shimmer = v }},
		{name: "rotate speed", step: 0.05,
			get: func(p *field.Params) float32 { return p.RotateSpeed },
			set: func(p *field.Params, v float32) { p.RotateSpeed = v }},
		{name: "sphere glow", step: 0.1,
			get: func(p *field.Params) float32 { return p.SphereGlow },
			set: func(p *field.Params, v float32) { p.SphereGlow = v }},
		{name: "bloom strength", step: 0.1,
			get: func(p *field.Params) float32 { return p.BloomStrength },
			set: func(p *field.Params, v float32) { p.BloomStrength = v }},
		{name: "bloom radius", step: 1,
			get: func(p *field.Params) float32 { return p.BloomRadius },
			set: func(p *field.Params, v float32) { p.BloomRadius = v }},
		{name: "bloom threshold", step: 0.05,
			get: func(p *field.Params) float32 { return p.BloomThreshold },
			set: func(p *field.Params, v float32) { p.BloomThreshold = v }},
	}
}

// Panel edits a parameter set and forwards results through apply. The
// apply callback receives complete, clamped parameter records; routing
// them to a rebuild or a material update is the receiver's business.
type Panel struct {
	Visible bool

	rows   []row
	cursor int

	committed field.Params
	pending   field.Params
	editing   bool

	apply func(field.Params)
}

// New creates a panel over the given starting parameters. p must already
// be clamped; apply must not be nil.
func New(p field.Params, apply func(field.Params)) *Panel {
	return &Panel{
		Visible:   true,
		rows:      paramRows(),
		committed: p,
		pending:   p,
		apply:     apply,
	}
}

// Params returns the values the panel currently displays, including
// structural edits that have not been committed yet.
func (pl *Panel) Params() field.Params { return pl.pending }

// Editing reports whether a structural edit is waiting for commit.
func (pl *Panel) Editing() bool { return pl.editing }

// Sync adopts externally applied parameters (preset reloads), dropping
// any in-flight edit.
func (pl *Panel) Sync(p field.Params) {
	pl.committed = p
	pl.pending = p
	pl.editing = false
}

// HandleKey consumes panel navigation and editing keys. It returns false
// for keys the panel does not use, or when it is hidden.
func (pl *Panel) HandleKey(ev host.KeyEvent) bool {
	if !pl.Visible {
		return false
	}
	switch ev.Code {
	case host.KeyUp:
		if ev.Press && pl.cursor > 0 {
			pl.cursor--
		}
	case host.KeyDown:
		if ev.Press && pl.cursor < len(pl.rows)-1 {
			pl.cursor++
		}
	case host.KeyLeft:
		if ev.Press {
			pl.adjust(-1)
		} else {
			pl.commit()
		}
	case host.KeyRight:
		if ev.Press {
			pl.adjust(1)
		} else {
			pl.commit()
		}
	case host.KeyEnter:
		if ev.Press {
			pl.commit()
		}
	default:
		return false
	}
	return true
}

func (pl *Panel) adjust(dir float32) {
	r := &pl.rows[pl.cursor]
	r.set(&pl.pending, r.get(&pl.pending)+dir*r.step)
	pl.pending = pl.pending.Clamp()

	if r.structural {
		pl.editing = true
		return
	}
	// Cosmetic edits go out immediately, but never smuggle uncommitted
	// structural values along.
	send := pl.pending
	send.Lines = pl.committed.Lines
	send.PointsPerLine = pl.committed.PointsPerLine
	send.Strength = pl.committed.Strength
	pl.committed = send
	pl.apply(send)
}

func (pl *Panel) commit() {
	if !pl.editing {
		return
	}
	pl.editing = false
	pl.committed = pl.pending
	pl.apply(pl.pending)
}

func roundInt(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
