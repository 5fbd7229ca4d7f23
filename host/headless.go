package host

import (
	"context"
	"fmt"
	"time"

	"corona/render"
)

// FrameSink receives finished frames from the headless runner.
type FrameSink func(tick uint64, f *render.Frame) error

// HeadlessConfig controls the no-display runner.
type HeadlessConfig struct {
	Hz           int
	Ticks        uint64
	CaptureEvery uint64
	Sink         FrameSink
}

// RunHeadless drives the app without any display. It stops after
// cfg.Ticks ticks when nonzero, when the app reports done, or when ctx
// is cancelled.
func RunHeadless(ctx context.Context, app App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("headless: invalid rate %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	dt := 1 / float32(cfg.Hz)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			app.Tick(dt)
			tick++
			if cfg.Sink != nil && cfg.CaptureEvery > 0 && tick%cfg.CaptureEvery == 0 {
				if err := cfg.Sink(tick, app.Frame()); err != nil {
					return fmt.Errorf("headless: sink: %w", err)
				}
			}
			if app.Done() {
				return nil
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
