package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"corona/app"
	"corona/config"
	"corona/field"
	"corona/host"
	"corona/internal/buildinfo"
)

func main() {
	var (
		mode    = flag.String("mode", "window", "Display mode: window, term or headless.")
		width   = flag.Int("width", 640, "Framebuffer width in pixels.")
		height  = flag.Int("height", 400, "Framebuffer height in pixels.")
		scale   = flag.Int("scale", 2, "Window pixel scale.")
		fps     = flag.Int("fps", 60, "Tick rate.")
		preset  = flag.String("preset", "", "Preset TOML file to load.")
		watch   = flag.Bool("watch", false, "Reload the preset when the file changes.")
		ticks   = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		every   = flag.Uint64("capture-every", 0, "Write every Nth headless frame as a PNG (0 = none).")
		outDir  = flag.String("out", ".", "Directory for screenshots and captured frames.")
		verbose = flag.Bool("v", false, "Verbose logging.")
		version = flag.Bool("version", false, "Print version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println("corona", buildinfo.Short())
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	params := field.Defaults()
	if *preset != "" {
		p, err := config.Load(*preset)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		params = p
		log.Info("preset loaded", "path", *preset)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reload <-chan field.Params
	if *watch && *preset != "" {
		ch, err := config.Watch(ctx, *preset, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		reload = ch
	}

	a := app.New(app.Config{
		Width:   *width,
		Height:  *height,
		FPS:     *fps,
		Params:  params,
		Reload:  reload,
		ShotDir: *outDir,
		Log:     log,
	})

	var err error
	switch *mode {
	case "window":
		err = host.RunWindow(a, host.WindowConfig{
			Title: "corona (" + buildinfo.Short() + ")",
			Scale: *scale,
			TPS:   *fps,
		})
	case "term":
		err = host.RunTerminal(ctx, a, host.TerminalConfig{TPS: *fps})
	case "headless":
		cfg := host.HeadlessConfig{Hz: *fps, Ticks: *ticks, CaptureEvery: *every}
		if *every > 0 {
			cfg.Sink = host.PNGSink(*outDir)
		}
		err = host.RunHeadless(ctx, a, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
