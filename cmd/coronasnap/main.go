// coronasnap renders stills offline: one frame, or a numbered turntable
// sequence that orbits the camera a full turn around the sphere.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"

	"corona/config"
	"corona/field"
	"corona/geom"
	"corona/host"
	"corona/render"
	"corona/scene"
)

func main() {
	var (
		outPath = flag.String("out", "corona.png", "Output PNG, or output directory when -frames > 1.")
		preset  = flag.String("preset", "", "Preset TOML file.")
		width   = flag.Int("width", 1280, "Image width in pixels.")
		height  = flag.Int("height", 800, "Image height in pixels.")
		frames  = flag.Int("frames", 1, "Frame count; above 1 renders a full orbit.")
		yaw     = flag.Float64("yaw", 0.6, "Camera yaw in radians.")
		pitch   = flag.Float64("pitch", 0.35, "Camera pitch in radians.")
		radius  = flag.Float64("radius", 26, "Camera distance.")
	)
	flag.Parse()

	params := field.Defaults()
	if *preset != "" {
		p, err := config.Load(*preset)
		if err != nil {
			fatalf("preset: %v", err)
		}
		params = p
	}
	if *frames > 1 {
		// The turntable moves the camera; keep the model still.
		params.RotateSpeed = 0
	}

	gen := field.NewGenerator()
	set := scene.NewLineSet(gen, params)
	set.Tilt = 0.18
	sphere := scene.NewSphere(gen.SphereRadius, 5, 8, 48)
	rend := render.NewRenderer()
	f := render.NewFrame(*width, *height)

	cam := geom.Camera{FOVYRad: 0.95, Near: 0.1, Far: 200}
	orbit := geom.Orbit{Yaw: float32(*yaw), Pitch: float32(*pitch), Radius: float32(*radius)}

	if *frames <= 1 {
		orbit.Apply(&cam)
		rend.Draw(f, set, sphere, cam)
		if err := host.WritePNG(*outPath, f); err != nil {
			fatalf("%v", err)
		}
		return
	}

	if err := os.MkdirAll(*outPath, 0o755); err != nil {
		fatalf("out dir: %v", err)
	}
	step := 2 * math32.Pi / float32(*frames)
	for i := 0; i < *frames; i++ {
		orbit.Yaw = float32(*yaw) + float32(i)*step
		orbit.Apply(&cam)
		set.Tick(1.0 / 30)
		rend.Draw(f, set, sphere, cam)
		name := filepath.Join(*outPath, fmt.Sprintf("frame_%04d.png", i))
		if err := host.WritePNG(name, f); err != nil {
			fatalf("%v", err)
		}
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
