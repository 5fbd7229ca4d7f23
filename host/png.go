package host

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"corona/render"
)

// WritePNG encodes the frame as a PNG at path.
func WritePNG(path string, f *render.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	if err := png.Encode(out, f.Image()); err != nil {
		out.Close()
		return fmt.Errorf("png: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}

// PNGSink numbers captured frames into dir as frame_000001.png and up.
func PNGSink(dir string) FrameSink {
	return func(tick uint64, f *render.Frame) error {
		return WritePNG(filepath.Join(dir, fmt.Sprintf("frame_%06d.png", tick)), f)
	}
}
