// Package config loads parameter presets from TOML files and can watch
// them for live edits. A preset only needs the keys it wants to change;
// everything else keeps its default. All values are clamped on the way
// in, so a hand-edited file can never wedge the visualizer.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"corona/field"
)

// Preset mirrors field.Params with optional fields.
type Preset struct {
	Lines          *int     `toml:"lines"`
	PointsPerLine  *int     `toml:"points_per_line"`
	Strength       *float32 `toml:"strength"`
	PointSize      *float32 `toml:"point_size"`
	Glow           *float32 `toml:"glow"`
	HueShift       *float32 `toml:"hue_shift"`
	Shimmer        *float32 `toml:"shimmer"`
	RotateSpeed    *float32 `toml:"rotate_speed"`
	SphereGlow     *float32 `toml:"sphere_glow"`
	BloomStrength  *float32 `toml:"bloom_strength"`
	BloomRadius    *float32 `toml:"bloom_radius"`
	BloomThreshold *float32 `toml:"bloom_threshold"`
}

// Load reads a preset file and returns the resulting clamped parameters,
// starting from the defaults.
func Load(path string) (field.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return field.Params{}, fmt.Errorf("read preset: %w", err)
	}
	var pr Preset
	if err := toml.Unmarshal(data, &pr); err != nil {
		return field.Params{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return pr.Apply(field.Defaults()), nil
}

// Apply overlays the preset's set fields onto base and clamps the result.
func (pr Preset) Apply(base field.Params) field.Params {
	if pr.Lines != nil {
		base.Lines = *pr.Lines
	}
	if pr.PointsPerLine != nil {
		base.PointsPerLine = *pr.PointsPerLine
	}
	if pr.Strength != nil {
		base.Strength = *pr.Strength
	}
	if pr.PointSize != nil {
		base.PointSize = *pr.PointSize
	}
	if pr.Glow != nil {
		base.Glow = *pr.Glow
	}
	if pr.HueShift != nil {
		base.HueShift = *pr.HueShift
	}
	if pr.Shimmer != nil {
		base.Shimmer = *pr.Shimmer
	}
	if pr.RotateSpeed != nil {
		base.RotateSpeed = *pr.RotateSpeed
	}
	if pr.SphereGlow != nil {
		base.SphereGlow = *pr.SphereGlow
	}
	if pr.BloomStrength != nil {
		base.BloomStrength = *pr.BloomStrength
	}
	if pr.BloomRadius != nil {
		base.BloomRadius = *pr.BloomRadius
	}
	if pr.BloomThreshold != nil {
		base.BloomThreshold = *pr.BloomThreshold
	}
	return base.Clamp()
}
