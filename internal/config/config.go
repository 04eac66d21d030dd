// Package config handles drawshape configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/drawshape/internal/anim"
	"github.com/Faultbox/drawshape/pkg/formats"
	"github.com/Faultbox/drawshape/pkg/geometry"
	"github.com/Faultbox/drawshape/pkg/math"
)

// Config holds all settings.
type Config struct {
	Mesh      MeshConfig      `yaml:"mesh"`
	Display   DisplayConfig   `yaml:"display"`
	Animation AnimationConfig `yaml:"animation"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// MeshConfig holds tessellation settings.
type MeshConfig struct {
	ConeResolution    int `yaml:"cone_resolution"`
	RingSegments      int `yaml:"ring_segments"`
	TubeSegments      int `yaml:"tube_segments"`
	PrimitiveSegments int `yaml:"primitive_segments"`
}

// DisplayConfig describes the surface shapes are placed on.
type DisplayConfig struct {
	Width          int  `yaml:"width"`
	Height         int  `yaml:"height"`
	LegacyTriangle bool `yaml:"legacy_triangle"`
}

// AnimationConfig holds the spin settings.
type AnimationConfig struct {
	Period       time.Duration `yaml:"period"`
	AutoReverse  bool          `yaml:"auto_reverse"`
	Interpolator string        `yaml:"interpolator"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			ConeResolution:    geometry.DefaultConeResolution,
			RingSegments:      geometry.DefaultRingSegments,
			TubeSegments:      geometry.DefaultTubeSegments,
			PrimitiveSegments: geometry.DefaultPrimitiveSegments,
		},
		Display: DisplayConfig{
			Width:  300,
			Height: 300,
		},
		Animation: AnimationConfig{
			Period:       anim.DefaultDuration,
			AutoReverse:  true,
			Interpolator: anim.EaseBoth.String(),
		},
		Export: ExportConfig{
			Format: string(formats.FormatOBJ),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the generators cannot use.
func (c *Config) Validate() error {
	if c.Mesh.ConeResolution < 3 {
		return fmt.Errorf("mesh.cone_resolution must be at least 3, got %d", c.Mesh.ConeResolution)
	}
	if c.Mesh.RingSegments < 3 || c.Mesh.TubeSegments < 3 {
		return fmt.Errorf("mesh.ring_segments and mesh.tube_segments must be at least 3, got %d and %d",
			c.Mesh.RingSegments, c.Mesh.TubeSegments)
	}
	if c.Mesh.PrimitiveSegments < 3 {
		return fmt.Errorf("mesh.primitive_segments must be at least 3, got %d", c.Mesh.PrimitiveSegments)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Animation.Period <= 0 {
		return fmt.Errorf("animation.period must be positive, got %s", c.Animation.Period)
	}
	if _, err := anim.ParseInterpolator(c.Animation.Interpolator); err != nil {
		return fmt.Errorf("animation.interpolator: %w", err)
	}
	if _, err := formats.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	return nil
}

// GeometryOptions converts the mesh and display settings for the
// generators. Shapes are centered on the display.
func (c *Config) GeometryOptions() geometry.Options {
	return geometry.Options{
		Center: math.Vec2{
			X: float32(c.Display.Width) / 2,
			Y: float32(c.Display.Height) / 2,
		},
		ConeResolution:    c.Mesh.ConeResolution,
		RingSegments:      c.Mesh.RingSegments,
		TubeSegments:      c.Mesh.TubeSegments,
		PrimitiveSegments: c.Mesh.PrimitiveSegments,
		LegacyTriangle:    c.Display.LegacyTriangle,
	}
}

// ApplySpin overrides the default rotation with the animation settings.
// An unknown interpolator keeps the default.
func (c *Config) ApplySpin(r anim.Rotation) anim.Rotation {
	r.Duration = c.Animation.Period
	r.AutoReverse = c.Animation.AutoReverse
	if interp, err := anim.ParseInterpolator(c.Animation.Interpolator); err == nil {
		r.Interpolator = interp
	}
	return r
}
