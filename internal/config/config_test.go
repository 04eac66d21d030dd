package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Faultbox/drawshape/internal/anim"
	"github.com/Faultbox/drawshape/pkg/geometry"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mesh.ConeResolution != 360 {
		t.Errorf("expected cone resolution 360, got %d", cfg.Mesh.ConeResolution)
	}
	if cfg.Mesh.RingSegments != 128 || cfg.Mesh.TubeSegments != 64 {
		t.Errorf("expected torus 128x64, got %dx%d", cfg.Mesh.RingSegments, cfg.Mesh.TubeSegments)
	}
	if cfg.Display.Width != 300 || cfg.Display.Height != 300 {
		t.Errorf("expected 300x300 display, got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.LegacyTriangle {
		t.Error("expected legacy triangle to be off by default")
	}
	if cfg.Animation.Period != 5*time.Second {
		t.Errorf("expected period 5s, got %v", cfg.Animation.Period)
	}
	if !cfg.Animation.AutoReverse {
		t.Error("expected auto reverse by default")
	}
	if cfg.Export.Format != "obj" {
		t.Errorf("expected export format obj, got %s", cfg.Export.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "drawshape.yaml")

	yamlContent := `
mesh:
  cone_resolution: 90
  ring_segments: 32
  tube_segments: 16

display:
  width: 640
  height: 480
  legacy_triangle: true

animation:
  period: 2s
  auto_reverse: false
  interpolator: linear

export:
  format: stl

logging:
  level: "debug"
  log_file: "drawshape.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.ConeResolution != 90 {
		t.Errorf("expected cone resolution 90, got %d", cfg.Mesh.ConeResolution)
	}
	if cfg.Mesh.RingSegments != 32 || cfg.Mesh.TubeSegments != 16 {
		t.Errorf("expected torus 32x16, got %dx%d", cfg.Mesh.RingSegments, cfg.Mesh.TubeSegments)
	}
	// Not in the file, keeps the default.
	if cfg.Mesh.PrimitiveSegments != geometry.DefaultPrimitiveSegments {
		t.Errorf("expected default primitive segments, got %d", cfg.Mesh.PrimitiveSegments)
	}
	if cfg.Display.Width != 640 || !cfg.Display.LegacyTriangle {
		t.Errorf("display not loaded: %+v", cfg.Display)
	}
	if cfg.Animation.Period != 2*time.Second {
		t.Errorf("expected period 2s, got %v", cfg.Animation.Period)
	}
	if cfg.Animation.AutoReverse {
		t.Error("expected auto reverse to be false")
	}
	if cfg.Export.Format != "stl" {
		t.Errorf("expected export format stl, got %s", cfg.Export.Format)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "drawshape.log" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
mesh:
  cone_resolution: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/drawshape.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"cone resolution", func(c *Config) { c.Mesh.ConeResolution = 2 }},
		{"ring segments", func(c *Config) { c.Mesh.RingSegments = 0 }},
		{"primitive segments", func(c *Config) { c.Mesh.PrimitiveSegments = 1 }},
		{"display", func(c *Config) { c.Display.Height = 0 }},
		{"period", func(c *Config) { c.Animation.Period = 0 }},
		{"interpolator", func(c *Config) { c.Animation.Interpolator = "bounce" }},
		{"format", func(c *Config) { c.Export.Format = "ply" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestGeometryOptions(t *testing.T) {
	cfg := Default()
	cfg.Display.Width = 800
	cfg.Display.Height = 600
	cfg.Display.LegacyTriangle = true

	opts := cfg.GeometryOptions()
	if opts.Center.X != 400 || opts.Center.Y != 300 {
		t.Errorf("expected center (400, 300), got %v", opts.Center)
	}
	if opts.ConeResolution != 360 || !opts.LegacyTriangle {
		t.Errorf("options not carried over: %+v", opts)
	}
}

func TestApplySpin(t *testing.T) {
	cfg := Default()
	cfg.Animation.Period = time.Second
	cfg.Animation.AutoReverse = false
	cfg.Animation.Interpolator = "linear"

	r := cfg.ApplySpin(anim.Spin(geometry.KindCube))
	if r.Duration != time.Second || r.AutoReverse || r.Interpolator != anim.Linear {
		t.Errorf("spin not applied: %+v", r)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestDefaultPath(t *testing.T) {
	if got := DefaultPath(); got != filepath.Join(ConfigDir(), "drawshape.yaml") {
		t.Errorf("DefaultPath = %s, want drawshape.yaml under %s", got, ConfigDir())
	}
}

func TestSaveWritesDefaultPath(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not controlled by XDG_CONFIG_HOME here")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if err := Default().Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	want := filepath.Join(xdg, "drawshape", "drawshape.yaml")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected config at %s: %v", want, err)
	}
	if findConfigFile() == "" {
		t.Error("saved config should be found by Load")
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, fileName)
	if err := os.WriteFile(configPath, []byte("mesh:\n  cone_resolution: 60\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find drawshape.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "torus segment flags",
			setup: func() {
				*flagRingSegments = 48
				*flagTubeSegments = 24
			},
			verify: func(cfg *Config) {
				if cfg.Mesh.RingSegments != 48 || cfg.Mesh.TubeSegments != 24 {
					t.Errorf("expected 48x24, got %dx%d", cfg.Mesh.RingSegments, cfg.Mesh.TubeSegments)
				}
			},
			teardown: func() {
				*flagRingSegments = 0
				*flagTubeSegments = 0
			},
		},
		{
			name:  "cone resolution flag",
			setup: func() { *flagConeResolution = 720 },
			verify: func(cfg *Config) {
				if cfg.Mesh.ConeResolution != 720 {
					t.Errorf("expected 720, got %d", cfg.Mesh.ConeResolution)
				}
			},
			teardown: func() { *flagConeResolution = 0 },
		},
		{
			name:  "legacy triangle flag",
			setup: func() { *flagLegacyTriangle = true },
			verify: func(cfg *Config) {
				if !cfg.Display.LegacyTriangle {
					t.Error("expected legacy triangle to be enabled")
				}
			},
			teardown: func() { *flagLegacyTriangle = false },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "out.log" },
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "drawshape.yaml")

	yamlContent := `
mesh:
  ring_segments: 64
  tube_segments: 32
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagRingSegments = 96
	defer func() {
		*flagConfig = ""
		*flagRingSegments = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.RingSegments != 96 {
		t.Errorf("expected ring segments 96 from flag, got %d", cfg.Mesh.RingSegments)
	}
	if cfg.Mesh.TubeSegments != 32 {
		t.Errorf("expected tube segments 32 from file, got %d", cfg.Mesh.TubeSegments)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "drawshape.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  cone_resolution: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "drawshape.yaml")

	cfg := Default()
	cfg.Mesh.ConeResolution = 120
	cfg.Animation.Period = 3 * time.Second
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Mesh.ConeResolution != 120 || loaded.Animation.Period != 3*time.Second {
		t.Errorf("saved config not preserved: %+v", loaded)
	}
}
