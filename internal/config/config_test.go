package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Wall.Width != 8 {
		t.Errorf("expected wall width 8, got %g", cfg.Wall.Width)
	}
	if cfg.Wall.Height != 5 {
		t.Errorf("expected wall height 5, got %g", cfg.Wall.Height)
	}
	if cfg.Wall.Strips != 32 {
		t.Errorf("expected 32 strips, got %d", cfg.Wall.Strips)
	}
	if cfg.Wall.Texture != "" {
		t.Errorf("expected empty texture path, got %s", cfg.Wall.Texture)
	}

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Input.InvertY {
		t.Error("expected invert_y to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadWall(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero strips", func(c *Config) { c.Wall.Strips = 0 }},
		{"negative strips", func(c *Config) { c.Wall.Strips = -4 }},
		{"zero width", func(c *Config) { c.Wall.Width = 0 }},
		{"negative height", func(c *Config) { c.Wall.Height = -1 }},
		{"zero resolution", func(c *Config) { c.Graphics.Width = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted invalid config")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
wall:
  width: 12.5
  height: 6
  strips: 48
  texture: "paper.png"

graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

input:
  invert_y: true

logging:
  level: debug
  log_file: foldwall.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Wall.Width != 12.5 {
		t.Errorf("expected wall width 12.5, got %g", cfg.Wall.Width)
	}
	if cfg.Wall.Strips != 48 {
		t.Errorf("expected 48 strips, got %d", cfg.Wall.Strips)
	}
	if cfg.Wall.Texture != "paper.png" {
		t.Errorf("expected texture 'paper.png', got %s", cfg.Wall.Texture)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true from file")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps_limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if !cfg.Input.InvertY {
		t.Error("expected invert_y true from file")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// Values absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
wall:
  strips: 16
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Wall.Strips != 16 {
		t.Errorf("expected 16 strips, got %d", cfg.Wall.Strips)
	}
	if cfg.Wall.Width != 8 {
		t.Errorf("expected default wall width 8, got %g", cfg.Wall.Width)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Graphics.Width)
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("wall: [not a map"), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("loadFromFile() accepted invalid YAML")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loadFromFile() accepted missing file")
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Wall.Strips = 24
	cfg.Graphics.VSync = false

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Wall.Strips != 24 {
		t.Errorf("round-trip strips = %d, want 24", loaded.Wall.Strips)
	}
	if loaded.Graphics.VSync {
		t.Error("round-trip vsync = true, want false")
	}
}

func TestApplyFlagsDebug(t *testing.T) {
	old := *flagDebug
	*flagDebug = true
	defer func() { *flagDebug = old }()

	cfg := Default()
	applyFlags(cfg)
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected -debug to set level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestApplyFlagsPrecedence(t *testing.T) {
	oldStrips, oldWidth := *flagStrips, *flagWidth
	*flagStrips = 64
	*flagWidth = 800
	defer func() { *flagStrips, *flagWidth = oldStrips, oldWidth }()

	cfg := Default()
	cfg.Wall.Strips = 16 // pretend this came from a file
	applyFlags(cfg)

	if cfg.Wall.Strips != 64 {
		t.Errorf("expected flag to override strips, got %d", cfg.Wall.Strips)
	}
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected flag to override width, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected unset flag to keep height, got %d", cfg.Graphics.Height)
	}
}
