// Package config handles application configuration loading and management.
package config

import "fmt"

// Config holds all application settings.
type Config struct {
	Wall     WallConfig     `yaml:"wall"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Input    InputConfig    `yaml:"input"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WallConfig holds the folding wall parameters.
type WallConfig struct {
	Width   float32 `yaml:"width"`   // world units
	Height  float32 `yaml:"height"`  // world units
	Strips  int     `yaml:"strips"`  // vertical strip count
	Texture string  `yaml:"texture"` // image path; empty uses procedural paper
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// InputConfig holds pointer input settings.
type InputConfig struct {
	InvertY bool `yaml:"invert_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Wall: WallConfig{
			Width:   8,
			Height:  5,
			Strips:  32,
			Texture: "",
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Input: InputConfig{
			InvertY: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would make the application unusable.
// Wall geometry errors surface here at startup, not in the frame loop.
func (c *Config) Validate() error {
	if c.Wall.Strips < 1 {
		return fmt.Errorf("wall.strips must be >= 1, got %d", c.Wall.Strips)
	}
	if c.Wall.Width <= 0 {
		return fmt.Errorf("wall.width must be > 0, got %g", c.Wall.Width)
	}
	if c.Wall.Height <= 0 {
		return fmt.Errorf("wall.height must be > 0, got %g", c.Wall.Height)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics resolution must be positive, got %dx%d",
			c.Graphics.Width, c.Graphics.Height)
	}
	return nil
}
