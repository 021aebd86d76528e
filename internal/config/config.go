// Package config loads the viewer configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/leterax/citywalk/pkg/city"
	"github.com/leterax/citywalk/pkg/control"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPitchRange is returned when min_pitch_deg exceeds max_pitch_deg
var ErrInvalidPitchRange = errors.New("min pitch exceeds max pitch")

// Window holds window settings
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Mascot holds the decorative mascot settings
type Mascot struct {
	Enabled      bool    `yaml:"enabled"`
	BobAmplitude float32 `yaml:"bob_amplitude"`
	BobFrequency float32 `yaml:"bob_frequency"`
	FollowWeight float32 `yaml:"follow_weight"`
	Smoothing    float32 `yaml:"smoothing"`
}

// Config is the full viewer configuration
type Config struct {
	LogLevel   string         `yaml:"log_level"`
	Window     Window         `yaml:"window"`
	Controller control.Config `yaml:"controller"`
	City       city.Params    `yaml:"city"`
	Mascot     Mascot         `yaml:"mascot"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogLevel: "info",
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "City Walk",
			VSync:  true,
		},
		Controller: control.DefaultConfig(),
		City:       city.DefaultParams(),
		Mascot: Mascot{
			Enabled:      true,
			BobAmplitude: 0.15,
			BobFrequency: 0.6,
			FollowWeight: 0.8,
			Smoothing:    8,
		},
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML on top of Default and validates the result
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values the controller does not guard against
func (c Config) Validate() error {
	if c.Controller.MinPitchDeg > c.Controller.MaxPitchDeg {
		return fmt.Errorf("controller: %w (%v > %v)", ErrInvalidPitchRange,
			c.Controller.MinPitchDeg, c.Controller.MaxPitchDeg)
	}
	if c.Controller.Deadzone < 0 || c.Controller.Deadzone >= 1 {
		return fmt.Errorf("controller: deadzone %v outside [0, 1)", c.Controller.Deadzone)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Level returns the parsed log level, info when invalid
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
