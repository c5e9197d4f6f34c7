package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cubelife/internal/anim"
	"github.com/san-kum/cubelife/internal/camera"
	"github.com/san-kum/cubelife/internal/clock"
	"github.com/san-kum/cubelife/internal/frame"
	"github.com/san-kum/cubelife/internal/grid"
)

const (
	DefaultSize       = grid.DefaultSize
	DefaultDensity    = grid.DefaultDensity
	DefaultIntervalMs = clock.DefaultIntervalMs
	DefaultMaxCatchUp = clock.DefaultMaxCatchUp
	DefaultRotationX  = camera.DefaultRotationX
	DefaultRotationY  = camera.DefaultRotationY
	DefaultZoom       = camera.DefaultZoom
	DefaultStep       = anim.DefaultStep
	DefaultFPS        = 60
	DefaultWidth      = 1280
	DefaultHeight     = 720
	DefaultBirds      = 5
	DefaultWinScore   = 5
)

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("config: invalid value")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Clock     ClockConfig     `yaml:"clock"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Render    RenderConfig    `yaml:"render"`
	Gallery   GalleryConfig   `yaml:"gallery"`
}

type GridConfig struct {
	Size    int     `yaml:"size"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

type ClockConfig struct {
	TickIntervalMs int64 `yaml:"tick_interval_ms"`
	MaxCatchUp     int   `yaml:"max_catch_up"`
}

type CameraConfig struct {
	RotationX float64 `yaml:"rotation_x"`
	RotationY float64 `yaml:"rotation_y"`
	Zoom      float64 `yaml:"zoom"`
}

type AnimationConfig struct {
	Step float64 `yaml:"step"`
}

type RenderConfig struct {
	FPS    int    `yaml:"fps"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
}

type GalleryConfig struct {
	Birds    int `yaml:"birds"`
	WinScore int `yaml:"win_score"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Size:    DefaultSize,
			Density: DefaultDensity,
		},
		Clock: ClockConfig{
			TickIntervalMs: DefaultIntervalMs,
			MaxCatchUp:     DefaultMaxCatchUp,
		},
		Camera: CameraConfig{
			RotationX: DefaultRotationX,
			RotationY: DefaultRotationY,
			Zoom:      DefaultZoom,
		},
		Animation: AnimationConfig{Step: DefaultStep},
		Render: RenderConfig{
			FPS:    DefaultFPS,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Theme:  "minimal",
		},
		Gallery: GalleryConfig{
			Birds:    DefaultBirds,
			WinScore: DefaultWinScore,
		},
	}
}

// Load reads a yaml file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Grid.Size < 1:
		return &ValidationError{"grid.size", "must be at least 1"}
	case c.Grid.Size > 64:
		return &ValidationError{"grid.size", "must be at most 64"}
	case c.Grid.Density < 0 || c.Grid.Density > 1:
		return &ValidationError{"grid.density", "must be within [0,1]"}
	case c.Clock.TickIntervalMs <= 0:
		return &ValidationError{"clock.tick_interval_ms", "must be positive"}
	case c.Clock.MaxCatchUp < 1:
		return &ValidationError{"clock.max_catch_up", "must be at least 1"}
	case c.Camera.Zoom < -100 || c.Camera.Zoom > -5:
		return &ValidationError{"camera.zoom", "must be within [-100,-5]"}
	case c.Animation.Step <= 0 || c.Animation.Step > 1:
		return &ValidationError{"animation.step", "must be within (0,1]"}
	case c.Render.FPS < 1:
		return &ValidationError{"render.fps", "must be at least 1"}
	case c.Render.Width < 1 || c.Render.Height < 1:
		return &ValidationError{"render.width/height", "must be positive"}
	case c.Gallery.Birds < 1:
		return &ValidationError{"gallery.birds", "must be at least 1"}
	case c.Gallery.WinScore < 1:
		return &ValidationError{"gallery.win_score", "must be at least 1"}
	}
	return nil
}

// Resolve builds the effective config: defaults, then the file at path, then
// the preset on top. Empty path or preset skips that layer.
func Resolve(path, preset string) (*Config, error) {
	var apply func(*Config)
	if preset != "" {
		var ok bool
		if apply, ok = Presets[preset]; !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, ListPresets())
		}
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if apply != nil {
		apply(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", preset, err)
		}
	}
	return cfg, nil
}

// Settings converts the lattice, clock, animation and camera sections into
// the parameters of a new frame state.
func (c *Config) Settings() frame.Settings {
	return frame.Settings{
		Size:       c.Grid.Size,
		Density:    c.Grid.Density,
		Seed:       c.Grid.Seed,
		IntervalMs: c.Clock.TickIntervalMs,
		MaxCatchUp: c.Clock.MaxCatchUp,
		Step:       c.Animation.Step,
		RotationX:  c.Camera.RotationX,
		RotationY:  c.Camera.RotationY,
		Zoom:       c.Camera.Zoom,
	}
}
