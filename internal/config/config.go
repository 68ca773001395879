// Package config loads infinicanvas settings from TOML.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $INFINICANVAS_CONFIG
//  3. ~/.config/infinicanvas/config.toml
//
// A missing file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/infinicanvas"
)

// Config holds infinicanvas configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Canvas CanvasConfig `toml:"canvas"`
	Log    LogConfig    `toml:"log"`
	Board  BoardConfig  `toml:"board"`
}

// WindowConfig controls the desktop window opened by `run`.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	ShowFPS   bool   `toml:"show_fps"`
}

// CanvasConfig carries the engine's construction-time constants.
type CanvasConfig struct {
	GridSpacing float64 `toml:"grid_spacing"`
	MinScale    float64 `toml:"min_scale"`
	MaxScale    float64 `toml:"max_scale"`
	ZoomIn      float64 `toml:"zoom_in"`
	ZoomOut     float64 `toml:"zoom_out"`
	Debug       bool    `toml:"debug"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text", "json"
}

// BoardConfig names the seed board loaded at startup.
type BoardConfig struct {
	Path string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Title: "infinicanvas", Width: 1024, Height: 768, Resizable: true},
		Canvas: CanvasConfig{
			GridSpacing: infinicanvas.DefaultGridSpacing,
			MinScale:    infinicanvas.DefaultMinScale,
			MaxScale:    infinicanvas.DefaultMaxScale,
			ZoomIn:      infinicanvas.DefaultZoomIn,
			ZoomOut:     infinicanvas.DefaultZoomOut,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// DefaultPath returns the config path used when no flag is given.
func DefaultPath() string {
	if p := os.Getenv("INFINICANVAS_CONFIG"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "infinicanvas", "config.toml")
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// applyDefaults fills zero values left by a partial file.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.Width == 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Canvas.GridSpacing == 0 {
		c.Canvas.GridSpacing = d.Canvas.GridSpacing
	}
	if c.Canvas.MinScale == 0 {
		c.Canvas.MinScale = d.Canvas.MinScale
	}
	if c.Canvas.MaxScale == 0 {
		c.Canvas.MaxScale = d.Canvas.MaxScale
	}
	if c.Canvas.ZoomIn == 0 {
		c.Canvas.ZoomIn = d.Canvas.ZoomIn
	}
	if c.Canvas.ZoomOut == 0 {
		c.Canvas.ZoomOut = d.Canvas.ZoomOut
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("window size %dx%d is negative", c.Window.Width, c.Window.Height)
	case c.Canvas.GridSpacing <= 0:
		return fmt.Errorf("canvas.grid_spacing must be positive, got %v", c.Canvas.GridSpacing)
	case c.Canvas.MinScale <= 0 || c.Canvas.MaxScale < c.Canvas.MinScale:
		return fmt.Errorf("canvas scale bounds [%v, %v] are invalid", c.Canvas.MinScale, c.Canvas.MaxScale)
	case c.Canvas.ZoomIn <= 1:
		return fmt.Errorf("canvas.zoom_in must be greater than 1, got %v", c.Canvas.ZoomIn)
	case c.Canvas.ZoomOut <= 0 || c.Canvas.ZoomOut >= 1:
		return fmt.Errorf("canvas.zoom_out must be in (0, 1), got %v", c.Canvas.ZoomOut)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// EngineOptions converts the canvas section into engine options.
func (c *Config) EngineOptions() []infinicanvas.Option {
	return []infinicanvas.Option{
		infinicanvas.WithGridSpacing(c.Canvas.GridSpacing),
		infinicanvas.WithScaleBounds(c.Canvas.MinScale, c.Canvas.MaxScale),
		infinicanvas.WithZoomSteps(c.Canvas.ZoomIn, c.Canvas.ZoomOut),
		infinicanvas.WithDebug(c.Canvas.Debug),
	}
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", s, err)
	}
	return l, nil
}
