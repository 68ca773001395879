package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/infinicanvas"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := writeFile(t, `
[canvas]
grid_spacing = 50
max_scale = 8

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.GridSpacing != 50 || cfg.Canvas.MaxScale != 8 {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if cfg.Canvas.MinScale != infinicanvas.DefaultMinScale {
		t.Errorf("min_scale = %v, want default", cfg.Canvas.MinScale)
	}
	if cfg.Window.Width != 1024 || cfg.Log.Format != "text" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `[canvas`, "parse config"},
		{"negative spacing", "[canvas]\ngrid_spacing = -1", "grid_spacing"},
		{"inverted bounds", "[canvas]\nmin_scale = 2\nmax_scale = 1", "scale bounds"},
		{"zoom in below one", "[canvas]\nzoom_in = 0.5", "zoom_in"},
		{"zoom out above one", "[canvas]\nzoom_out = 1.5", "zoom_out"},
		{"bad level", "[log]\nlevel = \"loud\"", "log.level"},
		{"bad format", "[log]\nformat = \"xml\"", "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Window.Title = "board"
	cfg.Board.Path = "seed.yaml"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestSaveReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	err := Default().Save("/dev/full")
	if err == nil || !strings.Contains(err.Error(), "encode config") {
		t.Errorf("err = %v, want encode config failure", err)
	}
}

func TestSaveIntoDirectoryFails(t *testing.T) {
	if err := Default().Save(t.TempDir()); err == nil {
		t.Error("expected error saving over a directory")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("INFINICANVAS_CONFIG", "/tmp/x.toml")
	if p := DefaultPath(); p != "/tmp/x.toml" {
		t.Errorf("DefaultPath = %q", p)
	}
	t.Setenv("INFINICANVAS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	if p := DefaultPath(); p != filepath.Join("/cfg", "infinicanvas", "config.toml") {
		t.Errorf("DefaultPath = %q", p)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestEngineOptionsApply(t *testing.T) {
	cfg := Default()
	cfg.Canvas.MinScale, cfg.Canvas.MaxScale = 0.5, 2
	cfg.Canvas.ZoomIn, cfg.Canvas.ZoomOut = 1.5, 0.5

	e, err := infinicanvas.NewEngine(nopSurface{}, cfg.EngineOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	cam := e.Camera()
	if cam.MinScale != 0.5 || cam.MaxScale != 2 {
		t.Errorf("bounds = [%v, %v]", cam.MinScale, cam.MaxScale)
	}
	if in, out := e.ZoomSteps(); in != 1.5 || out != 0.5 {
		t.Errorf("zoom steps = %v, %v", in, out)
	}
}

type nopSurface struct{}

func (nopSurface) Clear() {}
func (nopSurface) FillRect(x, y, w, h float64, c infinicanvas.Color) {}
func (nopSurface) StrokeLine(x0, y0, x1, y1, w float64, c infinicanvas.Color) {}
func (nopSurface) FillEllipse(cx, cy, rx, ry float64, c infinicanvas.Color) {}
func (nopSurface) StrokeEllipse(cx, cy, rx, ry, w float64, c infinicanvas.Color) {}
func (nopSurface) DrawText(s string, x, y, size float64, c infinicanvas.Color) {}
