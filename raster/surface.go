// Package raster provides a headless CPU Surface for infinicanvas backed by
// gogpu/gg. It is used for PNG snapshots, scripted visual tests and any host
// without a GPU window.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/infinicanvas"
)

// Surface is an infinicanvas.Surface that rasterizes into an in-memory
// pixmap.
//
// Drawing methods cannot return errors through the Surface interface; the
// first rasterizer error is kept and reported by Err.
type Surface struct {
	ctx   *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face
	err   error
}

var _ infinicanvas.Surface = (*Surface)(nil)

// New creates a width x height surface with the bundled Go Regular font for
// labels.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load label font: %w", err)
	}
	return &Surface{
		ctx:   gg.NewContext(width, height),
		font:  font,
		faces: make(map[float64]text.Face),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.ctx.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.ctx.Height() }

// Viewport returns the surface size as an infinicanvas viewport.
func (s *Surface) Viewport() infinicanvas.ViewportSize {
	return infinicanvas.ViewportSize{Width: float64(s.ctx.Width()), Height: float64(s.ctx.Height())}
}

// Resize reallocates the pixmap. Contents are lost.
func (s *Surface) Resize(width, height int) error {
	if err := s.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}

// Err returns the first drawing error since the last Clear.
func (s *Surface) Err() error {
	return s.err
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the current pixels as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.ctx.Close()
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	s.err = nil
	s.ctx.Clear()
}

// FillRect fills an axis-aligned rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c infinicanvas.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.setColor(c)
	s.ctx.DrawRectangle(x, y, w, h)
	s.keep(s.ctx.Fill())
}

// StrokeLine draws a line segment.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c infinicanvas.Color) {
	if width <= 0 {
		return
	}
	s.setColor(c)
	s.ctx.SetLineWidth(width)
	s.ctx.DrawLine(x0, y0, x1, y1)
	s.keep(s.ctx.Stroke())
}

// FillEllipse fills an axis-aligned ellipse.
func (s *Surface) FillEllipse(cx, cy, rx, ry float64, c infinicanvas.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	s.setColor(c)
	s.ctx.DrawEllipse(cx, cy, rx, ry)
	s.keep(s.ctx.Fill())
}

// StrokeEllipse outlines an axis-aligned ellipse.
func (s *Surface) StrokeEllipse(cx, cy, rx, ry, width float64, c infinicanvas.Color) {
	if rx <= 0 || ry <= 0 || width <= 0 {
		return
	}
	s.setColor(c)
	s.ctx.SetLineWidth(width)
	s.ctx.DrawEllipse(cx, cy, rx, ry)
	s.keep(s.ctx.Stroke())
}

// DrawText draws str centered on (x, y).
func (s *Surface) DrawText(str string, x, y, size float64, c infinicanvas.Color) {
	if str == "" || size <= 0 {
		return
	}
	s.setColor(c)
	s.ctx.SetFont(s.face(size))
	s.ctx.DrawStringAnchored(str, x, y, 0.5, 0.5)
}

// face returns a cached face for size, rounded to a quarter point so
// continuous zooming does not grow the cache without bound.
func (s *Surface) face(size float64) text.Face {
	key := max(math.Round(size*4)/4, 0.25)
	if f, ok := s.faces[key]; ok {
		return f
	}
	f := s.font.Face(key)
	s.faces[key] = f
	return f
}

func (s *Surface) setColor(c infinicanvas.Color) {
	s.ctx.SetRGBA(c.R, c.G, c.B, c.A)
}

func (s *Surface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
		infinicanvas.Logger().Warn("raster draw failed", "error", err)
	}
}
