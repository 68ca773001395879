package infinicanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ellipseSegments is the polygon resolution used to approximate ellipses.
const ellipseSegments = 64

// --- White pixel singleton (no sync.Once; drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized white sub-image used as the
// source for untextured triangles. The 1px border keeps sampling inside.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixelImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixelImage
}

var labelFaceSource *text.GoTextFaceSource

// loadLabelFace returns the Go Regular face source, parsed on first use.
func loadLabelFace() (*text.GoTextFaceSource, error) {
	if labelFaceSource != nil {
		return labelFaceSource, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("infinicanvas: failed to parse label font: %w", err)
	}
	labelFaceSource = src
	return src, nil
}

// ImageSurface is a Surface backed by an Ebitengine image.
type ImageSurface struct {
	img *ebiten.Image

	// Reused between calls.
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewImageSurface wraps img. img may be nil and set later with SetImage.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// SetImage swaps the target image, typically after a window resize.
func (s *ImageSurface) SetImage(img *ebiten.Image) {
	s.img = img
}

// Image returns the target image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Clear erases the whole image to transparent.
func (s *ImageSurface) Clear() {
	if s.img == nil {
		return
	}
	s.img.Clear()
}

// FillRect fills an axis-aligned rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, c Color) {
	if s.img == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

// StrokeLine draws a line segment.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if s.img == nil || width <= 0 {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.RGBA(), true)
}

// FillEllipse fills an axis-aligned ellipse.
func (s *ImageSurface) FillEllipse(cx, cy, rx, ry float64, c Color) {
	if s.img == nil || rx <= 0 || ry <= 0 {
		return
	}
	p := ellipsePath(cx, cy, rx, ry)
	s.vertices, s.indices = p.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawTriangles(c, ebiten.FillRuleNonZero)
}

// StrokeEllipse outlines an axis-aligned ellipse.
func (s *ImageSurface) StrokeEllipse(cx, cy, rx, ry, width float64, c Color) {
	if s.img == nil || rx <= 0 || ry <= 0 || width <= 0 {
		return
	}
	p := ellipsePath(cx, cy, rx, ry)
	op := &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinRound}
	s.vertices, s.indices = p.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	s.drawTriangles(c, ebiten.FillRuleFillAll)
}

// DrawText draws s centered on (x, y) with the label font at size.
func (s *ImageSurface) DrawText(str string, x, y, size float64, c Color) {
	if s.img == nil || str == "" || size <= 0 {
		return
	}
	src, err := loadLabelFace()
	if err != nil {
		Logger().Warn("label font unavailable", "error", err)
		return
	}
	face := &text.GoTextFace{Source: src, Size: size}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	p := c.premultiplied()
	op.ColorScale.Scale(float32(p.R), float32(p.G), float32(p.B), float32(p.A))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.img, str, face, op)
}

func (s *ImageSurface) drawTriangles(c Color, rule ebiten.FillRule) {
	if len(s.indices) == 0 {
		return
	}
	// Vertex colors are premultiplied.
	p := c.premultiplied()
	r, g, b, a := float32(p.R), float32(p.G), float32(p.B), float32(p.A)
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	op.FillRule = rule
	s.img.DrawTriangles(s.vertices, s.indices, ensureWhitePixel(), &op)
}

// ellipsePath approximates an ellipse with a closed polygon.
func ellipsePath(cx, cy, rx, ry float64) *vector.Path {
	var p vector.Path
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(cx + rx*math.Cos(theta))
		y := float32(cy + ry*math.Sin(theta))
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return &p
}
