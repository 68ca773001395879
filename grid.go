package infinicanvas

import "math"

// DefaultGridSpacing is the distance between grid lines in world units.
const DefaultGridSpacing = 100.0

// GridLayer renders an infinite background grid with lines every Spacing
// world units.
type GridLayer struct {
	Spacing   float64
	LineWidth float64
	Color     Color
}

// NewGridLayer creates a grid layer with the default spacing and style.
func NewGridLayer() *GridLayer {
	return &GridLayer{
		Spacing:   DefaultGridSpacing,
		LineWidth: 1,
		Color:     ColorGridLine,
	}
}

// gridRange returns the first grid line at or before lo and the number of
// lines from there up to hi inclusive.
func gridRange(lo, hi, step float64) (first float64, count int) {
	first = RoundDownToMultiple(lo, step)
	last := RoundDownToMultiple(hi, step)
	count = int(math.Round((last-first)/step)) + 1
	return first, count
}

// Draw maps the viewport corners to world space, snaps the visible rectangle
// down to the grid, and strokes every vertical and horizontal line crossing it.
func (g *GridLayer) Draw(dst Surface, cam *Camera, vp ViewportSize) {
	if vp.Empty() || !(g.Spacing > 0) {
		return
	}

	topLeft := cam.ScreenToWorld(Vec2{}, vp)
	bottomRight := cam.ScreenToWorld(Vec2{vp.Width, vp.Height}, vp)

	left, cols := gridRange(topLeft.X, bottomRight.X, g.Spacing)
	top, rows := gridRange(topLeft.Y, bottomRight.Y, g.Spacing)

	// Scratch endpoints reused across lines.
	var a, b Vec2

	for i := 0; i < cols; i++ {
		x := left + float64(i)*g.Spacing
		p1 := cam.WorldToScreen(*a.Set(x, topLeft.Y), vp)
		p2 := cam.WorldToScreen(*b.Set(x, bottomRight.Y), vp)
		dst.StrokeLine(p1.X, p1.Y, p2.X, p2.Y, g.LineWidth, g.Color)
	}
	for i := 0; i < rows; i++ {
		y := top + float64(i)*g.Spacing
		p1 := cam.WorldToScreen(*a.Set(topLeft.X, y), vp)
		p2 := cam.WorldToScreen(*b.Set(bottomRight.X, y), vp)
		dst.StrokeLine(p1.X, p1.Y, p2.X, p2.Y, g.LineWidth, g.Color)
	}
}
