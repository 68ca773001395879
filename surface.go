package infinicanvas

// Surface is the 2D drawing target the engine renders into. All coordinates
// are in screen space with the origin at the top-left.
//
// Implementations are supplied by the host: ImageSurface draws into an
// Ebitengine image, raster.Surface into a CPU pixmap.
type Surface interface {
	// Clear resets every pixel to transparent.
	Clear()
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// StrokeLine draws a line segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// FillEllipse fills an axis-aligned ellipse centered on (cx, cy).
	FillEllipse(cx, cy, rx, ry float64, c Color)
	// StrokeEllipse outlines an axis-aligned ellipse centered on (cx, cy).
	StrokeEllipse(cx, cy, rx, ry, width float64, c Color)
	// DrawText draws s centered horizontally and vertically on (x, y) at
	// the given font size in screen units.
	DrawText(s string, x, y, size float64, c Color)
}
