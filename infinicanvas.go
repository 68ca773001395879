package infinicanvas

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a Surface submits the color.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to a premultiplied color.RGBA, the form image/color and
// Ebitengine expect. Components are clamped to [0, 1] first, so R, G and B
// never exceed A.
func (c Color) RGBA() color.RGBA {
	p := c.premultiplied()
	a := clampByte(p.A * 255)
	return color.RGBA{
		R: min(clampByte(p.R*255), a),
		G: min(clampByte(p.G*255), a),
		B: min(clampByte(p.B*255), a),
		A: a,
	}
}

// premultiplied clamps c to [0, 1] and scales RGB by alpha.
func (c Color) premultiplied() Color {
	a := clamp01(c.A)
	return Color{clamp01(c.R) * a, clamp01(c.G) * a, clamp01(c.B) * a, a}
}

func clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default:
		return 0 // also NaN
	}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// Palette colors used by the built-in layers.
var (
	ColorWhite      = Color{1, 1, 1, 1}
	ColorBackground = Color{229.0 / 255, 231.0 / 255, 235.0 / 255, 1} // gray-200
	ColorGridLine   = Color{148.0 / 255, 163.0 / 255, 184.0 / 255, 0.4}
	ColorNodeStroke = Color{31.0 / 255, 41.0 / 255, 55.0 / 255, 1}  // slate-900
	ColorNodeText   = Color{17.0 / 255, 24.0 / 255, 39.0 / 255, 1}   // gray-900
	ColorSelected   = Color{37.0 / 255, 99.0 / 255, 235.0 / 255, 1}  // blue-600
	ColorHovered    = Color{96.0 / 255, 165.0 / 255, 250.0 / 255, 1} // blue-400
	ColorHoverFill  = Color{239.0 / 255, 246.0 / 255, 1, 1}          // blue-50
)

// Vec2 is a 2D point or displacement. Add, Sub and Scale return new values and
// never modify their operands.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Set overwrites v in place and returns it. Only meant for scratch values
// reused inside hot loops.
func (v *Vec2) Set(x, y float64) *Vec2 {
	v.X = x
	v.Y = y
	return v
}

// ViewportSize is the drawing surface size in screen units.
type ViewportSize struct {
	Width, Height float64
}

// Center returns the geometric center of the viewport.
func (s ViewportSize) Center() Vec2 {
	return Vec2{s.Width / 2, s.Height / 2}
}

// Empty reports whether the viewport has no drawable area.
func (s ViewportSize) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// PointerKind identifies a kind of pointer event.
type PointerKind uint8

const (
	PointerDown  PointerKind = iota // a button was pressed
	PointerMove                     // the pointer moved
	PointerUp                       // a button was released
	PointerLeave                    // the pointer left the canvas
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}
