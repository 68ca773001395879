package infinicanvas

import "math"

// WorldToScreen maps a world-space point to screen space for a camera centered
// on camPos at magnification camScale:
//
//	screen = viewportCenter + (world - camPos) * camScale
func WorldToScreen(world Vec2, vp ViewportSize, camPos Vec2, camScale float64) Vec2 {
	return vp.Center().Add(world.Sub(camPos).Scale(camScale))
}

// ScreenToWorld is the exact inverse of WorldToScreen:
//
//	world = camPos + (screen - viewportCenter) / camScale
//
// camScale must be non-zero. Callers keep it inside the camera's scale bounds.
func ScreenToWorld(screen Vec2, vp ViewportSize, camPos Vec2, camScale float64) Vec2 {
	return camPos.Add(screen.Sub(vp.Center()).Scale(1 / camScale))
}

// RoundDownToMultiple floors value to the nearest multiple of step at or below
// it. Negative values round away from zero: RoundDownToMultiple(-40, 100) is -100.
func RoundDownToMultiple(value, step float64) float64 {
	return math.Floor(value/step) * step
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
