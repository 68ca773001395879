package infinicanvas

// Default wheel zoom steps.
const (
	DefaultZoomIn  = 1.1
	DefaultZoomOut = 0.9
)

// WheelEvent is a scroll sample. Only the sign of DeltaY matters.
type WheelEvent struct {
	// Point is the pointer position relative to the canvas top-left.
	Point  Vec2
	DeltaY float64
}

// ZoomFactor maps a wheel delta to a zoom factor. Scrolling up (negative
// delta) zooms in. A zero delta reports false.
func ZoomFactor(deltaY, zoomIn, zoomOut float64) (float64, bool) {
	switch {
	case deltaY < 0:
		return zoomIn, true
	case deltaY > 0:
		return zoomOut, true
	default:
		return 0, false
	}
}

// ZoomController turns wheel events into anchored zooms.
type ZoomController struct {
	ZoomIn  float64
	ZoomOut float64

	engine *Engine
}

// NewZoomController creates a controller using the engine's zoom steps.
func NewZoomController(e *Engine) *ZoomController {
	in, out := e.ZoomSteps()
	return &ZoomController{ZoomIn: in, ZoomOut: out, engine: e}
}

// HandleWheel zooms at the event point. Reports whether a zoom was applied.
func (z *ZoomController) HandleWheel(ev WheelEvent) bool {
	f, ok := ZoomFactor(ev.DeltaY, z.ZoomIn, z.ZoomOut)
	if !ok {
		return false
	}
	z.engine.ZoomAtScreenPoint(ev.Point, f)
	return true
}
