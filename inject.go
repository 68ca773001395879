package infinicanvas

// syntheticEvent is a single injected input event. Coordinates are canvas
// local, the same frame a screenshot shows, and double as client coordinates.
type syntheticEvent struct {
	wheel  bool
	kind   PointerKind
	point  Vec2
	deltaY float64
}

// InjectPress queues a left-button press at the given canvas coordinates.
// The event is consumed by the next PollInjected call.
func (h *InputHub) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: PointerDown, point: Vec2{x, y}})
}

// InjectMove queues a pointer move. Between InjectPress and InjectRelease it
// continues a drag; otherwise it is a hover.
func (h *InputHub) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: PointerMove, point: Vec2{x, y}})
}

// InjectRelease queues a left-button release.
func (h *InputHub) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: PointerUp, point: Vec2{x, y}})
}

// InjectLeave queues the pointer leaving the canvas.
func (h *InputHub) InjectLeave() {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: PointerLeave, point: h.pointer})
}

// InjectWheel queues a wheel notch at the given canvas coordinates.
func (h *InputHub) InjectWheel(x, y, deltaY float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{wheel: true, point: Vec2{x, y}, deltaY: deltaY})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (h *InputHub) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence always holds at least one move, so it consumes
// max(frames, 3) frames. The final move lands on (toX, toY) so the release
// adds no displacement.
func (h *InputHub) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	h.InjectPress(fromX, fromY)
	steps := max(frames-2, 1)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (h *InputHub) Pending() int {
	return len(h.injectQueue)
}

// PollInjected pops one synthetic event and dispatches it. Returns true if
// an event was consumed, in which case hosts skip real input for the frame.
func (h *InputHub) PollInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	if evt.wheel {
		h.DispatchWheel(WheelEvent{Point: evt.point, DeltaY: evt.deltaY})
		return true
	}
	h.DispatchPointer(PointerEvent{
		Kind:   evt.kind,
		Button: MouseButtonLeft,
		Local:  evt.point,
		Client: evt.point,
	})
	return true
}
