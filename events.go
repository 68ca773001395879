package infinicanvas

// EventSource delivers host input to the canvas. Every subscription returns a
// CallbackHandle whose Remove revokes it.
type EventSource interface {
	OnPointer(fn func(PointerEvent)) CallbackHandle
	OnWheel(fn func(WheelEvent)) CallbackHandle
	OnResize(fn func(ViewportSize)) CallbackHandle
}

// EventType identifies a subscription kind.
type EventType uint8

const (
	EventPointer EventType = iota
	EventWheel
	EventResize
)

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type wheelHandler struct {
	id uint32
	fn func(WheelEvent)
}

type resizeHandler struct {
	id uint32
	fn func(ViewportSize)
}

type handlerRegistry struct {
	pointer []pointerHandler
	wheel   []wheelHandler
	resize  []resizeHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing the zero handle, does nothing.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointer:
		h.reg.pointer = removeHandler(h.reg.pointer, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventWheel:
		h.reg.wheel = removeHandler(h.reg.wheel, h.id, func(w wheelHandler) uint32 { return w.id })
	case EventResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id, func(r resizeHandler) uint32 { return r.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// InputHub is the EventSource hosts push input into. Platform glue (the
// Ebitengine game loop, a test script, a headless CLI) calls the Dispatch
// methods; subscribers registered with the On methods receive the events in
// registration order.
//
// InputHub also carries a queue of synthetic events, drained one per frame by
// PollInjected, for scripted and automated input.
type InputHub struct {
	handlers    handlerRegistry
	injectQueue []syntheticEvent
	pointer     Vec2
}

// NewInputHub creates an empty hub.
func NewInputHub() *InputHub {
	return &InputHub{}
}

// OnPointer registers a callback for pointer events.
func (h *InputHub) OnPointer(fn func(PointerEvent)) CallbackHandle {
	h.handlers.nextID++
	id := h.handlers.nextID
	h.handlers.pointer = append(h.handlers.pointer, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &h.handlers, event: EventPointer}
}

// OnWheel registers a callback for wheel events.
func (h *InputHub) OnWheel(fn func(WheelEvent)) CallbackHandle {
	h.handlers.nextID++
	id := h.handlers.nextID
	h.handlers.wheel = append(h.handlers.wheel, wheelHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &h.handlers, event: EventWheel}
}

// OnResize registers a callback for viewport size changes.
func (h *InputHub) OnResize(fn func(ViewportSize)) CallbackHandle {
	h.handlers.nextID++
	id := h.handlers.nextID
	h.handlers.resize = append(h.handlers.resize, resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &h.handlers, event: EventResize}
}

// Subscribers returns the number of live subscriptions.
func (h *InputHub) Subscribers() int {
	return len(h.handlers.pointer) + len(h.handlers.wheel) + len(h.handlers.resize)
}

// DispatchPointer delivers ev to every pointer subscriber.
func (h *InputHub) DispatchPointer(ev PointerEvent) {
	h.pointer = ev.Local
	// Iterate over a snapshot; handlers may remove themselves.
	hs := append([]pointerHandler(nil), h.handlers.pointer...)
	for _, ph := range hs {
		ph.fn(ev)
	}
}

// DispatchWheel delivers ev to every wheel subscriber.
func (h *InputHub) DispatchWheel(ev WheelEvent) {
	hs := append([]wheelHandler(nil), h.handlers.wheel...)
	for _, wh := range hs {
		wh.fn(ev)
	}
}

// DispatchResize delivers vp to every resize subscriber.
func (h *InputHub) DispatchResize(vp ViewportSize) {
	hs := append([]resizeHandler(nil), h.handlers.resize...)
	for _, rh := range hs {
		rh.fn(vp)
	}
}

// PointerPosition returns the local position of the last dispatched pointer
// event.
func (h *InputHub) PointerPosition() Vec2 {
	return h.pointer
}
