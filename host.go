package infinicanvas

import "sync"

// Attach connects e to a host: pointer events drive a PointerController,
// wheel events a ZoomController, resize events Engine.Resize, and frames
// drive the render loop.
//
// The returned detach function revokes every subscription and stops the
// render loop. It releases exactly once no matter how often it is called, so
// hosts can both defer it and call it from a shutdown hook.
func Attach(e *Engine, events EventSource, frames FrameSource) (detach func()) {
	pointer := NewPointerController(e)
	zoom := NewZoomController(e)

	handles := []CallbackHandle{
		events.OnPointer(pointer.HandlePointer),
		events.OnWheel(func(ev WheelEvent) { zoom.HandleWheel(ev) }),
		events.OnResize(e.Resize),
	}
	stop := StartRenderLoop(frames, e)
	Logger().Info("canvas attached", "subscriptions", len(handles))

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, h := range handles {
				h.Remove()
			}
			stop()
			Logger().Info("canvas detached")
		})
	}
}
