package infinicanvas

// Layer is anything that can render itself for a camera and viewport. The
// engine draws its layers in insertion order, so later layers occlude
// earlier ones.
//
// The camera pointer is only valid for the duration of the call; layers must
// not retain it.
type Layer interface {
	Draw(dst Surface, cam *Camera, vp ViewportSize)
}

// LayerFunc adapts an ordinary function to the Layer interface.
type LayerFunc func(dst Surface, cam *Camera, vp ViewportSize)

// Draw calls f(dst, cam, vp).
func (f LayerFunc) Draw(dst Surface, cam *Camera, vp ViewportSize) {
	f(dst, cam, vp)
}
