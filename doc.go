// Package infinicanvas is an infinite, pannable and zoomable node canvas for
// [Ebitengine].
//
// An [Engine] owns a camera, a viewport and an ordered list of layers: a
// background [GridLayer] that stays aligned to world coordinates at every
// zoom level, and a [NodeLayer] of labeled ellipses with selected and hovered
// state. Drawing is gated by a dirty flag, so an idle canvas costs nothing
// per frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	infinicanvas.Run(infinicanvas.RunConfig{
//		Title: "Board", Width: 1024, Height: 768,
//		Setup: func(e *infinicanvas.Engine) error {
//			e.AddNode(infinicanvas.Node{ID: "root", Radius: infinicanvas.Vec2{X: 120, Y: 60}, Label: "Main node"})
//			return nil
//		},
//	})
//
// For full control, embed [Game] in your own [ebiten.Game], or drive an
// engine from any host with [Attach]:
//
//	e, _ := infinicanvas.NewEngine(surface, infinicanvas.WithViewport(vp))
//	hub := infinicanvas.NewInputHub()
//	frames := infinicanvas.NewFrameQueue()
//	detach := infinicanvas.Attach(e, hub, frames)
//	defer detach()
//
//	// per tick:
//	hub.DispatchPointer(ev)
//	e.Update(dt)
//	frames.Tick()
//
// # Coordinates
//
// World points map to screen points as screen = (world - Camera.Position) *
// Camera.Scale + viewport/2. [Camera.WorldToScreen] and
// [Camera.ScreenToWorld] are exact inverses, and
// [Engine.ZoomAtScreenPoint] keeps the world point under the cursor fixed.
//
// # Input
//
// Pointer handling is a pure reducer, [ReducePointer], that turns
// [PointerEvent] values into [Effect] values: drag empty space to pan, drag a
// node to move it, and a pointer-down on a node selects it. [PointerController]
// applies the effects to an engine. Wheel zoom lives in [ZoomController].
//
// # Headless rendering
//
// Any [Surface] can back an engine. The raster subpackage renders to a CPU
// image with [gg] for snapshots and tests, and [LoadScript] replays JSON
// input scripts frame by frame.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package infinicanvas
