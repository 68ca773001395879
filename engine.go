package infinicanvas

import (
	"errors"
	"time"

	"github.com/tanema/gween/ease"
)

// ErrNoSurface is returned by NewEngine when the host cannot provide a
// drawing surface.
var ErrNoSurface = errors.New("infinicanvas: no drawing surface")

// Option configures an Engine during creation.
type Option func(*engineOptions)

type engineOptions struct {
	minScale, maxScale float64
	gridSpacing        float64
	zoomIn, zoomOut    float64
	viewport           ViewportSize
	background         Color
	debug              bool
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		minScale:    DefaultMinScale,
		maxScale:    DefaultMaxScale,
		gridSpacing: DefaultGridSpacing,
		zoomIn:      DefaultZoomIn,
		zoomOut:     DefaultZoomOut,
		background:  ColorBackground,
	}
}

// WithScaleBounds sets the camera zoom limits.
func WithScaleBounds(minScale, maxScale float64) Option {
	return func(o *engineOptions) {
		o.minScale, o.maxScale = minScale, maxScale
	}
}

// WithGridSpacing sets the background grid spacing in world units.
func WithGridSpacing(spacing float64) Option {
	return func(o *engineOptions) {
		o.gridSpacing = spacing
	}
}

// WithZoomSteps sets the factors applied per wheel notch. Factors that do
// not actually zoom in (or out) are replaced with the defaults.
func WithZoomSteps(zoomIn, zoomOut float64) Option {
	return func(o *engineOptions) {
		o.zoomIn, o.zoomOut = zoomIn, zoomOut
	}
}

// WithViewport sets the initial viewport size. Hosts normally follow up with
// Resize whenever the surface changes size.
func WithViewport(vp ViewportSize) Option {
	return func(o *engineOptions) {
		o.viewport = vp
	}
}

// WithBackground sets the color painted behind every layer.
func WithBackground(c Color) Option {
	return func(o *engineOptions) {
		o.background = c
	}
}

// WithDebug enables per-frame statistics logging.
func WithDebug(enabled bool) Option {
	return func(o *engineOptions) {
		o.debug = enabled
	}
}

// Engine owns the camera, the viewport size, the ordered layer list and the
// dirty flag. Every state change marks the engine dirty; DrawFrame repaints
// everything only when it is.
//
// Engine is not safe for concurrent use. All calls belong on the host's
// event/render thread.
type Engine struct {
	surface    Surface
	camera     *Camera
	viewport   ViewportSize
	grid       *GridLayer
	nodes      *NodeLayer
	layers     []Layer
	background Color
	zoomIn     float64
	zoomOut    float64
	dirty      bool
	debug      bool
	frames     uint64
}

// NewEngine creates an engine drawing into dst with a grid layer followed by
// a node layer. A nil dst is a construction failure: the engine cannot exist
// without a surface.
func NewEngine(dst Surface, opts ...Option) (*Engine, error) {
	if dst == nil {
		return nil, ErrNoSurface
	}
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	grid := NewGridLayer()
	if o.gridSpacing > 0 {
		grid.Spacing = o.gridSpacing
	}
	nodes := NewNodeLayer()
	if !(o.zoomIn > 1) || !finite(o.zoomIn) {
		o.zoomIn = DefaultZoomIn
	}
	if !(o.zoomOut > 0 && o.zoomOut < 1) {
		o.zoomOut = DefaultZoomOut
	}

	return &Engine{
		surface:    dst,
		camera:     NewCamera(o.minScale, o.maxScale),
		viewport:   o.viewport,
		grid:       grid,
		nodes:      nodes,
		layers:     []Layer{grid, nodes},
		background: o.background,
		zoomIn:     o.zoomIn,
		zoomOut:    o.zoomOut,
		dirty:      true,
		debug:      o.debug,
	}, nil
}

// --- Viewport & camera ---

// Resize records a new viewport size and marks the engine dirty.
func (e *Engine) Resize(vp ViewportSize) {
	e.viewport = vp
	e.RequestDraw()
}

// Viewport returns the current viewport size.
func (e *Engine) Viewport() ViewportSize {
	return e.viewport
}

// ZoomSteps returns the per-notch wheel zoom factors.
func (e *Engine) ZoomSteps() (zoomIn, zoomOut float64) {
	return e.zoomIn, e.zoomOut
}

// Camera returns a snapshot of the camera. Mutating the copy does not affect
// the engine.
func (e *Engine) Camera() Camera {
	c := *e.camera
	c.anim = nil
	return c
}

// SetView places the camera directly. The scale is clamped to the camera
// bounds; a non-positive scale keeps the current one.
func (e *Engine) SetView(position Vec2, scale float64) {
	e.camera.StopAnimation()
	e.camera.Position = position
	e.camera.SetScale(scale)
	e.RequestDraw()
}

// PanByScreenDelta pans the camera by a screen-space displacement.
func (e *Engine) PanByScreenDelta(delta Vec2) {
	e.camera.StopAnimation()
	e.camera.PanByScreenDelta(delta)
	e.RequestDraw()
}

// ZoomAtScreenPoint zooms by factor keeping the world point under
// screenPoint fixed. Non-positive factors are ignored.
func (e *Engine) ZoomAtScreenPoint(screenPoint Vec2, factor float64) {
	e.camera.StopAnimation()
	if e.camera.ZoomAtScreenPoint(screenPoint, factor, e.viewport) {
		e.RequestDraw()
	}
}

// ScrollTo animates the camera to center on world over duration seconds.
func (e *Engine) ScrollTo(world Vec2, duration float32, easeFn ease.TweenFunc) {
	e.camera.ScrollTo(world, duration, easeFn)
	e.RequestDraw()
}

// ZoomTo animates the camera scale to scale over duration seconds.
func (e *Engine) ZoomTo(scale float64, duration float32, easeFn ease.TweenFunc) {
	e.camera.ZoomTo(scale, duration, easeFn)
	e.RequestDraw()
}

// ResetView animates the camera back to the origin at scale 1.
func (e *Engine) ResetView(duration float32) {
	e.camera.ScrollTo(Vec2{}, duration, ease.OutQuad)
	e.camera.ZoomTo(1, duration, ease.OutQuad)
	e.RequestDraw()
}

// FitNodes animates the camera so every node fits inside the viewport with
// padding screen units to spare on each side. No-op without nodes.
func (e *Engine) FitNodes(padding float64, duration float32) {
	b, ok := e.nodes.Bounds()
	if !ok || e.viewport.Empty() {
		return
	}
	scale := e.camera.MaxScale
	if w := e.viewport.Width - 2*padding; w > 0 && b.Width > 0 {
		scale = min(scale, w/b.Width)
	}
	if h := e.viewport.Height - 2*padding; h > 0 && b.Height > 0 {
		scale = min(scale, h/b.Height)
	}
	e.camera.ScrollTo(b.Center(), duration, ease.OutQuad)
	e.camera.ZoomTo(scale, duration, ease.OutQuad)
	e.RequestDraw()
}

// Update advances camera animations by dt seconds. Hosts call it once per
// tick before DrawFrame.
func (e *Engine) Update(dt float64) {
	if e.camera.update(float32(dt)) {
		e.RequestDraw()
	}
}

// --- Nodes ---

// SetNodes replaces every node.
func (e *Engine) SetNodes(nodes []Node) {
	e.nodes.SetNodes(nodes)
	e.RequestDraw()
}

// AddNode appends a node.
func (e *Engine) AddNode(n Node) {
	e.nodes.AddNode(n)
	e.RequestDraw()
}

// UpdateNode applies a partial update to the node with the given ID.
func (e *Engine) UpdateNode(id string, u NodeUpdate) {
	e.nodes.UpdateNode(id, u)
	e.RequestDraw()
}

// MoveNode moves a node by a world-space displacement.
func (e *Engine) MoveNode(id string, deltaWorld Vec2) {
	e.nodes.MoveNode(id, deltaWorld)
	e.RequestDraw()
}

// MoveNodeByScreenDelta moves a node by a screen-space displacement,
// converted to world space with the current scale.
func (e *Engine) MoveNodeByScreenDelta(id string, deltaScreen Vec2) {
	e.MoveNode(id, deltaScreen.Scale(1/e.camera.Scale))
}

// ResizeNode replaces a node's world-space radius.
func (e *Engine) ResizeNode(id string, radius Vec2) {
	e.nodes.ResizeNode(id, radius)
	e.RequestDraw()
}

// SetNodeLabel replaces a node's label.
func (e *Engine) SetNodeLabel(id, label string) {
	e.nodes.SetLabel(id, label)
	e.RequestDraw()
}

// RemoveNode deletes a node.
func (e *Engine) RemoveNode(id string) {
	e.nodes.RemoveNode(id)
	e.RequestDraw()
}

// Nodes returns a copy of every node in storage order.
func (e *Engine) Nodes() []Node {
	return e.nodes.Nodes()
}

// Node returns the node with the given ID.
func (e *Engine) Node(id string) (Node, bool) {
	return e.nodes.Node(id)
}

// HitTestNodeAtScreenPoint returns the first node containing screenPoint.
// It is a pure query and does not mark the engine dirty.
func (e *Engine) HitTestNodeAtScreenPoint(screenPoint Vec2) (Node, bool) {
	return e.nodes.HitTest(screenPoint, e.camera, e.viewport)
}

// SelectNode selects the node with the given ID; "" clears the selection.
func (e *Engine) SelectNode(id string) {
	e.nodes.SetSelected(id)
	e.RequestDraw()
}

// HoverNode marks the node with the given ID as hovered; "" clears it.
func (e *Engine) HoverNode(id string) {
	e.nodes.SetHovered(id)
	e.RequestDraw()
}

// SelectedNode returns the selected node, if any.
func (e *Engine) SelectedNode() (Node, bool) {
	return e.nodes.SelectedNode()
}

// HoveredNode returns the hovered node, if any.
func (e *Engine) HoveredNode() (Node, bool) {
	return e.nodes.HoveredNode()
}

// NodeLayer returns the built-in node layer for style customization.
func (e *Engine) NodeLayer() *NodeLayer {
	return e.nodes
}

// GridLayer returns the built-in grid layer for style customization.
func (e *Engine) GridLayer() *GridLayer {
	return e.grid
}

// AddLayer appends a layer drawn after every existing layer.
func (e *Engine) AddLayer(l Layer) {
	e.layers = append(e.layers, l)
	e.RequestDraw()
}

// --- Drawing ---

// RequestDraw marks the rendered output stale.
func (e *Engine) RequestDraw() {
	e.dirty = true
}

// NeedsDraw reports whether the next DrawFrame will repaint.
func (e *Engine) NeedsDraw() bool {
	return e.dirty
}

// SetDebugMode enables or disables per-frame statistics logging.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// DrawFrame repaints the whole surface if the engine is dirty and returns
// whether it drew. A clean engine returns immediately without touching the
// surface. Otherwise the dirty flag is cleared, the surface is cleared and
// filled with the background, and every layer draws in order.
func (e *Engine) DrawFrame() bool {
	if !e.dirty {
		return false
	}
	e.dirty = false

	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	vp := e.viewport
	e.surface.Clear()
	e.surface.FillRect(0, 0, vp.Width, vp.Height, e.background)
	for _, l := range e.layers {
		l.Draw(e.surface, e.camera, vp)
	}
	e.frames++

	if e.debug {
		e.logFrame(frameStats{
			frame:    e.frames,
			duration: time.Since(t0),
			layers:   len(e.layers),
			nodes:    e.nodes.Len(),
			scale:    e.camera.Scale,
		})
	}
	return true
}

// Frames returns how many frames have been drawn.
func (e *Engine) Frames() uint64 {
	return e.frames
}
