package infinicanvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default zoom bounds.
const (
	DefaultMinScale = 0.25
	DefaultMaxScale = 4.0
)

// cameraAnim holds the active tweens for an animated camera move. A nil tween
// means that axis is not animating.
type cameraAnim struct {
	tweenX     *gween.Tween
	tweenY     *gween.Tween
	tweenScale *gween.Tween

	// Exact end values; tweens run in float32.
	target      Vec2
	targetScale float64
}

func (a *cameraAnim) done() bool {
	return a.tweenX == nil && a.tweenY == nil && a.tweenScale == nil
}

// Camera defines the current world-to-screen mapping.
type Camera struct {
	// Position is the world-space point mapped to the viewport center.
	Position Vec2
	// Scale is the world-to-screen magnification (1 = no zoom, >1 = zoom in).
	Scale float64
	// MinScale and MaxScale bound Scale on every mutation made through the
	// camera's methods.
	MinScale, MaxScale float64

	anim *cameraAnim
}

// NewCamera creates a camera at the world origin with scale 1. Bounds that are
// non-positive or inverted fall back to the defaults.
func NewCamera(minScale, maxScale float64) *Camera {
	if minScale <= 0 || maxScale <= 0 || minScale > maxScale {
		minScale, maxScale = DefaultMinScale, DefaultMaxScale
	}
	return &Camera{
		Scale:    1,
		MinScale: minScale,
		MaxScale: maxScale,
	}
}

// WorldToScreen converts a world point to screen space with this camera.
func (c *Camera) WorldToScreen(world Vec2, vp ViewportSize) Vec2 {
	return WorldToScreen(world, vp, c.Position, c.Scale)
}

// ScreenToWorld converts a screen point to world space with this camera.
func (c *Camera) ScreenToWorld(screen Vec2, vp ViewportSize) Vec2 {
	return ScreenToWorld(screen, vp, c.Position, c.Scale)
}

// PanByScreenDelta moves the camera by a screen-space displacement. Dragging
// the view right moves the camera's world focus left.
func (c *Camera) PanByScreenDelta(delta Vec2) {
	c.Position = c.Position.Sub(delta.Scale(1 / c.Scale))
}

// ZoomAtScreenPoint multiplies the scale by factor while keeping the world
// point under screenPoint fixed on screen. The new scale is clamped to
// [MinScale, MaxScale] before the anchor correction, so the anchor holds even
// when the clamp engages. Non-positive or non-finite factors are ignored.
// Reports whether the camera changed.
func (c *Camera) ZoomAtScreenPoint(screenPoint Vec2, factor float64, vp ViewportSize) bool {
	if !(factor > 0) || !finite(factor) {
		return false
	}
	before := c.ScreenToWorld(screenPoint, vp)
	c.Scale = clamp(c.Scale*factor, c.MinScale, c.MaxScale)
	after := c.ScreenToWorld(screenPoint, vp)
	c.Position = c.Position.Add(before.Sub(after))
	return true
}

// SetScale sets the scale around the viewport center, clamped to bounds.
func (c *Camera) SetScale(scale float64) {
	if !(scale > 0) || !finite(scale) {
		return
	}
	c.Scale = clamp(scale, c.MinScale, c.MaxScale)
}

// VisibleBounds returns the axis-aligned world rectangle visible in vp.
func (c *Camera) VisibleBounds(vp ViewportSize) Rect {
	tl := c.ScreenToWorld(Vec2{}, vp)
	br := c.ScreenToWorld(Vec2{vp.Width, vp.Height}, vp)
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// ScrollTo animates the camera position to target over duration seconds.
// A non-positive duration moves immediately.
func (c *Camera) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.Position = target
		c.clearPositionAnim()
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	a := c.ensureAnim()
	a.target = target
	a.tweenX = gween.New(float32(c.Position.X), float32(target.X), duration, easeFn)
	a.tweenY = gween.New(float32(c.Position.Y), float32(target.Y), duration, easeFn)
}

// ZoomTo animates the scale to target (clamped) around the viewport center.
func (c *Camera) ZoomTo(target float64, duration float32, easeFn ease.TweenFunc) {
	if !(target > 0) || !finite(target) {
		return
	}
	target = clamp(target, c.MinScale, c.MaxScale)
	if duration <= 0 {
		c.Scale = target
		if c.anim != nil {
			c.anim.tweenScale = nil
			if c.anim.done() {
				c.anim = nil
			}
		}
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	a := c.ensureAnim()
	a.targetScale = target
	a.tweenScale = gween.New(float32(c.Scale), float32(target), duration, easeFn)
}

// Animating reports whether a ScrollTo or ZoomTo is in progress.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// StopAnimation cancels any in-progress ScrollTo or ZoomTo, leaving the
// camera where it currently is.
func (c *Camera) StopAnimation() {
	c.anim = nil
}

func (c *Camera) ensureAnim() *cameraAnim {
	if c.anim == nil {
		c.anim = &cameraAnim{}
	}
	return c.anim
}

func (c *Camera) clearPositionAnim() {
	if c.anim == nil {
		return
	}
	c.anim.tweenX, c.anim.tweenY = nil, nil
	if c.anim.done() {
		c.anim = nil
	}
}

// update advances active tweens by dt seconds. Reports whether the camera
// moved.
func (c *Camera) update(dt float32) bool {
	if c.anim == nil {
		return false
	}
	prevPos, prevScale := c.Position, c.Scale
	a := c.anim
	if a.tweenX != nil {
		val, done := a.tweenX.Update(dt)
		c.Position.X = float64(val)
		if done {
			c.Position.X = a.target.X
			a.tweenX = nil
		}
	}
	if a.tweenY != nil {
		val, done := a.tweenY.Update(dt)
		c.Position.Y = float64(val)
		if done {
			c.Position.Y = a.target.Y
			a.tweenY = nil
		}
	}
	if a.tweenScale != nil {
		val, done := a.tweenScale.Update(dt)
		c.Scale = clamp(float64(val), c.MinScale, c.MaxScale)
		if done {
			c.Scale = a.targetScale
			a.tweenScale = nil
		}
	}
	if a.done() {
		c.anim = nil
	}
	return c.Position != prevPos || c.Scale != prevScale
}
