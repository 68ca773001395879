package infinicanvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the initial window size. Zero means 800x600.
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Resizable lets the user resize the window; the canvas follows.
	Resizable bool
	// Options are applied when the engine is created.
	Options []Option
	// Setup runs once after the engine is created, before the window opens.
	Setup func(e *Engine) error
	// Script, when set, drives synthetic input once per frame.
	Script *ScriptRunner
}

// Game is an ebiten.Game hosting one canvas. It renders the engine into an
// offscreen image sized to the window, translates mouse and wheel input into
// InputHub events and copies the canvas to the screen every frame.
//
// Use Run for a one-call setup, or embed Game in your own ebiten.Game.
type Game struct {
	engine  *Engine
	surface *ImageSurface
	hub     *InputHub
	frames  *FrameQueue
	detach  func()
	script  *ScriptRunner
	fps     *fpsWidget

	width, height int
	inside        bool
	last          Vec2
}

// NewGame creates an engine drawing into an offscreen image and attaches it
// to a fresh InputHub and FrameQueue.
func NewGame(opts ...Option) (*Game, error) {
	surface := NewImageSurface(nil)
	e, err := NewEngine(surface, opts...)
	if err != nil {
		return nil, err
	}
	g := &Game{
		engine:  e,
		surface: surface,
		hub:     NewInputHub(),
		frames:  NewFrameQueue(),
	}
	g.detach = Attach(e, g.hub, g.frames)
	return g, nil
}

// Engine returns the hosted engine.
func (g *Game) Engine() *Engine { return g.engine }

// Hub returns the input hub the engine is attached to.
func (g *Game) Hub() *InputHub { return g.hub }

// Close detaches the engine from its input and frame sources.
func (g *Game) Close() {
	g.detach()
}

// Update polls input and advances camera animations. Implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil {
		if err := g.script.Step(g.hub, nil); err != nil {
			return err
		}
	}
	if !g.hub.PollInjected() {
		g.pollMouse()
	}
	dt := 1.0 / 60
	if tps := ebiten.TPS(); tps > 0 {
		dt = 1 / float64(tps)
	}
	g.engine.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// pollMouse converts Ebitengine's polled mouse state into pointer and wheel
// events. Ebitengine reports cursor positions relative to the window, so
// local and client coordinates coincide.
func (g *Game) pollMouse() {
	mx, my := ebiten.CursorPosition()
	pt := Vec2{float64(mx), float64(my)}
	inside := mx >= 0 && my >= 0 && mx < g.width && my < g.height

	if g.inside && !inside {
		g.hub.DispatchPointer(PointerEvent{Kind: PointerLeave, Local: pt, Client: pt})
	}
	g.inside = inside
	if !inside {
		return
	}

	for _, b := range [...]struct {
		eb  ebiten.MouseButton
		btn MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.hub.DispatchPointer(PointerEvent{Kind: PointerDown, Button: b.btn, Local: pt, Client: pt})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.hub.DispatchPointer(PointerEvent{Kind: PointerUp, Button: b.btn, Local: pt, Client: pt})
		}
	}
	if pt != g.last {
		g.hub.DispatchPointer(PointerEvent{Kind: PointerMove, Local: pt, Client: pt})
		g.last = pt
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		// Ebitengine reports scroll-up as positive; canvas wheel deltas
		// follow the DOM convention where scroll-up is negative.
		g.hub.DispatchWheel(WheelEvent{Point: pt, DeltaY: -dy})
	}
}

// Draw ticks the render loop and copies the canvas to screen. Implements
// ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frames.Tick()
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout resizes the offscreen canvas to the window. Implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if old := g.surface.Image(); old != nil {
			old.Deallocate()
		}
		g.surface.SetImage(ebiten.NewImage(outsideWidth, outsideHeight))
		g.hub.DispatchResize(ViewportSize{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// Run is a convenience entry point that creates a window and runs a canvas
// game loop. For full control, use NewGame and ebiten.RunGame directly.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "infinicanvas"
	}

	g, err := NewGame(cfg.Options...)
	if err != nil {
		return err
	}
	defer g.Close()

	if cfg.Setup != nil {
		if err := cfg.Setup(g.engine); err != nil {
			return fmt.Errorf("infinicanvas: setup: %w", err)
		}
	}
	g.script = cfg.Script
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	Logger().Info("window opening", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return ebiten.RunGame(g)
}
