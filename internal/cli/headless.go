package cli

import (
	"github.com/phanxgames/infinicanvas"
	"github.com/phanxgames/infinicanvas/internal/board"
	"github.com/phanxgames/infinicanvas/internal/config"
	"github.com/phanxgames/infinicanvas/raster"
)

// newHeadless creates a CPU surface of the given size and an engine drawing
// into it, seeded with b.
func newHeadless(cfg *config.Config, b *board.Board, width, height int) (*raster.Surface, *infinicanvas.Engine, error) {
	s, err := raster.New(width, height)
	if err != nil {
		return nil, nil, err
	}
	opts := append(cfg.EngineOptions(), infinicanvas.WithViewport(s.Viewport()))
	e, err := infinicanvas.NewEngine(s, opts...)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	b.Apply(e)
	return s, e, nil
}
