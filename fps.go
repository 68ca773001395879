package infinicanvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays the current FPS and TPS, refreshed every ~0.5 seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
	stale      bool
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{img: ebiten.NewImage(100, 32), stale: true}
}

// fpsRefreshInterval is how often the readout is redrawn, in seconds.
const fpsRefreshInterval = 0.5

func (w *fpsWidget) update(dt float64) {
	if !w.tick(dt) {
		return
	}
	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// tick accumulates dt and reports whether the readout is due for a redraw.
func (w *fpsWidget) tick(dt float64) bool {
	w.lastUpdate += dt
	if w.lastUpdate < fpsRefreshInterval && !w.stale {
		return false
	}
	w.lastUpdate = 0
	w.stale = false
	return true
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}
