package win

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshTicks = 15

// fpsOverlay displays the current FPS and TPS in the top-left corner. It is
// bound to the window canvas on the overlay layer, outside the node tree.
// The text is re-rendered every fpsRefreshTicks draws.
type fpsOverlay struct {
	img   *ebiten.Image
	ticks int
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{ticks: fpsRefreshTicks}
}

func (f *fpsOverlay) Draw(dst *ebiten.Image) {
	if f.img == nil {
		f.img = ebiten.NewImage(100, 32)
	}
	f.ticks++
	if f.ticks >= fpsRefreshTicks {
		f.ticks = 0
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	dst.DrawImage(f.img, nil)
}
