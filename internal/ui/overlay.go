//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the cell boundary lines and the hovered-cell highlight
// on top of the scaled canvas.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// DrawGridLines paints a one-pixel line at every cell boundary,
// including the outer edges.
func (o *Overlay) DrawGridLines(screen *ebiten.Image, size core.Size, scale int) {
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	w := float64(size.W * scale)
	h := float64(size.H * scale)
	for i := 0; i <= size.W; i++ {
		o.fillRect(screen, float64(i*scale), 0, 1, h, gridLineColor)
	}
	for j := 0; j <= size.H; j++ {
		o.fillRect(screen, 0, float64(j*scale), w, 1, gridLineColor)
	}
}

// DrawCursor highlights the hovered cell.
func (o *Overlay) DrawCursor(screen *ebiten.Image, cellX, cellY, scale int) {
	if scale <= 0 {
		scale = 1
	}
	s := float64(scale)
	o.fillRect(screen, float64(cellX)*s, float64(cellY)*s, s, s, cursorColor)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

var (
	gridLineColor = color.RGBA{R: 102, G: 102, B: 102, A: 255}
	cursorColor   = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)
