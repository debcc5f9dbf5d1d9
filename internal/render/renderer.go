//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"octave-noise/internal/gradient"
	"octave-noise/internal/noise"
)

// GridPainter keeps one RGBA image with a pixel per grid cell and draws it
// scaled up to the cell size, so every cell lands as a filled square.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit colours field through g, uploads it and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, field *noise.Field, g *gradient.Gradient, cellSize int) {
	if field.W != gp.w || field.H != gp.h {
		return
	}
	fillGradientRGBA(gp.buf, field.Values(), g)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
