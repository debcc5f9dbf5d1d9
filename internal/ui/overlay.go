//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"octave-noise/internal/gradient"
	"octave-noise/internal/noise"
)

// LegendSource is what the overlay reads from the viewer state.
type LegendSource interface {
	Gradient() *gradient.Gradient
	Current() *noise.Field
	Title() string
	Seed() int64
}

// Overlay draws the gradient legend and a caption line over the grid.
type Overlay struct {
	src        LegendSource
	showLegend bool

	statsFor *noise.Field
	stats    noise.Stats
}

// NewOverlay constructs an overlay; the legend starts visible.
func NewOverlay(src LegendSource) *Overlay {
	return &Overlay{src: src, showLegend: true}
}

// Update toggles the legend on L.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showLegend = !o.showLegend
	}
}

// Draw renders the overlay into the top-left w*h region of screen.
func (o *Overlay) Draw(screen *ebiten.Image, w, h int) {
	if !o.showLegend || w <= 0 || h <= 0 {
		return
	}

	field := o.src.Current()
	if field != o.statsFor {
		o.stats = noise.Summarize(field)
		o.statsFor = field
	}
	caption := fmt.Sprintf("%s  seed %d  min %.3f  max %.3f  mean %.3f",
		o.src.Title(), o.src.Seed(), o.stats.Min, o.stats.Max, o.stats.Mean)
	ebitenutil.DebugPrintAt(screen, caption, legendMargin, legendMargin)

	o.drawLegend(screen, w, h)
}

func (o *Overlay) drawLegend(screen *ebiten.Image, w, h int) {
	const (
		samples = 128
		height  = 14
		tick    = 4
	)
	g := o.src.Gradient()
	width := float32(w - 2*legendMargin)
	if width <= 0 {
		return
	}
	x0 := float32(legendMargin)
	y0 := float32(h - legendMargin - height)

	vector.DrawFilledRect(screen, x0-1, y0-1, width+2, height+2, color.Black, false)
	step := width / samples
	for i := 0; i < samples; i++ {
		a := (float64(i) + 0.5) / samples
		vector.DrawFilledRect(screen, x0+float32(i)*step, y0, step+0.5, height, g.ColorFor(a), false)
	}
	for _, b := range g.Bands()[1:] {
		x := x0 + float32(b.Lo)*width
		vector.DrawFilledRect(screen, x, y0-tick, 1, tick, color.White, false)
	}

	mode := "discrete"
	if g.Smooth() {
		mode = "smooth"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s, %d bands", mode, len(g.Bands())), legendMargin, int(y0)-tick-16)
}

const legendMargin = 8
