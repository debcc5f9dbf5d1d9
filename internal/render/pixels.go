package render

import "octave-noise/internal/gradient"

// fillGradientRGBA converts noise values into RGBA pixels in buf, one pixel
// per cell, by looking each value up in the gradient. The grid is drawn
// opaque; a colour's alpha channel is ignored.
func fillGradientRGBA(buf []byte, values []float64, g *gradient.Gradient) {
	for i, v := range values {
		col := g.ColorFor(v)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = 0xff
	}
}

