// Package gradient maps normalised noise amplitudes onto display colours.
//
// A Gradient partitions [0,1] into equal-width bands derived from its
// palette. In smooth mode a palette of N colours yields N-1 bands, each
// interpolating between two neighbouring colours; in discrete mode it yields
// N bands that return their colour as-is. Amplitudes that fall in no band
// (NaN or outside [0,1]) map to the configured error colour.
package gradient

import (
	"errors"
	"image/color"
)

// ErrTooFewColors is returned when a palette cannot form a single band.
var ErrTooFewColors = errors.New("gradient: at least two colors required")

// Band is one entry of the derived band table. Low and High index the
// palette colours the band spans; in discrete mode they are equal.
type Band struct {
	Lo, Hi    float64
	Low, High int

	// upperOpen excludes Hi so that a boundary value belongs to the band above.
	upperOpen bool
}

// Contains reports whether amplitude falls inside the band.
func (b Band) Contains(amplitude float64) bool {
	if amplitude < b.Lo {
		return false
	}
	if b.upperOpen {
		return amplitude < b.Hi
	}
	return amplitude <= b.Hi
}

// Gradient is immutable once constructed; derive variants with WithColor and
// WithSmooth.
type Gradient struct {
	colors   []color.RGBA
	smooth   bool
	errColor color.RGBA
	bands    []Band
}

// New builds a gradient over colors. The slice is copied.
func New(colors []color.RGBA, smooth bool, errColor color.RGBA) (*Gradient, error) {
	if len(colors) < 2 {
		return nil, ErrTooFewColors
	}
	g := &Gradient{
		colors:   append([]color.RGBA(nil), colors...),
		smooth:   smooth,
		errColor: errColor,
	}
	g.bands = buildBands(len(g.colors), smooth)
	return g, nil
}

func buildBands(n int, smooth bool) []Band {
	if smooth {
		count := n - 1
		bands := make([]Band, count)
		for k := range bands {
			bands[k] = Band{
				Lo:   float64(k) / float64(count),
				Hi:   float64(k+1) / float64(count),
				Low:  k,
				High: k + 1,
			}
		}
		bands[count-1].Hi = 1
		return bands
	}

	// Discrete bands are half-open so a shared edge such as 0.5 belongs to the
	// upper colour; only the last band is closed at 1.
	bands := make([]Band, n)
	for k := range bands {
		bands[k] = Band{
			Lo:        float64(k) / float64(n),
			Hi:        float64(k+1) / float64(n),
			Low:       k,
			High:      k,
			upperOpen: k < n-1,
		}
	}
	bands[n-1].Hi = 1
	return bands
}

// WithColor returns a new gradient with c appended to the palette. All bands
// are rebuilt for the larger palette; g itself is unchanged.
func (g *Gradient) WithColor(c color.RGBA) *Gradient {
	colors := make([]color.RGBA, 0, len(g.colors)+1)
	colors = append(colors, g.colors...)
	colors = append(colors, c)
	return &Gradient{
		colors:   colors,
		smooth:   g.smooth,
		errColor: g.errColor,
		bands:    buildBands(len(colors), g.smooth),
	}
}

// WithSmooth returns a gradient over the same palette in the requested mode.
func (g *Gradient) WithSmooth(smooth bool) *Gradient {
	if smooth == g.smooth {
		return g
	}
	return &Gradient{
		colors:   g.colors,
		smooth:   smooth,
		errColor: g.errColor,
		bands:    buildBands(len(g.colors), smooth),
	}
}

// Smooth reports whether bands interpolate between colours.
func (g *Gradient) Smooth() bool { return g.smooth }

// Colors returns a copy of the palette.
func (g *Gradient) Colors() []color.RGBA { return append([]color.RGBA(nil), g.colors...) }

// ErrorColor returns the sentinel colour used for lookup misses.
func (g *Gradient) ErrorColor() color.RGBA { return g.errColor }

// Bands returns a copy of the derived band table.
func (g *Gradient) Bands() []Band { return append([]Band(nil), g.bands...) }

// Band returns the index of the first band containing amplitude.
func (g *Gradient) Band(amplitude float64) (int, bool) {
	for i, b := range g.bands {
		if b.Contains(amplitude) {
			return i, true
		}
	}
	return -1, false
}

// ColorFor maps amplitude to a colour.
func (g *Gradient) ColorFor(amplitude float64) color.RGBA {
	idx, ok := g.Band(amplitude)
	if !ok {
		return g.errColor
	}
	b := g.bands[idx]
	if !g.smooth {
		return g.colors[b.Low]
	}

	// The blend weight is the raw amplitude rather than the position inside
	// the band, so only the first band spans its two colours end to end.
	// Probably unintended; existing palettes are tuned against it.
	low, high := g.colors[b.Low], g.colors[b.High]
	alpha := 1 - amplitude
	return color.RGBA{
		R: mixChannel(low.R, high.R, alpha, amplitude),
		G: mixChannel(low.G, high.G, alpha, amplitude),
		B: mixChannel(low.B, high.B, alpha, amplitude),
		A: 255,
	}
}

func mixChannel(low, high uint8, alpha, amplitude float64) uint8 {
	return uint8(float64(low)*alpha + float64(high)*amplitude)
}

// Histogram counts how many values land in each band.
type Histogram struct {
	Counts []int
	Misses int
}

// Histogram bins values through the band table.
func (g *Gradient) Histogram(values []float64) Histogram {
	h := Histogram{Counts: make([]int, len(g.bands))}
	for _, v := range values {
		idx, ok := g.Band(v)
		if !ok {
			h.Misses++
			continue
		}
		h.Counts[idx]++
	}
	return h
}
