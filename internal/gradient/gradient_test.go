package gradient

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

var (
	black   = color.RGBA{A: 255}
	white   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red     = color.RGBA{R: 255, A: 255}
	blue    = color.RGBA{B: 255, A: 255}
	magenta = color.RGBA{R: 255, B: 255, A: 1}
)

func mustNew(t *testing.T, colors []color.RGBA, smooth bool) *Gradient {
	t.Helper()
	g, err := New(colors, smooth, magenta)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewRejectsShortPalette(t *testing.T) {
	for _, colors := range [][]color.RGBA{nil, {black}} {
		if _, err := New(colors, true, magenta); !errors.Is(err, ErrTooFewColors) {
			t.Fatalf("New(%d colors) error = %v, want ErrTooFewColors", len(colors), err)
		}
	}
}

func TestDiscreteEndpoints(t *testing.T) {
	palette := []color.RGBA{black, red, blue, white}
	g := mustNew(t, palette, false)
	if got := g.ColorFor(0); got != black {
		t.Fatalf("ColorFor(0) = %v, want first colour", got)
	}
	if got := g.ColorFor(1); got != white {
		t.Fatalf("ColorFor(1) = %v, want last colour", got)
	}
	if n := len(g.Bands()); n != len(palette) {
		t.Fatalf("discrete gradient has %d bands, want %d", n, len(palette))
	}
}

func TestDiscreteCoversUnitInterval(t *testing.T) {
	for n := 2; n <= 9; n++ {
		palette := make([]color.RGBA, n)
		for i := range palette {
			palette[i] = color.RGBA{R: uint8(i * 20), A: 255}
		}
		g := mustNew(t, palette, false)

		samples := []float64{0, 1}
		for k := 0; k <= n; k++ {
			samples = append(samples, float64(k)/float64(n))
		}
		for i := 0; i <= 1000; i++ {
			samples = append(samples, float64(i)/1000)
		}
		for _, a := range samples {
			hits := 0
			for _, b := range g.Bands() {
				if b.Contains(a) {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("n=%d amplitude %v matched %d bands, want exactly 1", n, a, hits)
			}
			if g.ColorFor(a) == magenta {
				t.Fatalf("n=%d amplitude %v returned the error colour", n, a)
			}
		}
	}
}

func TestDiscreteBoundaryGoesToUpperBand(t *testing.T) {
	g := mustNew(t, []color.RGBA{black, white}, false)
	cases := []struct {
		a    float64
		want color.RGBA
	}{
		{0.0, black},
		{0.25, black},
		{0.4999, black},
		{0.5, white},
		{0.75, white},
		{1.0, white},
	}
	for _, tc := range cases {
		if got := g.ColorFor(tc.a); got != tc.want {
			t.Errorf("ColorFor(%v) = %v, want %v", tc.a, got, tc.want)
		}
	}
}

func TestSmoothUsesRawAmplitude(t *testing.T) {
	palette := []color.RGBA{black, red, blue, white}
	g := mustNew(t, palette, true)
	if n := len(g.Bands()); n != len(palette)-1 {
		t.Fatalf("smooth gradient has %d bands, want %d", n, len(palette)-1)
	}

	if got := g.ColorFor(0); got != black {
		t.Fatalf("ColorFor(0) = %v, want %v", got, black)
	}

	// Lower boundary of the second band is shared with the first, and the
	// first band wins the tie. Its blend weight is the amplitude itself.
	third := 1.0 / 3
	idx, ok := g.Band(third)
	if !ok || idx != 0 {
		t.Fatalf("Band(1/3) = %d,%v, want 0,true", idx, ok)
	}
	want := color.RGBA{R: uint8(255 * third), A: 255}
	if got := g.ColorFor(third); got != want {
		t.Fatalf("ColorFor(1/3) = %v, want %v", got, want)
	}

	// Inside the second band the weight is still the raw amplitude (0.4), not
	// the in-band position (0.2).
	a := 0.4
	want = color.RGBA{R: uint8(255 * (1 - a)), B: uint8(255 * a), A: 255}
	if got := g.ColorFor(a); got != want {
		t.Fatalf("ColorFor(0.4) = %v, want %v", got, want)
	}

	if got := g.ColorFor(1); got != white {
		t.Fatalf("ColorFor(1) = %v, want %v", got, white)
	}
}

func TestSmoothSharedBoundaryPrefersFirstBand(t *testing.T) {
	g := mustNew(t, []color.RGBA{black, red, white}, true)
	a := 0.5
	idx, ok := g.Band(a)
	if !ok || idx != 0 {
		t.Fatalf("Band(0.5) = %d,%v, want 0,true", idx, ok)
	}
	want := color.RGBA{R: uint8(255 * a), A: 255}
	if got := g.ColorFor(a); got != want {
		t.Fatalf("ColorFor(0.5) = %v, want %v", got, want)
	}

	// Just above the boundary the second band blends red towards white by
	// the raw amplitude.
	a = 0.75
	want = color.RGBA{
		R: uint8(255*(1-a) + 255*a),
		G: uint8(255 * a),
		B: uint8(255 * a),
		A: 255,
	}
	if got := g.ColorFor(a); got != want {
		t.Fatalf("ColorFor(0.75) = %v, want %v", got, want)
	}
}

func TestLookupMissReturnsErrorColour(t *testing.T) {
	for _, smooth := range []bool{true, false} {
		g := mustNew(t, []color.RGBA{black, white}, smooth)
		for _, a := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
			if got := g.ColorFor(a); got != magenta {
				t.Fatalf("smooth=%v ColorFor(%v) = %v, want error colour", smooth, a, got)
			}
		}
	}
}

func TestWithColorRebuildsBands(t *testing.T) {
	g := mustNew(t, []color.RGBA{black, white}, false)
	before := g.Bands()

	g2 := g.WithColor(red)
	if len(g.Colors()) != 2 || len(g.Bands()) != 2 {
		t.Fatal("WithColor must not modify the receiver")
	}
	for i, b := range g.Bands() {
		if b != before[i] {
			t.Fatalf("band %d changed on the receiver", i)
		}
	}

	bands := g2.Bands()
	if len(bands) != 3 {
		t.Fatalf("got %d bands, want 3", len(bands))
	}
	if bands[0].Hi != 1.0/3 || bands[2].Hi != 1 {
		t.Fatalf("bands not rebuilt over three colours: %+v", bands)
	}
	if got := g2.ColorFor(1); got != red {
		t.Fatalf("ColorFor(1) = %v, want appended colour", got)
	}
}

func TestWithSmoothKeepsPalette(t *testing.T) {
	g := mustNew(t, []color.RGBA{black, red, white}, true)
	d := g.WithSmooth(false)
	if d.Smooth() || len(d.Bands()) != 3 {
		t.Fatalf("discrete variant has smooth=%v bands=%d", d.Smooth(), len(d.Bands()))
	}
	if !g.Smooth() || len(g.Bands()) != 2 {
		t.Fatal("WithSmooth must not modify the receiver")
	}
	if g.WithSmooth(true) != g {
		t.Fatal("WithSmooth with the current mode should return the receiver")
	}
}

func TestHistogram(t *testing.T) {
	g := mustNew(t, []color.RGBA{black, white}, false)
	h := g.Histogram([]float64{0, 0.1, 0.5, 0.9, 1, 2})
	if h.Counts[0] != 2 || h.Counts[1] != 3 || h.Misses != 1 {
		t.Fatalf("unexpected histogram %+v", h)
	}
}
