package render

import (
	"image/color"
	"testing"

	"octave-noise/internal/gradient"
)

func TestFillGradientRGBA(t *testing.T) {
	errColor := color.RGBA{R: 255, B: 255, A: 1}
	g, err := gradient.New([]color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}, false, errColor)
	if err != nil {
		t.Fatalf("gradient.New: %v", err)
	}
	values := []float64{0.1, 0.5, 0.99, 2}
	buf := make([]byte, 4*len(values))
	fillGradientRGBA(buf, values, g)

	want := []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
		255, 255, 255, 255,
		255, 0, 255, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (buf %v)", i, buf[i], want[i], buf)
		}
	}
}

