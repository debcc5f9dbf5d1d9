package noise

import "octave-noise/pkg/core"

// GenerateBase returns a w*h field of independent uniform draws in [0, 1).
func GenerateBase(rng *core.RNG, w, h int) *Field {
	f := NewField(w, h)
	core.FillUniform(rng.Source(), f.data)
	return f
}
