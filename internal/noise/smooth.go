package noise

import "fmt"

// SmoothOctave resamples base on a 2^octave lattice and bilinearly
// interpolates between lattice points. Sampling wraps toroidally, so the last
// lattice cell of a row blends back towards column 0 (and likewise for rows).
// When the period reaches the grid size every cell shares the same corners and
// the octave flattens out.
func SmoothOctave(base *Field, octave int) *Field {
	if octave < 0 || octave >= MaxOctaves {
		panic(fmt.Sprintf("noise: octave %d outside [0,%d)", octave, MaxOctaves))
	}
	w, h := base.W, base.H
	period := 1 << octave
	frequency := 1.0 / float64(period)
	out := NewField(w, h)

	for i := 0; i < h; i++ {
		i0 := (i / period) * period
		vBlend := float64(i-i0) * frequency

		for j := 0; j < w; j++ {
			j0 := (j / period) * period
			j1, i1 := base.Wrap(j0+period, i0+period)
			hBlend := float64(j-j0) * frequency

			top := lerp(base.At(j0, i0), base.At(j1, i0), hBlend)
			bottom := lerp(base.At(j0, i1), base.At(j1, i1), hBlend)
			out.data[out.Index(j, i)] = lerp(top, bottom, vBlend)
		}
	}
	return out
}

// SmoothOctaves smooths base at every octave in [0, octaves), finest first.
func SmoothOctaves(base *Field, octaves int) []*Field {
	fields := make([]*Field, octaves)
	for o := range fields {
		fields[o] = SmoothOctave(base, o)
	}
	return fields
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
