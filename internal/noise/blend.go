package noise

import "fmt"

// Blend combines per-octave fields into one composite. Octaves are visited
// from coarsest (last) to finest, each weighted by persistence raised to its
// distance from the top, and the sum is divided by the total weight.
//
// fields must be non-empty and share dimensions.
func Blend(fields []*Field, persistence float64) *Field {
	if len(fields) == 0 {
		panic("noise: blend of zero octaves")
	}
	first := fields[0]
	for o, f := range fields {
		if !f.SameSize(first) {
			panic(fmt.Sprintf("noise: octave %d is %dx%d, want %dx%d", o, f.W, f.H, first.W, first.H))
		}
	}

	out := NewField(first.W, first.H)
	amplitude := 1.0
	total := 0.0
	for o := len(fields) - 1; o >= 0; o-- {
		amplitude *= persistence
		total += amplitude
		for i, v := range fields[o].data {
			out.data[i] += v * amplitude
		}
	}

	for i := range out.data {
		out.data[i] /= total
	}
	return out
}
