package noise

import "math"

// Stats summarises the value distribution of a field.
type Stats struct {
	Min, Max float64
	Mean     float64
	StdDev   float64
}

// Summarize computes min, max, mean and population standard deviation.
func Summarize(f *Field) Stats {
	vals := f.data
	st := Stats{Min: vals[0], Max: vals[0]}
	sum := 0.0
	for _, v := range vals {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
	}
	n := float64(len(vals))
	st.Mean = sum / n

	variance := 0.0
	for _, v := range vals {
		d := v - st.Mean
		variance += d * d
	}
	st.StdDev = math.Sqrt(variance / n)
	return st
}
