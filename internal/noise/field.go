package noise

import "fmt"

// Field stores a 2D grid of scalar noise values in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a zeroed field. Both dimensions must be positive.
func NewField(w, h int) *Field {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("noise: invalid field size %dx%d", w, h))
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// FieldFrom wraps existing row-major values. len(values) must equal w*h.
func FieldFrom(w, h int, values []float64) *Field {
	if w <= 0 || h <= 0 || len(values) != w*h {
		panic(fmt.Sprintf("noise: %d values do not describe a %dx%d field", len(values), w, h))
	}
	return &Field{W: w, H: h, data: values}
}

// Values exposes the backing slice so callers can read/write values directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for column x, row y.
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the value at column x, row y.
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at column x, row y.
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (f *Field) Wrap(x, y int) (int, int) {
	x = (x%f.W + f.W) % f.W
	y = (y%f.H + f.H) % f.H
	return x, y
}

// SameSize reports whether both fields share dimensions.
func (f *Field) SameSize(o *Field) bool { return f.W == o.W && f.H == o.H }
