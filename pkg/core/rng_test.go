package core

import (
	"slices"
	"testing"
)

func TestFillUniformDeterministic(t *testing.T) {
	a := make([]float64, 64)
	b := make([]float64, 64)
	FillUniform(NewRNG(7).Source(), a)
	FillUniform(NewRNG(7).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should produce the same draws")
	}
	for i, v := range a {
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d = %f outside [0,1)", i, v)
		}
	}

	FillUniform(NewRNG(8).Source(), b)
	if slices.Equal(a, b) {
		t.Fatal("different seeds should produce different draws")
	}
}
