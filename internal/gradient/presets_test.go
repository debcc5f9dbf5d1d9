package gradient

import (
	"image/color"
	"slices"
	"testing"
)

func TestBuiltinPresets(t *testing.T) {
	names := Presets()
	for _, want := range []string{"grayscale", "heat", "terrain"} {
		if !slices.Contains(names, want) {
			t.Fatalf("preset %q missing from %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Presets() not sorted: %v", names)
	}

	terrain, ok := Preset("terrain")
	if !ok || len(terrain) != 4 {
		t.Fatalf("terrain preset = %v, %v", terrain, ok)
	}
	terrain[0] = color.RGBA{}
	again, _ := Preset("terrain")
	if again[0] != (color.RGBA{B: 255, A: 255}) {
		t.Fatal("Preset must return a copy")
	}

	if _, ok := Preset("missing"); ok {
		t.Fatal("unknown preset should not resolve")
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#0000ff", color.RGBA{B: 255, A: 255}, true},
		{"#FFff00", color.RGBA{R: 255, G: 255, A: 255}, true},
		{"#ff00ff01", color.RGBA{R: 255, B: 255, A: 1}, true},
		{"0000ff", color.RGBA{}, false},
		{"#00ff", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseHex(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if tc.ok {
			if back, _ := ParseHex(Hex(got)); back != got {
				t.Fatalf("Hex round trip of %q gave %v", tc.in, back)
			}
		}
	}
}
