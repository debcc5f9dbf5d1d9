package gradient

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
)

var presets = map[string][]color.RGBA{}

// Register adds a named palette. Later registrations replace earlier ones.
func Register(name string, colors []color.RGBA) {
	if name == "" || len(colors) == 0 {
		return
	}
	presets[name] = append([]color.RGBA(nil), colors...)
}

// Preset returns a copy of the named palette.
func Preset(name string) ([]color.RGBA, bool) {
	colors, ok := presets[name]
	if !ok {
		return nil, false
	}
	return append([]color.RGBA(nil), colors...), true
}

// Presets lists registered palette names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHex decodes "#rrggbb" (opaque) or "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("gradient: %q is not a #rrggbb or #rrggbbaa colour", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("gradient: parse %q: %w", s, err)
	}
	if len(s) == 7 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func init() {
	Register("terrain", []color.RGBA{
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	})
	Register("grayscale", []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	})
	Register("heat", []color.RGBA{
		{R: 139, G: 0, B: 0, A: 255},
		{R: 255, G: 69, B: 0, A: 255},
		{R: 255, G: 215, B: 0, A: 255},
		{R: 255, G: 255, B: 224, A: 255},
	})
}
