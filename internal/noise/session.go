package noise

import (
	"fmt"

	"octave-noise/pkg/core"
)

// MaxOctaves bounds the octave count. The coarsest lattice period is
// 2^(MaxOctaves-1), far beyond any grid the viewer can show.
const MaxOctaves = 16

// Params describes one generation run.
type Params struct {
	Width       int
	Height      int
	Octaves     int
	Persistence float64
}

// Validate reports parameters the pipeline cannot run with.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("noise: grid %dx%d must be positive", p.Width, p.Height)
	}
	if p.Octaves < 1 || p.Octaves > MaxOctaves {
		return fmt.Errorf("noise: octaves %d must lie in [1,%d]", p.Octaves, MaxOctaves)
	}
	if !(p.Persistence > 0 && p.Persistence < 1) {
		return fmt.Errorf("noise: persistence %g must lie in (0,1)", p.Persistence)
	}
	return nil
}

// Session holds every stage of one generation run plus the stage currently
// selected for display. A new session starts on the composite.
type Session struct {
	params   Params
	base     *Field
	blended  *Field
	fields   []*Field
	selected int
}

// Generate runs the full pipeline: base field, one smoothed field per octave,
// then the persistence-weighted composite.
func Generate(p Params, rng *core.RNG) *Session {
	base := GenerateBase(rng, p.Width, p.Height)
	return FromBase(p, base)
}

// FromBase runs smoothing and blending over a caller-provided base field.
// p.Width and p.Height are taken from base.
func FromBase(p Params, base *Field) *Session {
	p.Width, p.Height = base.W, base.H
	octaves := SmoothOctaves(base, p.Octaves)
	blended := Blend(octaves, p.Persistence)

	fields := make([]*Field, 0, len(octaves)+2)
	fields = append(fields, base)
	fields = append(fields, octaves...)
	fields = append(fields, blended)

	return &Session{
		params:   p,
		base:     base,
		blended:  blended,
		fields:   fields,
		selected: len(fields) - 1,
	}
}

// Params returns the parameters the session was generated with.
func (s *Session) Params() Params { return s.params }

// Base returns the random base field.
func (s *Session) Base() *Field { return s.base }

// Composite returns the normalised blend of all octaves.
func (s *Session) Composite() *Field { return s.blended }

// Fields lists the displayable stages: base, each octave, composite.
func (s *Session) Fields() []*Field { return s.fields }

// Len returns the number of displayable stages.
func (s *Session) Len() int { return len(s.fields) }

// Selected returns the index of the stage on display.
func (s *Session) Selected() int { return s.selected }

// Current returns the stage on display.
func (s *Session) Current() *Field { return s.fields[s.selected] }

// Select moves the display to stage i, wrapping out-of-range indices.
func (s *Session) Select(i int) {
	n := len(s.fields)
	s.selected = (i%n + n) % n
}

// Next advances the display, wrapping from the last stage to the first.
func (s *Session) Next() { s.Select(s.selected + 1) }

// Prev steps the display back, wrapping from the first stage to the last.
func (s *Session) Prev() { s.Select(s.selected - 1) }

// StageName returns a caption for stage i.
func (s *Session) StageName(i int) string {
	switch {
	case i == 0:
		return "Base noise"
	case i == len(s.fields)-1:
		return "Perlin noise"
	default:
		return fmt.Sprintf("Smooth noise (octave %d)", i-1)
	}
}

// CurrentName returns the caption of the stage on display.
func (s *Session) CurrentName() string { return s.StageName(s.selected) }
