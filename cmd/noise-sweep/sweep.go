package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dgravesa/go-parallel/parallel"

	"octave-noise/internal/gradient"
	"octave-noise/internal/noise"
)

// floatList collects comma-separated values; repeating the flag appends.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("parse %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("parse %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

type candidate struct {
	octaves     int
	persistence float64
}

func (c candidate) String() string {
	return fmt.Sprintf("octaves=%d persistence=%.2f", c.octaves, c.persistence)
}

type candidateResult struct {
	params candidate
	stats  noise.Stats
	hist   gradient.Histogram
}

// candidates expands the cross product, dropping combinations the pipeline
// would reject.
func candidates(octaves []int, persistence []float64) []candidate {
	var out []candidate
	for _, o := range octaves {
		for _, p := range persistence {
			params := noise.Params{Width: 1, Height: 1, Octaves: o, Persistence: p}
			if params.Validate() != nil {
				continue
			}
			out = append(out, candidate{octaves: o, persistence: p})
		}
	}
	return out
}

// evaluate runs every candidate over the same base field. The base is only
// read, so candidates can run concurrently.
func evaluate(base *noise.Field, grad *gradient.Gradient, sets []candidate) []candidateResult {
	results := make([]candidateResult, len(sets))
	parallel.For(len(sets), func(i, _ int) {
		c := sets[i]
		session := noise.FromBase(noise.Params{Octaves: c.octaves, Persistence: c.persistence}, base)
		composite := session.Composite()
		results[i] = candidateResult{
			params: c,
			stats:  noise.Summarize(composite),
			hist:   grad.Histogram(composite.Values()),
		}
	})
	return results
}

// rankByContrast orders results by composite standard deviation, highest
// first. Ties keep candidate order.
func rankByContrast(results []candidateResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].stats.StdDev > results[j].stats.StdDev
	})
}

// describeGradient lists the palette and miss colour as hex.
func describeGradient(g *gradient.Gradient) string {
	colors := g.Colors()
	hex := make([]string, len(colors))
	for i, c := range colors {
		hex[i] = gradient.Hex(c)
	}
	mode := "discrete"
	if g.Smooth() {
		mode = "smooth"
	}
	return fmt.Sprintf("%s %s miss=%s", mode, strings.Join(hex, " "), gradient.Hex(g.ErrorColor()))
}

func formatHistogram(h gradient.Histogram, cells int) string {
	var b strings.Builder
	for i, n := range h.Counts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%.1f%%", i, percent(n, cells))
	}
	if h.Misses > 0 {
		fmt.Fprintf(&b, " miss:%d", h.Misses)
	}
	return b.String()
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
