package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"octave-noise/internal/gradient"
	"octave-noise/internal/noise"
	"octave-noise/pkg/core"
)

func main() {
	width := flag.Int("width", 220, "grid width for each candidate")
	height := flag.Int("height", 220, "grid height for each candidate")
	seed := flag.Int64("seed", 1337, "seed for the shared base field")
	palette := flag.String("palette", "terrain", "gradient preset used for band histograms")
	smooth := flag.Bool("smooth", false, "bin with the smooth band table")
	top := flag.Int("top", 5, "number of ranked results to print")
	var octaves intList
	var persistence floatList
	flag.Var(&octaves, "octaves", "octave counts to sweep (comma-separated, repeatable)")
	flag.Var(&persistence, "persistence", "persistence values to sweep (comma-separated, repeatable)")
	flag.Parse()

	if len(octaves) == 0 {
		octaves = intList{1, 2, 3, 4, 5, 6}
	}
	if len(persistence) == 0 {
		persistence = floatList{0.3, 0.4, 0.5, 0.6, 0.7}
	}
	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(os.Stderr, "grid %dx%d must be positive\n", *width, *height)
		os.Exit(2)
	}

	colors, ok := gradient.Preset(*palette)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown palette %q (have %v)\n", *palette, gradient.Presets())
		os.Exit(2)
	}
	grad, err := gradient.New(colors, *smooth, color.RGBA{R: 255, B: 255, A: 255})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sets := candidates(octaves, persistence)
	if len(sets) == 0 {
		fmt.Fprintln(os.Stderr, "no valid octave/persistence combinations")
		os.Exit(2)
	}

	fmt.Printf("Sweeping %d parameter sets on a %dx%d grid (seed %d, palette %s: %s)\n",
		len(sets), *width, *height, *seed, *palette, describeGradient(grad))

	start := time.Now()
	base := noise.GenerateBase(core.NewRNG(*seed), *width, *height)
	results := evaluate(base, grad, sets)
	rankByContrast(results)
	elapsed := time.Since(start)

	cells := *width * *height
	fmt.Printf("\nTop %d results by contrast (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) stddev=%.4f mean=%.4f range[%.4f,%.4f] bands[%s] params=%s\n",
			i+1, res.stats.StdDev, res.stats.Mean, res.stats.Min, res.stats.Max,
			formatHistogram(res.hist, cells), res.params)
	}

	flattest := results[len(results)-1]
	fmt.Printf("\nFlattest: stddev=%.4f range[%.4f,%.4f] params=%s\n",
		flattest.stats.StdDev, flattest.stats.Min, flattest.stats.Max, flattest.params)
}
