package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"octave-noise/internal/core"
	"octave-noise/internal/gradient"
	"octave-noise/internal/noise"
	pkgcore "octave-noise/pkg/core"
)

const (
	persistenceMin = 0.05
	persistenceMax = 0.95
)

// Options configures a Controller.
type Options struct {
	Params   noise.Params
	Gradient *gradient.Gradient
	// Seed for the first session; 0 derives one from the clock.
	Seed   int64
	Logger *slog.Logger
}

// Controller owns the viewer state: the current noise session, the active
// gradient and the seed the session was generated from. Both the session and
// the gradient are replaced wholesale, never edited in place. It has no
// rendering dependencies so the ebiten Game stays a thin shell around it.
type Controller struct {
	params  noise.Params
	grad    *gradient.Gradient
	session *noise.Session
	seed    int64
	seeds   *pkgcore.RNG
	log     *slog.Logger
}

// NewController validates opts and generates the first session.
func NewController(opts Options) (*Controller, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if opts.Gradient == nil {
		return nil, errors.New("app: controller needs a gradient")
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = newNopLogger()
	}
	c := &Controller{
		params: opts.Params,
		grad:   opts.Gradient,
		seeds:  pkgcore.NewRNG(seed),
		log:    logger,
	}
	c.Reset(seed)
	return c, nil
}

// Reset replaces the session with one generated from seed.
func (c *Controller) Reset(seed int64) {
	start := time.Now()
	c.seed = seed
	c.session = noise.Generate(c.params, pkgcore.NewRNG(seed))
	c.log.Info("session generated",
		slog.Int64("seed", seed),
		slog.Int("width", c.params.Width),
		slog.Int("height", c.params.Height),
		slog.Int("octaves", c.params.Octaves),
		slog.Float64("persistence", c.params.Persistence),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// Regenerate discards the session and builds a new one from a fresh seed.
func (c *Controller) Regenerate() { c.Reset(c.seeds.Int64()) }

// Replay rebuilds the session from the current seed.
func (c *Controller) Replay() { c.Reset(c.seed) }

// Next shows the following stage, wrapping to the base field.
func (c *Controller) Next() {
	c.session.Next()
	c.logStage()
}

// Prev shows the preceding stage, wrapping to the composite.
func (c *Controller) Prev() {
	c.session.Prev()
	c.logStage()
}

func (c *Controller) logStage() {
	c.log.Debug("stage selected",
		slog.Int("index", c.session.Selected()),
		slog.String("name", c.session.CurrentName()),
	)
}

// ToggleSmooth switches the gradient between smooth and discrete bands.
func (c *Controller) ToggleSmooth() {
	c.grad = c.grad.WithSmooth(!c.grad.Smooth())
	c.log.Debug("gradient mode", slog.Bool("smooth", c.grad.Smooth()))
}

// Session returns the current session.
func (c *Controller) Session() *noise.Session { return c.session }

// Gradient returns the active gradient.
func (c *Controller) Gradient() *gradient.Gradient { return c.grad }

// Seed returns the seed of the current session.
func (c *Controller) Seed() int64 { return c.seed }

// Current returns the field on display.
func (c *Controller) Current() *noise.Field { return c.session.Current() }

// Title returns the window caption for the stage on display.
func (c *Controller) Title() string { return c.session.CurrentName() }

// Name identifies the view for the HUD heading.
func (c *Controller) Name() string { return "noise" }

// Size returns the grid dimensions in cells.
func (c *Controller) Size() core.Size {
	return core.Size{W: c.params.Width, H: c.params.Height}
}

// Parameters reports the current generation settings.
func (c *Controller) Parameters() core.ParameterSnapshot {
	st := noise.Summarize(c.session.Current())
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.params.Width),
				core.IntParam("h", "Height", c.params.Height),
				core.Int64Param("seed", "Seed", c.seed),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				core.IntParam("octaves", "Octaves", c.params.Octaves),
				core.FloatParam("persistence", "Persistence", c.params.Persistence),
				core.BoolParam("smooth", "Smooth gradient", c.grad.Smooth()),
			},
		},
		{
			Name: "Stage",
			Params: []core.Parameter{
				core.IntParam("stage", "Stage", c.session.Selected()),
				core.FloatParam("min", "Min", st.Min),
				core.FloatParam("max", "Max", st.Max),
				core.FloatParam("mean", "Mean", st.Mean),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: noise.MaxOctaves, HasMin: true, HasMax: true},
		{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Step: 0.05, Min: persistenceMin, Max: persistenceMax, HasMin: true, HasMax: true},
	}
}

// SetIntParameter changes an integer setting and regenerates from the
// current seed so the effect is visible in isolation.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case "octaves":
		if value < 1 || value > noise.MaxOctaves {
			return false
		}
		c.params.Octaves = value
	default:
		return false
	}
	c.Replay()
	return true
}

// SetFloatParameter changes a floating point setting and regenerates from
// the current seed.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "persistence":
		if value < persistenceMin || value > persistenceMax {
			return false
		}
		c.params.Persistence = value
	default:
		return false
	}
	c.Replay()
	return true
}

// String describes the session on display for log lines and debugging.
func (c *Controller) String() string {
	p := c.session.Params()
	return fmt.Sprintf("%dx%d octaves=%d persistence=%g seed=%d stage=%q",
		p.Width, p.Height, p.Octaves, p.Persistence, c.seed, c.Title())
}
