// Package config holds the start-up options for the noise viewer. Values come
// from Default, optionally overlaid by a YAML file (Load) and then by
// explicitly set command-line flags (ApplyFlags). Everything is validated
// before the first field is generated.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"octave-noise/internal/gradient"
	"octave-noise/internal/noise"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the viewer options. All values are fixed for a session.
type Config struct {
	// Path is the YAML file the config was loaded from, if any.
	Path string `yaml:"-"`

	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`

	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Seed        int64   `yaml:"seed"` // 0 picks a time-based seed

	Palette    string   `yaml:"palette"`
	Colors     []string `yaml:"colors"` // overrides Palette when non-empty
	Smooth     bool     `yaml:"smooth"`
	ErrorColor string   `yaml:"error_color"`

	TPS      int    `yaml:"tps"`
	HUD      bool   `yaml:"hud"`
	HUDWidth int    `yaml:"hud_width"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config populated with sensible defaults: a 220x220 grid
// of 4px cells, four octaves at persistence 0.5 over the terrain palette.
func Default() *Config {
	return &Config{
		Width:       880,
		Height:      880,
		CellSize:    4,
		Octaves:     4,
		Persistence: 0.5,
		Palette:     "terrain",
		Smooth:      true,
		ErrorColor:  "#ff00ff",
		TPS:         60,
		HUDWidth:    240,
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults. The result is not validated so
// that command-line flags applied afterwards can still correct it; call
// Validate once every source has been merged.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Decode reads YAML over the defaults without validating. Unknown keys are
// rejected.
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects options the pipeline or viewer cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d must be positive", ErrInvalid, c.CellSize)
	}
	if w, h := c.GridSize(); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: cell_size %d leaves an empty %dx%d grid", ErrInvalid, c.CellSize, w, h)
	}
	if c.Octaves < 1 || c.Octaves > noise.MaxOctaves {
		return fmt.Errorf("%w: octaves must lie in [1,%d], got %d", ErrInvalid, noise.MaxOctaves, c.Octaves)
	}
	if !(c.Persistence > 0 && c.Persistence < 1) {
		return fmt.Errorf("%w: persistence must lie in (0,1), got %g", ErrInvalid, c.Persistence)
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	if _, err := gradient.ParseHex(c.ErrorColor); err != nil {
		return fmt.Errorf("%w: error_color: %v", ErrInvalid, err)
	}
	if c.TPS < 1 {
		return fmt.Errorf("%w: tps must be at least 1, got %d", ErrInvalid, c.TPS)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("%w: hud_width %d cannot be negative", ErrInvalid, c.HUDWidth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// GridSize returns the noise grid dimensions in cells.
func (c *Config) GridSize() (int, int) {
	if c.CellSize <= 0 {
		return 0, 0
	}
	return c.Width / c.CellSize, c.Height / c.CellSize
}

// NoiseParams returns the generation parameters for the configured grid.
func (c *Config) NoiseParams() noise.Params {
	w, h := c.GridSize()
	return noise.Params{Width: w, Height: h, Octaves: c.Octaves, Persistence: c.Persistence}
}

// PaletteColors resolves the explicit colour list, falling back to the preset.
func (c *Config) PaletteColors() ([]color.RGBA, error) {
	if len(c.Colors) == 0 {
		colors, ok := gradient.Preset(c.Palette)
		if !ok {
			return nil, fmt.Errorf("%w: unknown palette %q (have %s)", ErrInvalid, c.Palette, strings.Join(gradient.Presets(), ", "))
		}
		return colors, nil
	}
	if len(c.Colors) < 2 {
		return nil, fmt.Errorf("%w: colors needs at least two entries, got %d", ErrInvalid, len(c.Colors))
	}
	colors := make([]color.RGBA, len(c.Colors))
	for i, s := range c.Colors {
		col, err := gradient.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: colors[%d]: %v", ErrInvalid, i, err)
		}
		colors[i] = col
	}
	return colors, nil
}

// Gradient builds the colour gradient described by the config.
func (c *Config) Gradient() (*gradient.Gradient, error) {
	colors, err := c.PaletteColors()
	if err != nil {
		return nil, err
	}
	errColor, err := gradient.ParseHex(c.ErrorColor)
	if err != nil {
		return nil, fmt.Errorf("%w: error_color: %v", ErrInvalid, err)
	}
	return gradient.New(colors, c.Smooth, errColor)
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "YAML config file; explicit flags override it")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "grid cell size in pixels")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "number of smoothing octaves")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "octave weight decay in (0,1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first session (0 = time based)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette preset ("+strings.Join(gradient.Presets(), ", ")+")")
	fs.Var(&colorList{dst: &c.Colors}, "colors", "comma separated #rrggbb palette, overrides -palette")
	fs.BoolVar(&c.Smooth, "smooth", c.Smooth, "interpolate between palette colours")
	fs.StringVar(&c.ErrorColor, "error-color", c.ErrorColor, "colour for amplitudes outside every band")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "parameter panel width in pixels")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// ApplyFlags copies every flag explicitly set on fs onto c. It lets a config
// file loaded after flag parsing keep command-line overrides.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	target := flag.NewFlagSet("apply", flag.ContinueOnError)
	c.Bind(target)
	var firstErr error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || firstErr != nil {
			return
		}
		if err := target.Set(f.Name, f.Value.String()); err != nil {
			firstErr = fmt.Errorf("apply -%s: %w", f.Name, err)
		}
	})
	return firstErr
}

// colorList is a flag.Value collecting hex colours. Repeated or comma
// separated values accumulate; the first Set discards any earlier list.
type colorList struct {
	dst *[]string
	set bool
}

func (l *colorList) String() string {
	if l == nil || l.dst == nil {
		return ""
	}
	return strings.Join(*l.dst, ",")
}

func (l *colorList) Set(value string) error {
	if !l.set {
		*l.dst = nil
		l.set = true
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := gradient.ParseHex(part); err != nil {
			return err
		}
		*l.dst = append(*l.dst, part)
	}
	return nil
}
