//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"octave-noise/internal/app"
	"octave-noise/internal/config"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Path != "" {
		loaded, err := config.Load(cfg.Path)
		if err != nil {
			fatal(slog.Default(), "load config", err)
		}
		if err := loaded.ApplyFlags(flag.CommandLine); err != nil {
			fatal(slog.Default(), "apply flags", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		fatal(slog.Default(), "config", err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	grad, err := cfg.Gradient()
	if err != nil {
		fatal(logger, "gradient", err)
	}
	ctrl, err := app.NewController(app.Options{
		Params:   cfg.NoiseParams(),
		Gradient: grad,
		Seed:     cfg.Seed,
		Logger:   logger,
	})
	if err != nil {
		fatal(logger, "controller", err)
	}

	hudWidth := 0
	if cfg.HUD {
		hudWidth = cfg.HUDWidth
	}
	game := app.New(ctrl, cfg.CellSize, hudWidth)
	size := ctrl.Size()

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.CellSize+hudWidth, size.H*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(logger, "run", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("err", err))
	os.Exit(1)
}
