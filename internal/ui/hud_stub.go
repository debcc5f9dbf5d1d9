//go:build !ebiten

package ui

import "octave-noise/internal/core"

// HUD has no panel in headless builds; a nil *HUD is valid everywhere.
type HUD struct{}

func NewHUD(core.View, int) *HUD { return nil }

func (h *HUD) Width() int         { return 0 }
func (h *HUD) Update(int)         {}
func (h *HUD) Draw(any, int, int) {}
