package app

import (
	"testing"

	"octave-noise/internal/core"
)

func TestScreenSizeDropsHiddenHUD(t *testing.T) {
	grid := core.Size{W: 220, H: 110}
	if w, h := screenSize(grid, 4, 240, true); w != 1120 || h != 440 {
		t.Fatalf("visible HUD: got %dx%d, want 1120x440", w, h)
	}
	if w, h := screenSize(grid, 4, 240, false); w != 880 || h != 440 {
		t.Fatalf("hidden HUD: got %dx%d, want 880x440", w, h)
	}
	if w, _ := screenSize(grid, 4, 0, true); w != 880 {
		t.Fatalf("no HUD: got width %d, want 880", w)
	}
}
