package app

import "octave-noise/internal/core"

// screenSize is the logical screen in pixels: the scaled grid, plus the HUD
// panel only while it is visible.
func screenSize(grid core.Size, cellSize, hudWidth int, showHUD bool) (int, int) {
	w := grid.W * cellSize
	if showHUD {
		w += hudWidth
	}
	return w, grid.H * cellSize
}
