//go:build !ebiten

package app

import "errors"

// errNoGUI is returned by every Game method in builds without the ebiten tag.
var errNoGUI = errors.New("app: noise viewer built without the ebiten tag")

// Game stands in for the ebiten viewer so headless builds still link. The
// Controller is fully usable without it.
type Game struct{}

// New panics; the viewer window needs the ebiten build tag.
func New(*Controller, int, int) *Game { panic(errNoGUI) }

// Update reports that no window is available.
func (g *Game) Update() error { return errNoGUI }

// Draw does nothing.
func (g *Game) Draw(any) {}

// Layout reports an empty screen.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
