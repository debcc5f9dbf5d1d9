//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"octave-noise/internal/render"
	"octave-noise/internal/ui"
)

// Game adapts a Controller to the ebiten.Game interface. ebiten drives the
// poll/update/draw cycle and paces it at the configured TPS.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cellSize int
	showHUD  bool
	title    string
}

// New constructs a Game. hudWidth of zero disables the parameter panel.
func New(ctrl *Controller, cellSize, hudWidth int) *Game {
	size := ctrl.Size()
	g := &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(ctrl),
		cellSize: cellSize,
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(ctrl, hudWidth)
		g.showHUD = true
	}
	g.syncTitle()
	return g
}

func (g *Game) syncTitle() {
	if title := g.ctrl.Title(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
}

// Update handles input for the current frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Replay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.ctrl.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.ctrl.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.ctrl.ToggleSmooth()
	}
	if g.hud != nil && inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(g.gridWidth())
	}
	g.syncTitle()
	return nil
}

// Draw renders the selected stage.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Current(), g.ctrl.Gradient(), g.cellSize)
	size := g.ctrl.Size()
	g.overlay.Draw(screen, size.W*g.cellSize, size.H*g.cellSize)
	if g.showHUD {
		g.hud.Draw(screen, g.gridWidth(), g.cellSize)
	}
}

// Layout returns the logical screen size: the grid plus the HUD panel while
// it is shown.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize(g.ctrl.Size(), g.cellSize, g.hud.Width(), g.showHUD)
}

func (g *Game) gridWidth() int { return g.ctrl.Size().W * g.cellSize }
