//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"octave-noise/internal/core"
)

var (
	hudBackground = color.RGBA{R: 14, G: 15, B: 19, A: 255}
	hudHeading    = color.RGBA{R: 205, G: 205, B: 215, A: 255}
	hudText       = color.RGBA{R: 225, G: 225, B: 232, A: 255}
	hudDim        = color.RGBA{R: 150, G: 150, B: 162, A: 255}
	hudFocus      = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	buttonOn      = color.RGBA{R: 56, G: 58, B: 68, A: 255}
	buttonOff     = color.RGBA{R: 30, G: 32, B: 38, A: 255}
)

// HUD is the parameter panel drawn to the right of the grid. Each adjustable
// parameter gets a stepper row; Up/Down moves the focus and Minus/Equal step
// the focused row, or the -/+ buttons can be clicked. Remaining parameters
// are listed read-only underneath.
type HUD struct {
	view  core.View
	width int
	title string

	panel       *ebiten.Image
	panelHeight int
	offsetX     int

	snapshot core.ParameterSnapshot
	steppers []stepper
	focus    int

	setInt   core.IntParameterSetter
	setFloat core.FloatParameterSetter
}

type stepper struct {
	ctrl  core.ParameterControl
	value float64
	known bool

	row      int
	dec, inc image.Rectangle
}

// NewHUD builds a panel of the given width for view.
func NewHUD(view core.View, width int) *HUD {
	h := &HUD{view: view, width: max(width, 0), title: hudTitle(view)}
	if p, ok := view.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			top := hudControlsTop + i*hudRowHeight
			y := top + (hudRowHeight-hudButton)/2
			inc := image.Rect(h.width-hudPad-hudButton, y, h.width-hudPad, y+hudButton)
			dec := inc.Sub(image.Pt(hudButton+hudGap, 0))
			h.steppers = append(h.steppers, stepper{ctrl: ctrl, row: top, dec: dec, inc: inc})
		}
	}
	h.setInt, _ = view.(core.IntParameterSetter)
	h.setFloat, _ = view.(core.FloatParameterSetter)
	return h
}

func hudTitle(view core.View) string {
	name := view.Name()
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " parameters"
}

// Width is the panel width in pixels; zero for a nil HUD.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update pulls a fresh parameter snapshot and applies keyboard and mouse
// input. panelOffsetX is where the panel starts on screen.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	p, ok := h.view.(core.ParameterProvider)
	if !ok {
		return
	}
	h.snapshot = p.Parameters()
	h.sync()

	if len(h.steppers) == 0 {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		h.focus = (h.focus + len(h.steppers) - 1) % len(h.steppers)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		h.focus = (h.focus + 1) % len(h.steppers)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		h.step(&h.steppers[h.focus], -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		h.step(&h.steppers[h.focus], 1)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		h.click(ebiten.CursorPosition())
	}
}

func (h *HUD) sync() {
	for i := range h.steppers {
		s := &h.steppers[i]
		s.known = false
		param, ok := h.snapshot.Lookup(s.ctrl.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		s.value, s.known = v, true
	}
}

func (h *HUD) click(mx, my int) {
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.steppers {
		s := &h.steppers[i]
		switch {
		case pt.In(s.dec):
			h.focus = i
			h.step(s, -1)
			return
		case pt.In(s.inc):
			h.focus = i
			h.step(s, 1)
			return
		}
	}
}

// next returns the clamped value one step in dir, and false when the value
// would not move or the view cannot take it.
func (h *HUD) next(s *stepper, dir int) (float64, bool) {
	if !s.known {
		return 0, false
	}
	step := s.ctrl.Step
	switch s.ctrl.Type {
	case core.ParamTypeInt:
		if h.setInt == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.setFloat == nil || step <= 0 {
			return 0, false
		}
	default:
		return 0, false
	}
	v := s.value + float64(dir)*step
	// Snap to the step grid before clamping; the bounds themselves may sit off it.
	if s.ctrl.Type == core.ParamTypeFloat {
		v = math.Round(v/step) * step
	}
	if s.ctrl.HasMin {
		v = math.Max(v, s.ctrl.Min)
	}
	if s.ctrl.HasMax {
		v = math.Min(v, s.ctrl.Max)
	}
	if math.Abs(v-s.value) < 1e-9 {
		return 0, false
	}
	return v, true
}

func (h *HUD) step(s *stepper, dir int) {
	v, ok := h.next(s, dir)
	if !ok {
		return
	}
	var applied bool
	if s.ctrl.Type == core.ParamTypeInt {
		v = math.Round(v)
		applied = h.setInt.SetIntParameter(s.ctrl.Key, int(v))
	} else {
		applied = h.setFloat.SetFloatParameter(s.ctrl.Key, v)
	}
	if applied {
		s.value = v
	}
}

// Draw renders the panel with its left edge at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, cellSize int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.view.Size().H * max(cellSize, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panelHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.panelHeight = height
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, hudPad, hudPad+hudTitleBase, hudHeading)
	for i := range h.steppers {
		h.drawStepper(&h.steppers[i], i == h.focus)
	}
	h.drawReadouts()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStepper(s *stepper, focused bool) {
	face := basicfont.Face7x13
	if focused {
		vector.DrawFilledRect(h.panel, 0, float32(s.row), 3, hudRowHeight, hudFocus, false)
	}
	y := s.row + hudLabelBase
	text.Draw(h.panel, s.ctrl.Label, face, hudPad, y, hudText)

	value, col := "--", hudDim
	if s.known {
		value, col = formatStepValue(s.ctrl, s.value), hudText
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, s.dec.Min.X-hudGap-w, y, col)

	_, canDec := h.next(s, -1)
	_, canInc := h.next(s, 1)
	drawButton(h.panel, s.dec, "-", canDec)
	drawButton(h.panel, s.inc, "+", canInc)
}

// drawReadouts lists snapshot parameters that have no stepper.
func (h *HUD) drawReadouts() {
	face := basicfont.Face7x13
	y := hudControlsTop + len(h.steppers)*hudRowHeight + hudReadoutGap
	for _, group := range h.snapshot.Groups {
		if y > h.panelHeight-hudPad {
			return
		}
		text.Draw(h.panel, group.Name, face, hudPad, y, hudHeading)
		y += hudReadoutLine
		for _, p := range group.Params {
			if h.hasStepper(p.Key) {
				continue
			}
			value := p.Value
			if p.Type == core.ParamTypeFloat {
				if f, err := strconv.ParseFloat(value, 64); err == nil {
					value = strconv.FormatFloat(f, 'f', 3, 64)
				}
			}
			text.Draw(h.panel, p.Label, face, hudPad+8, y, hudDim)
			w := text.BoundString(face, value).Dx()
			text.Draw(h.panel, value, face, h.width-hudPad-w, y, hudText)
			y += hudReadoutLine
		}
		y += hudReadoutLine / 2
	}
}

func (h *HUD) hasStepper(key string) bool {
	for _, s := range h.steppers {
		if s.ctrl.Key == key {
			return true
		}
	}
	return false
}

func drawButton(dst *ebiten.Image, r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonOn, hudText
	if !enabled {
		bg, fg = buttonOff, hudDim
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(dst, label, face, x, y, fg)
}

// formatStepValue prints ints plainly and floats with enough decimals to show
// a single step.
func formatStepValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	decimals := 2
	if ctrl.Step > 0 {
		decimals = int(math.Max(1, math.Ceil(-math.Log10(ctrl.Step))))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

const (
	hudPad         = 12
	hudRowHeight   = 34
	hudButton      = 22
	hudGap         = 6
	hudTitleBase   = 18
	hudLabelBase   = 22
	hudReadoutGap  = 20
	hudReadoutLine = 16
	hudControlsTop = hudPad + hudTitleBase + 14
)
