//go:build !ebiten

package ui

// Overlay draws nothing in headless builds.
type Overlay struct{}

// NewOverlay ignores its source in headless builds.
func NewOverlay(any) *Overlay { return &Overlay{} }

func (o *Overlay) Update()            {}
func (o *Overlay) Draw(any, int, int) {}
