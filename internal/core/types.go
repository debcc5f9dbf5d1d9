package core

// Size describes the dimensions of a noise grid in cells.
type Size struct {
	W int
	H int
}

// View is the minimal contract the HUD and overlay need from whatever owns
// the current noise session.
type View interface {
	Name() string
	Size() Size
}
