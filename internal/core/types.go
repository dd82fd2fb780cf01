package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is what the viewer needs from a simulation seeded with a pattern.
type Sim interface {
	Name() string
	Size() Size
	// Reset restores the seeded pattern.
	Reset()
	Step()
	Generation() int
	Cells() []uint8
}
