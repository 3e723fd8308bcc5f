package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Board defines the contract the host loop relies on to drive a
// cellular automaton board.
type Board interface {
	Size() Size
	Step()
	Clear()
	Randomize(p float64)
	Reset(seed int64)
	Set(x, y int, alive bool) error
	Alive(x, y int) bool
	Snapshot(dst []uint8) error
}
