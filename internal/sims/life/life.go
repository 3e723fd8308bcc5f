package life

import (
	"errors"
	"fmt"

	"lifegrid/internal/core"
)

// Errors reported when a caller breaks the engine's coordinate
// contracts. Both are checked before any mutation happens.
var (
	// ErrOutOfBounds reports Set coordinates outside the logical grid.
	ErrOutOfBounds = errors.New("life: cell out of bounds")
	// ErrInvalidDimensions reports a snapshot buffer whose length does
	// not match the logical grid.
	ErrInvalidDimensions = errors.New("life: snapshot buffer has wrong dimensions")
)

const defaultDensity = 0.5

// Engine implements Conway's Game of Life on a bounded grid. The
// backing storage carries a one-cell halo of permanently dead cells so
// the neighbor scan stays branch-free at the edges.
type Engine struct {
	grid    *core.CellGrid
	rng     *core.RNG
	density float64
}

// New returns an Engine with a w x h logical grid, all cells dead.
func New(w, h int, seed int64) *Engine {
	return &Engine{
		grid:    core.NewCellGrid(w, h),
		rng:     core.NewRNG(seed),
		density: defaultDensity,
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the logical grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// SetDensity changes the live-cell probability used by Reset.
func (e *Engine) SetDensity(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	e.density = p
}

// Clear kills every cell, halo included.
func (e *Engine) Clear() { e.grid.Clear() }

// Randomize fills the interior with independent Bernoulli(p) draws and
// clears each cell's prior-generation bit. The halo is left untouched.
func (e *Engine) Randomize(p float64) {
	cells := e.grid.Cells()
	for y := 1; y <= e.grid.H; y++ {
		for x := 1; x <= e.grid.W; x++ {
			cells[e.grid.Index(x, y)] = core.Cell{Current: e.rng.Chance(p)}
		}
	}
}

// Reset reseeds the random source and randomizes the board at the
// configured density.
func (e *Engine) Reset(seed int64) {
	e.rng = core.NewRNG(seed)
	e.Randomize(e.density)
}

// Set writes the alive state of the logical cell at zero-based (x, y).
// The prior-generation bit is left alone; Step overwrites it anyway.
func (e *Engine) Set(x, y int, alive bool) error {
	if !e.grid.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	e.grid.Cells()[e.grid.Index(x+1, y+1)].Current = alive
	return nil
}

// Alive reports whether the logical cell at (x, y) is alive. Cells
// outside the grid are dead.
func (e *Engine) Alive(x, y int) bool {
	if !e.grid.InBounds(x, y) {
		return false
	}
	return e.grid.Cells()[e.grid.Index(x+1, y+1)].Current
}

// Step advances the board one generation. The snapshot phase copies
// every cell's present state into its Previous bit; the evaluate phase
// then recomputes the interior from the 8-neighbor sum over that
// snapshot. Halo cells are read but never written.
func (e *Engine) Step() {
	cells := e.grid.Cells()
	for i := range cells {
		cells[i].Previous = cells[i].Current
	}

	stride := e.grid.Stride()
	for y := 1; y <= e.grid.H; y++ {
		for x := 1; x <= e.grid.W; x++ {
			idx := y*stride + x
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if cells[idx+dy*stride+dx].Previous {
						neighbors++
					}
				}
			}
			alive := cells[idx].Previous
			cells[idx].Current = (alive && (neighbors == 2 || neighbors == 3)) ||
				(!alive && neighbors == 3)
		}
	}
}

// Snapshot projects the interior's present state into dst as 0/1
// values, row-major, one byte per logical cell. dst must hold exactly
// W*H entries.
func (e *Engine) Snapshot(dst []uint8) error {
	w, h := e.grid.W, e.grid.H
	if len(dst) != w*h {
		return fmt.Errorf("%w: got %d cells, want %d", ErrInvalidDimensions, len(dst), w*h)
	}
	cells := e.grid.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if cells[e.grid.Index(x+1, y+1)].Current {
				v = 1
			}
			dst[y*w+x] = v
		}
	}
	return nil
}
