package core

// Cell holds a cell's alive state for the present and the prior
// generation.
type Cell struct {
	Previous bool
	Current  bool
}

// CellGrid stores a 2D grid of cells in row-major order. The logical
// w x h interior is surrounded by a one-cell halo of permanently dead
// cells so neighbor scans never need bounds checks.
type CellGrid struct {
	W, H int
	data []Cell
}

// NewCellGrid allocates a grid with the given interior dimensions plus
// the halo. All cells start dead.
func NewCellGrid(w, h int) *CellGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &CellGrid{W: w, H: h, data: make([]Cell, (w+2)*(h+2))}
}

// Cells exposes the backing slice, halo included, so callers can
// read/write values directly.
func (g *CellGrid) Cells() []Cell { return g.data }

// Stride returns the padded row length.
func (g *CellGrid) Stride() int { return g.W + 2 }

// Index returns the linear slice index for padded coordinates (x, y).
// The interior occupies x in [1, W] and y in [1, H].
func (g *CellGrid) Index(x, y int) int { return y*(g.W+2) + x }

// InBounds reports whether zero-based logical coordinates (x, y) name
// an interior cell.
func (g *CellGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clear resets every cell, halo included, to dead.
func (g *CellGrid) Clear() {
	for i := range g.data {
		g.data[i] = Cell{}
	}
}
