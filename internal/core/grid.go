package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). The second result is false out of bounds.
func (g *ByteGrid) At(x, y int) (uint8, bool) {
	if !g.In(x, y) {
		return 0, false
	}
	return g.data[y*g.W+x], true
}

// Set stores v at (x, y) and reports whether the coordinate was in bounds.
func (g *ByteGrid) Set(x, y int, v uint8) bool {
	if !g.In(x, y) {
		return false
	}
	g.data[y*g.W+x] = v
	return true
}

// CopyFrom overwrites g with the contents of src. Both grids must share dimensions.
func (g *ByteGrid) CopyFrom(src *ByteGrid) {
	copy(g.data, src.data)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
