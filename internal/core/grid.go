package core

// RowSource yields rows of cells top to bottom, as rle.RowIter does.
type RowSource interface {
	Next() ([]uint8, bool)
}

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

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Stamp copies rows into the grid with their top-left corner at (ox, oy).
// Cells past an edge wrap around. It returns the number of rows consumed.
func (g *ByteGrid) Stamp(rows RowSource, ox, oy int) int {
	n := 0
	for {
		row, ok := rows.Next()
		if !ok {
			return n
		}
		for dx, c := range row {
			x, y := g.Wrap(ox+dx, oy+n)
			g.data[g.Index(x, y)] = c
		}
		n++
	}
}
