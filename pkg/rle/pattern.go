package rle

import "fmt"

// Pattern is a decoded grid of cells stored in row-major order. It is never
// modified after construction.
type Pattern struct {
	width  int
	height int
	grid   []uint8
}

// NewPattern builds a Pattern from a flat row-major grid. The grid is copied
// and must hold exactly w*h cells, each Dead or Alive.
func NewPattern(w, h int, grid []uint8) (*Pattern, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("rle: negative dimensions %dx%d", w, h)
	}
	if len(grid) != w*h {
		return nil, &DimensionMismatchError{Width: w, Height: h, Cells: len(grid)}
	}
	for i, c := range grid {
		if c != Dead && c != Alive {
			return nil, fmt.Errorf("rle: cell %d has state %d", i, c)
		}
	}
	return &Pattern{width: w, height: h, grid: append([]uint8(nil), grid...)}, nil
}

// assemble packs rows into one flat grid. The column cursor wraps at width
// regardless of where the source rows end, so only the total cell count has
// to match the declared dimensions.
func assemble(width, height int, rows [][]uint8) (*Pattern, error) {
	cells := 0
	for _, row := range rows {
		cells += len(row)
	}
	if cells != width*height {
		return nil, &DimensionMismatchError{Width: width, Height: height, Cells: cells}
	}

	p := &Pattern{width: width, height: height, grid: make([]uint8, width*height)}
	y, x := 0, 0
	for _, row := range rows {
		for _, c := range row {
			p.grid[y*width+x] = c
			x++
			if x == width {
				x = 0
				y++
			}
		}
	}
	return p, nil
}

// Width returns the declared number of columns.
func (p *Pattern) Width() int { return p.width }

// Height returns the declared number of rows.
func (p *Pattern) Height() int { return p.height }

// Grid returns a copy of the flat row-major grid.
func (p *Pattern) Grid() []uint8 { return append([]uint8(nil), p.grid...) }

// Cell returns the state at (x, y). Out of range coordinates are Dead.
func (p *Pattern) Cell(x, y int) uint8 {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return Dead
	}
	return p.grid[y*p.width+x]
}

// Alive counts the live cells.
func (p *Pattern) Alive() int {
	n := 0
	for _, c := range p.grid {
		n += int(c)
	}
	return n
}

// Rows returns a new iterator positioned at the first row.
func (p *Pattern) Rows() *RowIter { return &RowIter{pattern: p} }
