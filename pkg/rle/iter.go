package rle

// RowIter yields the rows of a Pattern top to bottom. It cannot be rewound;
// call Pattern.Rows again to start over.
type RowIter struct {
	pattern *Pattern
	cursor  int
}

// Next returns a copy of the next row. Once every row has been returned it
// reports false on every call.
func (it *RowIter) Next() ([]uint8, bool) {
	p := it.pattern
	if it.cursor >= p.height {
		return nil, false
	}
	start := it.cursor * p.width
	row := make([]uint8, p.width)
	copy(row, p.grid[start:start+p.width])
	it.cursor++
	return row, true
}

// Width returns the length of every row.
func (it *RowIter) Width() int { return it.pattern.width }
