package rle

import (
	"strconv"
	"strings"
)

// DefaultMaxCells is the cell limit the command-line hosts apply by default.
const DefaultMaxCells = 1 << 26

// Cell states stored in a Pattern grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Decoder turns RLE text into a Pattern. The zero value is ready to use and
// reports nothing.
type Decoder struct {
	// Observer receives every classified input line. Nil means NopObserver.
	Observer Observer
	// MaxCells rejects headers declaring more than MaxCells cells before any
	// row is allocated. Zero means no limit.
	MaxCells int
}

// Decode decodes text with a zero Decoder.
func Decode(text string) (*Pattern, error) {
	return Decoder{}.Decode(text)
}

// Parse decodes text and returns an iterator over its rows.
func Parse(text string) (*RowIter, error) {
	return Decoder{}.Parse(text)
}

// Parse decodes text and returns an iterator that owns the resulting Pattern.
func (d Decoder) Parse(text string) (*RowIter, error) {
	p, err := d.Decode(text)
	if err != nil {
		return nil, err
	}
	return p.Rows(), nil
}

// Decode runs the full decode: line classification, header parsing, the run
// state machine and grid assembly. Any error aborts the decode and no Pattern
// is returned.
func (d Decoder) Decode(text string) (*Pattern, error) {
	obs := d.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	var st decodeState
	for i, line := range strings.Split(text, "\n") {
		if st.done {
			break
		}
		lineNo := i + 1
		switch {
		case strings.HasPrefix(line, "#"):
			obs.Comment(lineNo, line)
		case strings.HasPrefix(line, "x"):
			hdr, err := ParseHeader(line, lineNo)
			if err != nil {
				return nil, err
			}
			if d.MaxCells > 0 && hdr.Width*hdr.Height > d.MaxCells {
				return nil, &TooLargeError{Line: lineNo, Width: hdr.Width, Height: hdr.Height, Limit: d.MaxCells}
			}
			obs.Header(lineNo, hdr)
			st.width, st.height = hdr.Width, hdr.Height
		default:
			obs.Body(lineNo, line)
			if err := st.feed(line); err != nil {
				return nil, err
			}
		}
	}
	return assemble(st.width, st.height, st.rows)
}

// decodeState is the transient state of one Decode call.
type decodeState struct {
	width  int
	height int
	rows   [][]uint8
	row    []uint8
	// rowLen is the logical length of row, which may exceed width.
	rowLen int
	digits []byte
	// done is set once '!' has been consumed.
	done bool
}

// feed runs the run-length state machine over one body line. A row, and a
// pending run count, may continue onto the next line.
func (st *decodeState) feed(line string) error {
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c >= '0' && c <= '9':
			st.digits = append(st.digits, c)

		case c == 'b' || c == 'o':
			n, err := st.runCount()
			if err != nil {
				return err
			}
			cell := Dead
			if c == 'o' {
				cell = Alive
			}
			// Cells past the declared width are only counted; closeRow
			// reports the overflow.
			st.rowLen += n
			for k := min(n, st.width-len(st.row)); k > 0; k-- {
				st.row = append(st.row, cell)
			}

		case c == '$':
			if err := st.closeRow(); err != nil {
				return err
			}
			n, err := st.runCount()
			if err != nil {
				return err
			}
			if st.width == 0 {
				// Blank rows of a zero-width grid hold no cells.
				continue
			}
			if total := len(st.rows) + n - 1; total*st.width > st.width*st.height {
				return &DimensionMismatchError{Width: st.width, Height: st.height, Cells: total * st.width}
			}
			for ; n > 1; n-- {
				st.rows = append(st.rows, make([]uint8, st.width))
			}

		case c == '!':
			if err := st.closeRow(); err != nil {
				return err
			}
			st.done = true
			return nil
		}
	}
	return nil
}

// closeRow fails if the open row is longer than the declared width. Otherwise
// it pads the row with dead cells and appends it to rows.
func (st *decodeState) closeRow() error {
	if st.rowLen > st.width {
		return &RowTooLongError{Row: len(st.rows), Length: st.rowLen, Width: st.width}
	}
	row := make([]uint8, st.width)
	copy(row, st.row)
	st.rows = append(st.rows, row)
	st.row = st.row[:0]
	st.rowLen = 0
	return nil
}

// runCount consumes the digit buffer. An empty buffer is a run of one.
func (st *decodeState) runCount() (int, error) {
	if len(st.digits) == 0 {
		return 1, nil
	}
	digits := string(st.digits)
	st.digits = st.digits[:0]
	n, err := strconv.ParseUint(digits, 10, 31)
	if err != nil {
		return 0, &InvalidRunCountError{Digits: digits, Err: err}
	}
	return int(n), nil
}
