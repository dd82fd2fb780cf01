package rle

import "fmt"

// HeaderParseError reports a malformed "x = W, y = H" header line.
type HeaderParseError struct {
	Line  int
	Text  string
	Field string
	Err   error
}

func (e *HeaderParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("rle: line %d: malformed header %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("rle: line %d: malformed header field %q: %v", e.Line, e.Field, e.Err)
}

func (e *HeaderParseError) Unwrap() error { return e.Err }

// RowTooLongError reports a row holding more cells than the declared width.
type RowTooLongError struct {
	Row    int
	Length int
	Width  int
}

func (e *RowTooLongError) Error() string {
	return fmt.Sprintf("rle: row %d has %d cells, declared width is %d", e.Row, e.Length, e.Width)
}

// InvalidRunCountError reports a run count that is not an unsigned integer.
type InvalidRunCountError struct {
	Digits string
	Err    error
}

func (e *InvalidRunCountError) Error() string {
	return fmt.Sprintf("rle: invalid run count %q: %v", e.Digits, e.Err)
}

func (e *InvalidRunCountError) Unwrap() error { return e.Err }

// DimensionMismatchError reports decoded cells that do not fill the declared
// grid exactly.
type DimensionMismatchError struct {
	Width  int
	Height int
	Cells  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("rle: decoded %d cells, want %dx%d = %d", e.Cells, e.Width, e.Height, e.Width*e.Height)
}

// TooLargeError reports a header declaring more cells than Decoder.MaxCells.
type TooLargeError struct {
	Line   int
	Width  int
	Height int
	Limit  int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("rle: line %d: %dx%d pattern exceeds the limit of %d cells", e.Line, e.Width, e.Height, e.Limit)
}
