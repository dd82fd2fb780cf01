// Package hostcodec marshals patterns for hosts that run outside this
// process, such as a browser or a separate renderer.
package hostcodec

import (
	"fmt"

	"o-rle/pkg/rle"

	"github.com/vmihailenco/msgpack/v5"
)

// wirePattern is the msgpack shape of a Pattern. Grid is row-major.
type wirePattern struct {
	Width  int    `msgpack:"w"`
	Height int    `msgpack:"h"`
	Grid   []byte `msgpack:"grid"`
}

// Marshal encodes p.
func Marshal(p *rle.Pattern) ([]byte, error) {
	b, err := msgpack.Marshal(wirePattern{Width: p.Width(), Height: p.Height(), Grid: p.Grid()})
	if err != nil {
		return nil, fmt.Errorf("hostcodec: marshal: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a Pattern produced by Marshal. The cells are validated
// the same way NewPattern validates them.
func Unmarshal(b []byte) (*rle.Pattern, error) {
	var w wirePattern
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("hostcodec: unmarshal: %w", err)
	}
	p, err := rle.NewPattern(w.Width, w.Height, w.Grid)
	if err != nil {
		return nil, fmt.Errorf("hostcodec: %w", err)
	}
	return p, nil
}
