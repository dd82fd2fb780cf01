package rle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Header holds the values declared on the "x = W, y = H, rule = R" line.
type Header struct {
	Width  int
	Height int
	// Rule is the raw ruleset text, e.g. "B3/S23". It is not interpreted.
	Rule string
}

var (
	errMissingField  = errors.New("missing field")
	errMissingEquals = errors.New("missing '='")
)

// ParseHeader parses a header line. lineNo is only used for error reporting.
func ParseHeader(line string, lineNo int) (Header, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return Header{}, &HeaderParseError{Line: lineNo, Text: line, Err: errMissingField}
	}

	w, err := headerDim(fields[0], "x")
	if err != nil {
		return Header{}, &HeaderParseError{Line: lineNo, Text: line, Field: strings.TrimSpace(fields[0]), Err: err}
	}
	h, err := headerDim(fields[1], "y")
	if err != nil {
		return Header{}, &HeaderParseError{Line: lineNo, Text: line, Field: strings.TrimSpace(fields[1]), Err: err}
	}

	hdr := Header{Width: w, Height: h}
	if len(fields) > 2 {
		if key, val, ok := strings.Cut(fields[2], "="); ok && strings.TrimSpace(key) == "rule" {
			hdr.Rule = strings.TrimSpace(val)
		}
	}
	return hdr, nil
}

// headerDim parses one "<key> = <uint>" field.
func headerDim(field, key string) (int, error) {
	k, v, ok := strings.Cut(field, "=")
	if !ok {
		return 0, errMissingEquals
	}
	if got := strings.TrimSpace(k); got != key {
		return 0, fmt.Errorf("expected key %q, got %q", key, got)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
