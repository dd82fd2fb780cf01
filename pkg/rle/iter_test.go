package rle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIteratesRowsThenStops(t *testing.T) {
	it, err := Parse(gliderRLE)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if it.Width() != 3 {
		t.Fatalf("width = %d, want 3", it.Width())
	}

	for i, want := range [][]uint8{{0, 1, 0}, {0, 0, 1}, {1, 1, 1}} {
		row, ok := it.Next()
		if !ok {
			t.Fatalf("row %d: iterator ended early", i)
		}
		if diff := cmp.Diff(want, row); diff != "" {
			t.Fatalf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}

	for i := 0; i < 3; i++ {
		if row, ok := it.Next(); ok || row != nil {
			t.Fatalf("call %d after end returned %v, %v", i, row, ok)
		}
	}
}

func TestParseError(t *testing.T) {
	it, err := Parse("x = abc, y = 3, rule = B3/S23\nbob$2bo$3o!")
	if err == nil || it != nil {
		t.Fatalf("expected error and no iterator, got %v, %v", it, err)
	}
}

func TestRowsAreCopies(t *testing.T) {
	p := mustDecode(t, gliderRLE)

	first, _ := p.Rows().Next()
	first[0], first[1] = 9, 9

	again, _ := p.Rows().Next()
	if diff := cmp.Diff([]uint8{0, 1, 0}, again); diff != "" {
		t.Fatalf("pattern changed through a returned row (-want +got):\n%s", diff)
	}
}

func TestRowsRestartsFromRetainedPattern(t *testing.T) {
	p := mustDecode(t, gliderRLE)
	a := rowsOf(t, p)
	b := rowsOf(t, p)
	if len(a) != 3 {
		t.Fatalf("rows = %d, want 3", len(a))
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}
}
