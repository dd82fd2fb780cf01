package meta

import (
	"errors"
	"testing"

	"o-rle/pkg/rle"

	"github.com/google/go-cmp/cmp"
)

const glider = `#N Glider
#O Richard K. Guy
#C The smallest, most common, and first discovered spaceship.
#c www.conwaylife.com/wiki/index.php?title=Glider
#r 23/3
x = 3, y = 3, rule = B3/S23
bob$2bo$3o!`

func TestDecodeCollectsInfo(t *testing.T) {
	p, info, err := Decode(rle.Decoder{}, glider)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if p.Alive() != 5 {
		t.Fatalf("alive = %d, want 5", p.Alive())
	}
	want := Info{
		Name:   "Glider",
		Author: "Richard K. Guy",
		Rule:   "B3/S23",
		Comments: []string{
			"The smallest, most common, and first discovered spaceship.",
			"www.conwaylife.com/wiki/index.php?title=Glider",
		},
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

type countingObserver struct{ comments, headers, bodies int }

func (c *countingObserver) Comment(int, string) { c.comments++ }
func (c *countingObserver) Header(int, rle.Header) { c.headers++ }
func (c *countingObserver) Body(int, string) { c.bodies++ }

func TestCollectorForwards(t *testing.T) {
	next := &countingObserver{}
	if _, _, err := Decode(rle.Decoder{Observer: next}, glider); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if diff := cmp.Diff(countingObserver{comments: 5, headers: 1, bodies: 1}, *next, cmp.AllowUnexported(countingObserver{})); diff != "" {
		t.Fatalf("forwarded counts mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrorReturnsNoInfo(t *testing.T) {
	p, info, err := Decode(rle.Decoder{}, "#N Broken\nx = ?, y = 1\no!")
	if err == nil || p != nil {
		t.Fatalf("expected error, got %v, %v", p, err)
	}
	if info.Name != "" {
		t.Fatalf("info = %+v, want zero", info)
	}
}

func TestDecodeHonoursMaxCells(t *testing.T) {
	_, _, err := Decode(rle.Decoder{MaxCells: 4}, glider)
	var sizeErr *rle.TooLargeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected TooLargeError, got %v", err)
	}
}
