package life

import (
	"slices"
	"testing"

	"o-rle/pkg/rle"
)

func decode(t *testing.T, text string) *rle.Pattern {
	t.Helper()
	p, err := rle.Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return p
}

func TestBlinkerOscillation(t *testing.T) {
	life := FromPattern(decode(t, "x = 1, y = 3\no$o$o!"), Config{Width: 5, Height: 5})
	w := life.Size().W
	if w != 5 || life.Size().H != 5 {
		t.Fatalf("size = %+v, want 5x5", life.Size())
	}

	check := func(step string, expects map[[2]int]bool) {
		t.Helper()
		cells := life.Cells()
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := cells[y*w+x] == 1
				if expects[[2]int{x, y}] != alive {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, !alive)
				}
			}
		}
	}

	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}

	check("seed", vertical)
	life.Step()
	check("first step", horizontal)
	life.Step()
	check("second step", vertical)
	if life.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", life.Generation())
	}
}

func TestBoardGrowsToFitMargin(t *testing.T) {
	life := FromPattern(decode(t, "x = 36, y = 9\n36o8$!"), Config{Width: 10, Height: 10, Margin: 2})
	if got := life.Size(); got.W != 40 || got.H != 13 {
		t.Fatalf("size = %+v, want 40x13", got)
	}
}

func TestResetRestoresPattern(t *testing.T) {
	life := FromPattern(decode(t, "x = 3, y = 3, rule = B3/S23\nbob$2bo$3o!"), DefaultConfig())
	seed := slices.Clone(life.Cells())
	for i := 0; i < 4; i++ {
		life.Step()
	}
	if slices.Equal(seed, life.Cells()) {
		t.Fatal("glider should have moved after 4 steps")
	}
	life.Reset()
	if !slices.Equal(seed, life.Cells()) || life.Generation() != 0 {
		t.Fatal("Reset should restore the seeded pattern")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "100", "h": "-3", "margin": "0"})
	if c.Width != 100 || c.Height != DefaultConfig().Height || c.Margin != 0 {
		t.Fatalf("config = %+v", c)
	}
}
