package life

import (
	"o-rle/internal/core"
	"o-rle/pkg/rle"
)

// Life implements Conway's Game of Life with toroidal wrapping, seeded from
// a decoded pattern.
type Life struct {
	w, h int
	seed *core.ByteGrid
	cur  []uint8
	nxt  []uint8
	gen  int
}

// FromPattern returns a Life board with p centred on it.
func FromPattern(p *rle.Pattern, cfg Config) *Life {
	w := max(cfg.Width, p.Width()+2*cfg.Margin)
	h := max(cfg.Height, p.Height()+2*cfg.Margin)
	seed := core.NewByteGrid(w, h)
	seed.Stamp(p.Rows(), (seed.W-p.Width())/2, (seed.H-p.Height())/2)

	l := &Life{w: seed.W, h: seed.H, seed: seed}
	l.cur = make([]uint8, len(seed.Cells()))
	l.nxt = make([]uint8, len(l.cur))
	l.Reset()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Reset restores the board to the seeded pattern.
func (l *Life) Reset() {
	copy(l.cur, l.seed.Cells())
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
