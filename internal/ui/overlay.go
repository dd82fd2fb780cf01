//go:build ebiten

package ui

import (
	"image/color"

	"o-rle/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws pattern information on top of the simulation.
type Overlay struct {
	sim     core.Sim
	title   string
	visible bool
	backing *ebiten.Image
}

// NewOverlay constructs an overlay describing sim. title is usually the
// pattern name and may be empty.
func NewOverlay(sim core.Sim, title string) *Overlay {
	o := &Overlay{sim: sim, title: title, visible: true}
	o.backing = ebiten.NewImage(1, 1)
	o.backing.Fill(color.RGBA{A: 0xb0})
	return o
}

// Update toggles visibility with the I key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.visible = !o.visible
	}
}

// Draw renders the info box in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool, rate int) {
	if !o.visible {
		return
	}
	lines := statusLines(o.title, o.sim.Name(), o.sim.Size(), o.sim.Generation(), paused, rate)

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*7)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+8), float64(len(lines)*14+6))
	screen.DrawImage(o.backing, op)

	for i, l := range lines {
		text.Draw(screen, l, face, 4, 14+i*14, color.White)
	}
}
