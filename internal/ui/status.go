package ui

import (
	"fmt"

	"o-rle/internal/core"
)

// statusLines builds the overlay text.
func statusLines(title, sim string, size core.Size, gen int, paused bool, rate int) []string {
	lines := make([]string, 0, 4)
	if title != "" {
		lines = append(lines, title)
	}
	lines = append(lines, fmt.Sprintf("%s %dx%d  gen %d", sim, size.W, size.H, gen))
	state := fmt.Sprintf("running %d/s", rate)
	if paused {
		state = "paused"
	}
	lines = append(lines, state, "space pause  n step  r reset  i info")
	return lines
}
