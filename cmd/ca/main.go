//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"o-rle/internal/app"
	"o-rle/internal/meta"
	"o-rle/internal/source"
	"o-rle/pkg/rle"
	"o-rle/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.LoadFile(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	text, err := source.ReadText(cfg.Pattern)
	if err != nil {
		log.Fatal(err)
	}
	dec := rle.Decoder{Observer: rle.LogObserver{Logger: logger}, MaxCells: cfg.MaxCells}
	pattern, info, err := meta.Decode(dec, text)
	if err != nil {
		log.Fatalf("%s: %v", cfg.Pattern, err)
	}
	if info.Rule != "" && !strings.EqualFold(info.Rule, "B3/S23") && info.Rule != "23/3" {
		logger.Warn("Pattern declares a non-Life rule; running Conway's Life anyway.", "rule", info.Rule)
	}

	sim := life.FromPattern(pattern, cfg.LifeConfig())
	logger.Info("Pattern loaded.", "name", info.Name, "width", pattern.Width(), "height", pattern.Height(), "alive", pattern.Alive())

	title := info.Name
	if title == "" {
		title = cfg.Pattern
	}
	game := app.New(sim, title, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("o-rle: " + title)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("Viewer stopped.", "error", err)
		os.Exit(1)
	}
}
