// Package batch decodes several RLE sources in parallel.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"o-rle/internal/meta"
	"o-rle/internal/source"
	"o-rle/pkg/rle"

	"golang.org/x/sync/errgroup"
)

// Result is one decoded source.
type Result struct {
	Path    string
	Pattern *rle.Pattern
	Info    meta.Info
}

// Options tunes DecodeFiles.
type Options struct {
	// Workers bounds the number of files decoded at once.
	Workers int
	// MaxCells is passed to rle.Decoder.MaxCells.
	MaxCells int
}

// DecodeFiles reads and decodes every path using at most opts.Workers
// goroutines. Results keep the order of paths. The first failure cancels the
// remaining work and is returned wrapped with its path.
func DecodeFiles(ctx context.Context, paths []string, opts Options, logger *slog.Logger) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := source.ReadText(path)
			if err != nil {
				return err
			}
			dec := rle.Decoder{
				Observer: rle.LogObserver{Logger: logger.With("path", path)},
				MaxCells: opts.MaxCells,
			}
			p, info, err := meta.Decode(dec, text)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("Pattern decoded.", "path", path, "width", p.Width(), "height", p.Height())
			results[i] = Result{Path: path, Pattern: p, Info: info}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
