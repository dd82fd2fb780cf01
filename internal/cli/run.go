package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"o-rle/internal/batch"
	"o-rle/internal/hostcodec"
	"o-rle/pkg/rle"
)

// Run decodes every input in cfg and writes the result to w. Decode and I/O
// failures are returned as an ExitError with code 1.
func Run(ctx context.Context, cfg *Config, w io.Writer, logger *slog.Logger) error {
	results, err := batch.DecodeFiles(ctx, cfg.Paths, batch.Options{Workers: cfg.Workers, MaxCells: cfg.MaxCells}, logger)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	logger.Info("Decoded patterns.", "count", len(results))

	bw := bufio.NewWriter(w)
	for _, res := range results {
		if err := write(bw, cfg.Format, res); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
	}
	if err := bw.Flush(); err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}

func write(w *bufio.Writer, format string, res batch.Result) error {
	switch format {
	case FormatSummary:
		_, err := fmt.Fprintf(w, "%s: %dx%d alive=%d rule=%s name=%q\n",
			res.Path, res.Pattern.Width(), res.Pattern.Height(), res.Pattern.Alive(), res.Info.Rule, res.Info.Name)
		return err
	case FormatMsgpack:
		b, err := hostcodec.Marshal(res.Pattern)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		if res.Info.Name != "" {
			fmt.Fprintf(w, "!Name: %s\n", res.Info.Name)
		}
		return writeCells(w, res.Pattern.Rows())
	}
}

// writeCells prints one line per row, '.' for dead and 'O' for alive cells.
func writeCells(w *bufio.Writer, it *rle.RowIter) error {
	line := make([]byte, 0, it.Width()+1)
	for {
		row, ok := it.Next()
		if !ok {
			return nil
		}
		line = line[:0]
		for _, c := range row {
			if c == rle.Alive {
				line = append(line, 'O')
			} else {
				line = append(line, '.')
			}
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
}
