// rle decodes Run Length Encoded cellular automaton patterns.
//
// Usage:
//
//	rle [options] FILE...
//
// Each FILE is printed as plaintext cells ('.' dead, 'O' alive) by default.
// See -h for the other output formats.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"o-rle/internal/app"
	"o-rle/internal/cli"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	return cli.Run(context.Background(), cfg, outW, logger)
}
