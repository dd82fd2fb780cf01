package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"o-rle/internal/source"
	"o-rle/pkg/rle"
)

// Output formats accepted by -format.
const (
	FormatText    = "text"
	FormatSummary = "summary"
	FormatMsgpack = "msgpack"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	Paths     []string
	Format    string
	Workers   int
	MaxCells  int
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rle - decode Run Length Encoded cellular automaton patterns.

Usage:
  rle [options] FILE...

Arguments:
  FILE
    An .rle file, optionally compressed as .gz or .zst. Use - for stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", FormatText, "Output format. Options: 'text', 'summary' or 'msgpack'.")
	workersFlag := flagSet.Int("workers", 4, "Number of files decoded concurrently.")
	maxCellsFlag := flagSet.Int("max-cells", rle.DefaultMaxCells, "Reject patterns whose header declares more cells. 0 disables the limit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No input files provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case FormatText, FormatSummary:
	case FormatMsgpack:
		if flagSet.NArg() != 1 {
			return nil, false, &ExitError{Code: 2, Message: "msgpack output takes exactly one input file"}
		}
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text', 'summary' or 'msgpack'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *workersFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be positive"}
	}
	if *maxCellsFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-cells: must not be negative"}
	}
	if i := slices.Index(flagSet.Args(), source.Stdin); i >= 0 && slices.Contains(flagSet.Args()[i+1:], source.Stdin) {
		return nil, false, &ExitError{Code: 2, Message: "standard input (-) may be given only once"}
	}

	cfg := &Config{
		Paths:     flagSet.Args(),
		Format:    format,
		Workers:   *workersFlag,
		MaxCells:  *maxCellsFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
