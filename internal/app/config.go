package app

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"o-rle/pkg/rle"
	"o-rle/pkg/sims/life"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config represents the viewer settings. Values come from defaults, then an
// optional HCL file, then command-line flags.
type Config struct {
	Pattern   string `hcl:"pattern,optional"`
	Scale     int    `hcl:"scale,optional"`
	Rate      int    `hcl:"generations_per_second,optional"`
	Paused    bool   `hcl:"start_paused,optional"`
	MaxCells  int    `hcl:"max_cells,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`

	// Board holds life board settings (w, h, margin) as given on the
	// command line or in the file; see life.FromMap.
	Board map[string]string `hcl:"board,optional"`

	// File is the HCL file named by -config.
	File string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:     6,
		Rate:      10,
		MaxCells:  rle.DefaultMaxCells,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "HCL settings file")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE pattern file (.rle, .rle.gz, .rle.zst or - for stdin)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Rate, "gps", c.Rate, "generations per second")
	fs.Var(boardFlag{&c.Board}, "board", "board settings as w=N,h=N,margin=N")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.IntVar(&c.MaxCells, "max-cells", c.MaxCells, "largest pattern accepted, in cells (0 disables)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
}

// LoadFile merges the HCL file named by c.File into c. Flags that were set
// explicitly on fs keep their command-line values.
func (c *Config) LoadFile(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	file := NewConfig()
	if err := hclsimple.DecodeFile(c.File, nil, file); err != nil {
		return fmt.Errorf("load %s: %w", c.File, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	merge := func(flagName string, apply func()) {
		if !set[flagName] {
			apply()
		}
	}
	merge("pattern", func() { c.Pattern = file.Pattern })
	merge("scale", func() { c.Scale = file.Scale })
	merge("gps", func() { c.Rate = file.Rate })
	merge("board", func() { c.Board = file.Board })
	merge("paused", func() { c.Paused = file.Paused })
	merge("max-cells", func() { c.MaxCells = file.MaxCells })
	merge("log-level", func() { c.LogLevel = file.LogLevel })
	merge("log-format", func() { c.LogFormat = file.LogFormat })
	return nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.Pattern == "":
		return errors.New("no pattern given; use -pattern FILE")
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.Rate <= 0:
		return fmt.Errorf("generations per second must be positive, got %d", c.Rate)
	case c.MaxCells < 0:
		return fmt.Errorf("max cells must not be negative, got %d", c.MaxCells)
	}
	for k, v := range c.Board {
		n, err := strconv.Atoi(v)
		switch {
		case k != "w" && k != "h" && k != "margin":
			return fmt.Errorf("unknown board setting %q", k)
		case err != nil:
			return fmt.Errorf("board %s: %w", k, err)
		case n < 0 || (n == 0 && k != "margin"):
			return fmt.Errorf("board %s out of range: %d", k, n)
		}
	}
	return nil
}

// LifeConfig returns the life board settings.
func (c *Config) LifeConfig() life.Config {
	return life.FromMap(c.Board)
}

// boardFlag parses "k=v,k=v" into a settings map. Repeated flags add to the
// same map.
type boardFlag struct {
	m *map[string]string
}

func (b boardFlag) String() string {
	if b.m == nil || len(*b.m) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(*b.m))
	for k, v := range *b.m {
		pairs = append(pairs, k+"="+v)
	}
	slices.Sort(pairs)
	return strings.Join(pairs, ",")
}

func (b boardFlag) Set(s string) error {
	if *b.m == nil {
		*b.m = map[string]string{}
	}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", pair)
		}
		(*b.m)[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return nil
}
