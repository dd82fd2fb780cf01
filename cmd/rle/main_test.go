package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"o-rle/internal/cli"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsCells(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blinker.rle")
	require.NoError(t, os.WriteFile(path, []byte("#N Blinker\nx = 3, y = 1, rule = B3/S23\n3o!\n"), 0o600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	require.NoError(t, run(out, logs, []string{path}))
	require.Equal(t, "!Name: Blinker\nOOO\n", out.String())
	require.Contains(t, logs.String(), "Decoded patterns.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "missing.rle")})
	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "Expected error to be of type ExitError")
	require.Equal(t, 1, exitErr.Code)
}
