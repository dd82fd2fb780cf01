package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"o-rle/pkg/rle"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePatterns(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		// Pattern i is a single row of i+1 live cells.
		text := fmt.Sprintf("#N row%d\nx = %d, y = 1, rule = B3/S23\n%do!\n", i, i+1, i+1)
		paths[i] = filepath.Join(dir, fmt.Sprintf("p%d.rle", i))
		if err := os.WriteFile(paths[i], []byte(text), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return paths
}

func TestDecodeFilesKeepsOrder(t *testing.T) {
	paths := writePatterns(t, 12)
	results, err := DecodeFiles(context.Background(), paths, Options{Workers: 4}, discardLogger())
	if err != nil {
		t.Fatalf("DecodeFiles failed: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("results = %d, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d path = %s, want %s", i, res.Path, paths[i])
		}
		if res.Pattern.Alive() != i+1 {
			t.Errorf("result %d alive = %d, want %d", i, res.Pattern.Alive(), i+1)
		}
		if want := fmt.Sprintf("row%d", i); res.Info.Name != want {
			t.Errorf("result %d name = %q, want %q", i, res.Info.Name, want)
		}
	}
}

func TestDecodeFilesReportsFailingPath(t *testing.T) {
	paths := writePatterns(t, 3)
	bad := filepath.Join(t.TempDir(), "bad.rle")
	if err := os.WriteFile(bad, []byte("x = 1, y = 1\n2o!"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	paths = append(paths, bad)

	_, err := DecodeFiles(context.Background(), paths, Options{Workers: 2}, discardLogger())
	var rowErr *rle.RowTooLongError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected RowTooLongError, got %v", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, bad) {
		t.Errorf("error %q should start with the failing path", got)
	}
}

func TestDecodeFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DecodeFiles(ctx, writePatterns(t, 2), Options{Workers: 1}, discardLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDecodeFilesAppliesMaxCells(t *testing.T) {
	paths := writePatterns(t, 4)
	_, err := DecodeFiles(context.Background(), paths, Options{Workers: 2, MaxCells: 3}, discardLogger())
	var sizeErr *rle.TooLargeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected TooLargeError, got %v", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, paths[3]) {
		t.Errorf("error %q should start with %s", got, paths[3])
	}
}
