// Package writer persists generated bundles to a directory or a zip
// archive. This is part of the Imperative Shell - it performs file I/O.
package writer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/phpdocker-io/generator/internal/core/bundle"
	"golang.org/x/sync/errgroup"
)

// Writer persists bundles to disk.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a new Writer.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger.With("component", "writer")}
}

// Write persists every bundle file under dir, creating parent directories
// as needed. Generated files are independent, so they are written
// concurrently; the first failure cancels the rest.
func (w *Writer) Write(ctx context.Context, b *bundle.Bundle, dir string) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, f := range b.Files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			target := filepath.Join(dir, filepath.FromSlash(f.Path))
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create directory for %s: %w", f.Path, err)
			}
			if err := os.WriteFile(target, f.Contents, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", f.Path, err)
			}

			w.logger.Debug("wrote file", "path", target, "bytes", len(f.Contents))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w.logger.Info("bundle written", "dir", dir, "files", len(b.Files))
	return nil
}
