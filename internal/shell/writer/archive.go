package writer

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdocker-io/generator/internal/core/bundle"
)

// archiveEpoch is the fixed modification time stamped on every zip entry.
// Real timestamps would make two archives of the same bundle differ.
var archiveEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Archive packs the bundle into a zip in bundle order with fixed entry
// metadata, so identical bundles produce byte-identical archives.
func Archive(b *bundle.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range b.Files {
		hdr := &zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: archiveEpoch,
		}
		hdr.SetMode(0o644)

		entry, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", f.Path, err)
		}
		if _, err := entry.Write(f.Contents); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", f.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteArchive packs the bundle and writes the zip to zipPath, creating
// parent directories as needed.
func (w *Writer) WriteArchive(ctx context.Context, b *bundle.Bundle, zipPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Archive(b)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(zipPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", zipPath, err)
		}
	}
	if err := os.WriteFile(zipPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", zipPath, err)
	}

	w.logger.Info("archive written", "path", zipPath, "bytes", len(data), "files", len(b.Files))
	return nil
}
