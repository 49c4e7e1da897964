package writer

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Archive Tests
// =============================================================================

func TestArchive_Deterministic(t *testing.T) {
	b := testBundle(t)

	first, err := Archive(b)
	require.NoError(t, err)
	second, err := Archive(b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestArchive_RoundTrip(t *testing.T) {
	b := testBundle(t)

	data, err := Archive(b)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, len(b.Files))

	for i, f := range b.Files {
		entry := zr.File[i]
		assert.Equal(t, f.Path, entry.Name, "entry order follows bundle order")

		rc, err := entry.Open()
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, f.Contents, got)
	}
}

func TestArchive_FixedTimestamps(t *testing.T) {
	b := testBundle(t)

	data, err := Archive(b)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, entry := range zr.File {
		assert.True(t, entry.Modified.Equal(archiveEpoch), "entry %s timestamp", entry.Name)
	}
}

// =============================================================================
// WriteArchive Tests
// =============================================================================

func TestWriteArchive_WritesZip(t *testing.T) {
	b := testBundle(t)
	zipPath := filepath.Join(t.TempDir(), "out", "mysite.zip")

	err := NewWriter(nil).WriteArchive(context.Background(), b, zipPath)
	require.NoError(t, err)

	data, err := os.ReadFile(zipPath)
	require.NoError(t, err)

	want, err := Archive(b)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestWriteArchive_CancelledContext(t *testing.T) {
	b := testBundle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriter(nil).WriteArchive(ctx, b, filepath.Join(t.TempDir(), "x.zip"))
	assert.ErrorIs(t, err, context.Canceled)
}
