package writer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/phpdocker-io/generator/internal/core/bundle"
	"github.com/phpdocker-io/generator/internal/core/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Fixtures
// =============================================================================

func testBundle(t *testing.T) *bundle.Bundle {
	t.Helper()
	opts := project.Options{
		BasePort:   8080,
		Name:       "mysite",
		AppPath:    ".",
		WorkingDir: "/application",
		PHP:        project.PHPOptions{Version: "8.3.x"},
	}
	b, err := bundle.Generate(opts)
	require.NoError(t, err)
	return b
}

// =============================================================================
// Write Tests
// =============================================================================

func TestWrite_RoundTrip(t *testing.T) {
	b := testBundle(t)
	dir := t.TempDir()

	err := NewWriter(nil).Write(context.Background(), b, dir)
	require.NoError(t, err)

	for _, f := range b.Files {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Path)))
		require.NoError(t, err, "file %s should exist", f.Path)
		assert.Equal(t, f.Contents, got, "file %s contents", f.Path)
	}
}

func TestWrite_CreatesNestedDirectories(t *testing.T) {
	b := testBundle(t)
	dir := t.TempDir()

	err := NewWriter(nil).Write(context.Background(), b, dir)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, ".docker", "php-fpm"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWrite_CancelledContext(t *testing.T) {
	b := testBundle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriter(nil).Write(ctx, b, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrite_Idempotent(t *testing.T) {
	b := testBundle(t)
	dir := t.TempDir()
	w := NewWriter(nil)

	require.NoError(t, w.Write(context.Background(), b, dir))
	require.NoError(t, w.Write(context.Background(), b, dir))

	got, err := os.ReadFile(filepath.Join(dir, "docker-compose.yml"))
	require.NoError(t, err)
	assert.Equal(t, b.Files[0].Contents, got)
}
