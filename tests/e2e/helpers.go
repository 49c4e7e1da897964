// Package e2e provides end-to-end tests for the phpdocker generator.
//
// These tests exercise the full pipeline against a real filesystem: project
// options in, bundle generated, files written to a temp directory and read
// back. No external services are required. Run with:
//
//	go test -v ./tests/e2e/...
package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phpdocker-io/generator/internal/core/bundle"
	"github.com/phpdocker-io/generator/internal/core/compose"
	"github.com/phpdocker-io/generator/internal/core/project"
	"github.com/phpdocker-io/generator/internal/shell/writer"
)

// =============================================================================
// Pipeline Helpers
// =============================================================================

// GenerateAndWrite runs the whole pipeline for the given options and returns
// the directory the environment was written into.
func GenerateAndWrite(t *testing.T, opts *project.Options) (string, *bundle.Bundle) {
	t.Helper()

	require.Empty(t, opts.Validate(), "scenario options must be valid")

	b, err := bundle.Generate(*opts)
	require.NoError(t, err)

	dir := t.TempDir()
	w := writer.NewWriter(nil)
	require.NoError(t, w.Write(context.Background(), b, dir))

	return dir, b
}

// ReadGenerated reads a generated file back from disk.
func ReadGenerated(t *testing.T, dir, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// VerifyCompose loads the written compose file back through the compose-spec
// loader and checks the core services exist for the prefix.
func VerifyCompose(t *testing.T, dir, prefix string) {
	t.Helper()

	text := ReadGenerated(t, dir, compose.Filename)
	require.NoError(t, compose.VerifyRendered(text, prefix))
}

// ServiceNames parses the written compose file and returns its service
// names, sorted.
func ServiceNames(t *testing.T, dir string) []string {
	t.Helper()

	text := ReadGenerated(t, dir, compose.Filename)
	names, err := compose.ParseRendered(text)
	require.NoError(t, err)
	return names
}

// =============================================================================
// Scenario Options
// =============================================================================

// MinimalOptions is the smallest valid project: PHP and the two core
// services, nothing optional.
func MinimalOptions(name string) *project.Options {
	return project.NewOptions(name)
}

// WordPressOptions models a typical WordPress project: MySQL for content,
// MailHog to catch outgoing mail, and the extensions WordPress needs.
func WordPressOptions() *project.Options {
	opts := project.NewOptions("wordpress")
	opts.PHP = project.PHPOptions{
		Version:    "8.2.x",
		Extensions: []string{"mysql", "gd"},
	}
	opts.Mailhog = &project.MailhogOptions{}
	opts.Database = &project.DatabaseOptions{
		Engine:       project.EngineMySQL,
		Version:      "8.0",
		RootPassword: "wp_root",
		Name:         "wordpress",
		Username:     "wp_user",
		Password:     "wp_pass",
	}
	return opts
}

// APIPlatformOptions models an API backend: Postgres, Elasticsearch for
// search and Redis for caching.
func APIPlatformOptions() *project.Options {
	opts := project.NewOptions("storefront-api")
	opts.PHP = project.PHPOptions{
		Version:    "8.3.x",
		Extensions: []string{"pgsql"},
	}
	opts.Database = &project.DatabaseOptions{
		Engine:   project.EnginePostgres,
		Version:  "16",
		Name:     "storefront",
		Username: "api",
		Password: "api_secret",
	}
	opts.Elasticsearch = &project.ElasticsearchOptions{Version: "7.17.0"}
	opts.Redis = &project.RedisOptions{Version: "7.2"}
	return opts
}
