// Package bundle collects the complete set of generated files for a project
// into one in-memory value an imperative shell can persist. This is part of
// the Functional Core - all functions are pure with no I/O.
package bundle

import (
	"github.com/phpdocker-io/generator/internal/core/compose"
	"github.com/phpdocker-io/generator/internal/core/project"
	"github.com/phpdocker-io/generator/internal/core/render"
)

// =============================================================================
// Types
// =============================================================================

// File is a single generated artifact addressed by its path relative to the
// project root.
type File struct {
	Path     string
	Contents []byte
}

// Bundle is the ordered set of generated files: compose file first, then the
// .docker/ support files, then the README pair. The order is fixed so
// archives and digests are deterministic.
type Bundle struct {
	Files []File
}

// =============================================================================
// Generation
// =============================================================================

// Generate runs the compose assembler and every renderer against opts and
// collects their output. It fails fast on the first error; generation is
// idempotent, so callers retry by calling again.
func Generate(opts project.Options) (*Bundle, error) {
	composeName, composeText, err := compose.Generate(opts)
	if err != nil {
		return nil, err
	}

	b := &Bundle{}
	b.add(composeName, []byte(composeText))

	renderers := []func(project.Options) (string, []byte, error){
		render.NginxConf,
		render.PHPFPMDockerfile,
		render.PHPIniOverrides,
		render.ReadmeMarkdown,
		render.ReadmeHTML,
	}
	for _, renderFile := range renderers {
		path, contents, err := renderFile(opts)
		if err != nil {
			return nil, err
		}
		b.add(path, contents)
	}

	return b, nil
}

func (b *Bundle) add(path string, contents []byte) {
	b.Files = append(b.Files, File{Path: path, Contents: contents})
}

// =============================================================================
// Accessors
// =============================================================================

// Paths returns the file paths in bundle order.
func (b *Bundle) Paths() []string {
	paths := make([]string, len(b.Files))
	for i, f := range b.Files {
		paths[i] = f.Path
	}
	return paths
}

// Get returns the file stored under path.
func (b *Bundle) Get(path string) (File, bool) {
	for _, f := range b.Files {
		if f.Path == path {
			return f, true
		}
	}
	return File{}, false
}

// TotalSize returns the summed content length in bytes.
func (b *Bundle) TotalSize() int64 {
	var total int64
	for _, f := range b.Files {
		total += int64(len(f.Contents))
	}
	return total
}
