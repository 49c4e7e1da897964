// Package render produces the supporting files of a generated environment:
// the Nginx vhost, the php-fpm Dockerfile, the PHP override ini and the
// README pair. This is part of the Functional Core - all functions are pure
// with no I/O; templates are consts parsed at init.
package render

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrTemplateFailed covers template execution failures.
	ErrTemplateFailed = errors.New("cannot execute template")

	// ErrMarkdownFailed covers markdown-to-HTML conversion failures.
	ErrMarkdownFailed = errors.New("cannot convert markdown")
)

// RenderError wraps errors with the output path being rendered.
type RenderError struct {
	Path    string // e.g., ".docker/nginx/nginx.conf"
	Message string
	Err     error
}

func (e *RenderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(path, message string, err error) *RenderError {
	return &RenderError{
		Path:    path,
		Message: message,
		Err:     err,
	}
}
