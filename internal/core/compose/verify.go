package compose

import (
	"context"
	"sort"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Verifier Functions
// =============================================================================

// VerifyRendered loads rendered compose text back through the compose-go
// loader and checks the two always-present services survived the round trip.
// This is a pure function - no I/O, no side effects.
// Input: rendered YAML text and the service-name prefix it was built with
// Output: nil, or the first verification error
func VerifyRendered(yamlText, prefix string) error {
	if strings.TrimSpace(yamlText) == "" {
		return ErrEmptyInput
	}

	project, err := loadRendered(yamlText)
	if err != nil {
		return err
	}

	if len(project.Services) == 0 {
		return ErrNoServices
	}

	for _, name := range []string{prefix + "-webserver", prefix + "-php-fpm"} {
		if _, ok := project.Services[name]; !ok {
			return NewVerifyError(name, "service missing from rendered document", ErrServiceMissing)
		}
	}

	return nil
}

// ParseRendered loads rendered compose text and returns the service names it
// defines, sorted. Used for post-generation summaries.
func ParseRendered(yamlText string) ([]string, error) {
	if strings.TrimSpace(yamlText) == "" {
		return nil, ErrEmptyInput
	}

	project, err := loadRendered(yamlText)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(project.Services))
	for name := range project.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// loadRendered loads rendered text using compose-go
func loadRendered(yamlText string) (*types.Project, error) {
	// Parse YAML into a map first
	var dict map[string]interface{}
	if err := yaml.Unmarshal([]byte(yamlText), &dict); err != nil {
		return nil, NewVerifyError("", "invalid YAML syntax", ErrInvalidYAML)
	}

	// Check if it's a valid object
	if dict == nil {
		return nil, NewVerifyError("", "invalid YAML syntax", ErrInvalidYAML)
	}

	// Load the project
	project, err := loader.LoadWithContext(context.Background(), types.ConfigDetails{
		ConfigFiles: []types.ConfigFile{
			{
				Content: []byte(yamlText),
				Config:  dict,
			},
		},
	}, func(opts *loader.Options) {
		opts.SetProjectName("phpdocker-verify", false)
		opts.SkipValidation = false
		// Generated values are literal; a "$" in a password must survive
		opts.SkipInterpolation = true
		// Don't resolve paths since we're in-memory
		opts.SkipNormalization = true
		opts.SkipExtends = true // Don't try to load external files
	})
	if err != nil {
		return nil, NewVerifyError("", err.Error(), ErrInvalidYAML)
	}

	return project, nil
}
