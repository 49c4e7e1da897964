package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpdocker-io/generator/internal/core/project"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the project configuration without generating anything",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return &CommandError{Op: "validate", Err: err, ExitCode: ExitConfigError}
	}
	logger := SetupLogger(cfg)

	opts := cfg.ToOptions()
	if errs := opts.Validate(); len(errs) > 0 {
		for _, vErr := range errs {
			logger.Error("invalid project configuration", "error", vErr)
		}
		return &CommandError{
			Op:       "validate",
			Err:      fmt.Errorf("%d validation error(s)", len(errs)),
			ExitCode: ExitValidationError,
		}
	}

	logger.Info("configuration valid",
		"project", opts.Name,
		"php", opts.PHP.Version,
		"services", enabledServices(opts),
	)
	return nil
}

// enabledServices lists the optional services the project enables, with the
// database reported by engine name.
func enabledServices(opts *project.Options) []string {
	var names []string
	if opts.Mailhog != nil {
		names = append(names, "mailhog")
	}
	if opts.Database != nil {
		names = append(names, string(opts.Database.Engine))
	}
	if opts.Elasticsearch != nil {
		names = append(names, "elasticsearch")
	}
	if opts.Redis != nil {
		names = append(names, "redis")
	}
	if opts.Memcached != nil {
		names = append(names, "memcached")
	}
	return names
}
