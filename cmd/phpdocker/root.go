package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess         = 0
	ExitConfigError     = 1
	ExitValidationError = 2
	ExitGenerationError = 3
	ExitWriteError      = 4
)

// =============================================================================
// Command Errors
// =============================================================================

// CommandError wraps an error with the exit code the process should end
// with. Commands return one from RunE after logging the details; Execute
// maps it back to the process exit code.
type CommandError struct {
	Op       string
	Err      error
	ExitCode int
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Root Command
// =============================================================================

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "phpdocker",
	Short: "Generate Docker environments for PHP projects",
	Long: `phpdocker turns a small YAML description of a PHP project into a complete
Docker environment: a docker-compose file, an nginx vhost, a PHP-FPM image
definition with php.ini overrides, and a README describing the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			// The command already logged the details.
			return cmdErr.ExitCode
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitConfigError
	}
	return ExitSuccess
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./phpdocker.yml)")
}
