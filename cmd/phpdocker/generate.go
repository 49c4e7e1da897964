package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phpdocker-io/generator/internal/core/bundle"
	"github.com/phpdocker-io/generator/internal/core/compose"
	"github.com/phpdocker-io/generator/internal/core/project"
	"github.com/phpdocker-io/generator/internal/shell/writer"
)

var (
	outputDir    string
	zipTarget    string
	verifyOutput bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Docker environment",
	Long: `Generate reads the project configuration, assembles the docker-compose
document and its supporting files, and writes them to the output directory
or to a zip archive.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to write into (default is output.dir from config)")
	generateCmd.Flags().StringVar(&zipTarget, "zip", "", "write a zip archive to this path instead of loose files")
	generateCmd.Flags().BoolVar(&verifyOutput, "verify", false, "load the rendered compose file back through the compose-spec loader")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return &CommandError{Op: "generate", Err: err, ExitCode: ExitConfigError}
	}
	logger := SetupLogger(cfg)

	opts := cfg.ToOptions()
	if errs := opts.Validate(); len(errs) > 0 {
		for _, vErr := range errs {
			logger.Error("invalid project configuration", "error", vErr)
		}
		return &CommandError{
			Op:       "generate",
			Err:      fmt.Errorf("%d validation error(s)", len(errs)),
			ExitCode: ExitValidationError,
		}
	}

	b, err := bundle.Generate(*opts)
	if err != nil {
		logger.Error("generation failed", "error", err)
		return &CommandError{Op: "generate", Err: err, ExitCode: ExitGenerationError}
	}

	if verifyOutput {
		if err := verifyBundle(b, opts); err != nil {
			logger.Error("compose verification failed", "error", err)
			return &CommandError{Op: "generate", Err: err, ExitCode: ExitGenerationError}
		}
		logger.Debug("compose file verified", "file", compose.Filename)
	}

	w := writer.NewWriter(logger)
	ctx := context.Background()

	if zipTarget != "" {
		zipPath := resolveZipPath(zipTarget, opts.Slug())
		if err := w.WriteArchive(ctx, b, zipPath); err != nil {
			logger.Error("archive write failed", "error", err, "path", zipPath)
			return &CommandError{Op: "generate", Err: err, ExitCode: ExitWriteError}
		}
	} else {
		dir := outputDir
		if dir == "" {
			dir = cfg.Output.Dir
		}
		if err := w.Write(ctx, b, dir); err != nil {
			logger.Error("write failed", "error", err, "dir", dir)
			return &CommandError{Op: "generate", Err: err, ExitCode: ExitWriteError}
		}
	}

	logger.Info("environment generated",
		"project", opts.Name,
		"files", len(b.Files),
		"digest", b.Digest(),
	)
	return nil
}

// verifyBundle loads the rendered compose file back through the compose-spec
// loader and checks the core services are present.
func verifyBundle(b *bundle.Bundle, opts *project.Options) error {
	f, ok := b.Get(compose.Filename)
	if !ok {
		return fmt.Errorf("%s missing from bundle", compose.Filename)
	}
	return compose.VerifyRendered(string(f.Contents), opts.ServicePrefix())
}

// resolveZipPath turns the --zip argument into a concrete file path. A
// target ending in a slash is a directory; the archive name inside it is
// derived from the project slug.
func resolveZipPath(target, slug string) string {
	if strings.HasSuffix(target, "/") {
		return filepath.Join(target, slug+".zip")
	}
	return target
}
