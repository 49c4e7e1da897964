package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// starterConfig is the commented phpdocker.yml written by the init command.
// Version-like values stay quoted so they survive YAML as strings.
const starterConfig = `# phpdocker project configuration.
# Every setting can also be supplied as a PHPDOCKER_* environment variable,
# e.g. PHPDOCKER_PROJECT_BASE_PORT=9000.

project:
    name: myproject
    base_port: 8080
    app_path: .
    working_dir: /application

php:
    version: 8.3.x
    extensions: []

services:
    mailhog:
        enabled: false

    database:
        enabled: false
        engine: mysql # mysql, mariadb or postgres
        version: "8.0"
        root_password: ""
        name: ""
        username: ""
        password: ""

    elasticsearch:
        enabled: false
        version: 7.17.0

    redis:
        enabled: false
        version: latest

    memcached:
        enabled: false
        version: latest

output:
    dir: .

log:
    level: info
    format: text
`

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter phpdocker.yml",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "phpdocker.yml"
	if cfgFile != "" {
		path = cfgFile
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return &CommandError{
				Op:       "init",
				Err:      fmt.Errorf("%s already exists (use --force to overwrite)", path),
				ExitCode: ExitWriteError,
			}
		}
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		return &CommandError{Op: "init", Err: err, ExitCode: ExitWriteError}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
