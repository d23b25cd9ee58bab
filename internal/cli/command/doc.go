// Package command provides CLI command definitions for catalogue-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: root command, global flags, config and logger setup
//   - shell.go: interactive shell mode, standard grammar arguments
//   - run.go: non-interactive script execution
//
// Global flags configure the ambient machinery (config file, logging).
// Arguments after the shell command are parsed with the dual
// short/long grammar engine instead of urfave's flag handling.
package command
