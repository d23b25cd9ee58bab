// Package command provides CLI command definitions for catalogue-cli.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive shell mode.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/cli/config"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/infra/buildinfo"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "catalogue-cli",
		Usage:   "recipe catalogue command-line front-end",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ShellCommand(),
			RunCommand(),
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.NewLoader(config.WithFile(c.String("config"))).Load()
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.Log.Level = c.String("log-level")
			}
			if c.IsSet("log-format") {
				cfg.Log.Format = c.String("log-format")
			}
			log := logger.New(logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: os.Stderr,
			})
			logger.SetDefault(log)
			c.App.Metadata["config"] = cfg
			c.App.Metadata["logger"] = log
			return nil
		},
		// No subcommand drops into the interactive shell.
		Action: func(c *cli.Context) error {
			return ShellCommand().Run(c)
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "configuration file path",
			EnvVars: []string{"CATALOGUE_CONFIG"},
			Value:   config.DefaultPath(),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Usage:   "minimum log level: debug, info, warn, error",
			EnvVars: []string{"CATALOGUE_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format: text, json",
			EnvVars: []string{"CATALOGUE_LOG_FORMAT"},
		},
	}
}

// Configuration retrieves the loaded configuration from context.
func Configuration(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata["config"].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// Log retrieves the application logger from context.
func Log(c *cli.Context) logger.Logger {
	if log, ok := c.App.Metadata["logger"].(logger.Logger); ok {
		return log
	}
	return logger.Default()
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
