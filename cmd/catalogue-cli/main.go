// Package main provides the entry point for catalogue-cli.
//
// catalogue-cli is the command-line front-end of the recipe catalogue,
// supporting both single-command mode and interactive shell mode.
package main

import (
	"fmt"
	"os"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
