package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/cli/output"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/grammar"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/shell"
)

// ShellCommand creates the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:      "shell",
		Usage:     "start the interactive shell",
		ArgsUsage: "[arguments]",
		Description: "Arguments after the command name are parsed against the\n" +
			"standard grammar: -h/--help, -v/--verbose, -V/--version,\n" +
			"-i/--input, -o/--output, -f/--format, -r/--role, -b/--batch\n" +
			"and friends. Short flags cluster (-vb) and long options take\n" +
			"--name value or --name=value.",
		// Everything after "shell" belongs to the grammar parser, not
		// urfave's flag handling.
		SkipFlagParsing: true,
		Action:          runShell,
	}
}

func runShell(c *cli.Context) error {
	cfg := Configuration(c)
	log := Log(c)

	set := grammar.StandardSet()
	r := grammar.NewParser(set).Parse(c.Args().Slice())
	for _, pe := range r.Errors {
		PrintError("%v", pe)
	}

	if r.Bool("version") {
		fmt.Fprintln(c.App.Writer, c.App.Version)
		return nil
	}
	if r.Bool("help") {
		return printGrammarUsage(c, set)
	}

	if r.Bool("verbose") {
		cfg.Log.Level = "debug"
	}
	if r.Bool("log-level") {
		cfg.Log.Level = r.String("log-level")
	}
	if r.Bool("plugin-dir") {
		cfg.Plugin.Dir = r.String("plugin-dir")
	}

	sh, err := shell.New(cfg, log)
	if err != nil {
		return err
	}

	// The enumerated options become session variables so commands and
	// scripts can reference $format and $role directly.
	sess := sh.Session()
	sess.SetVar("format", r.String("format"))
	sess.SetVar("role", r.String("role"))

	if r.Bool("output") {
		f, err := os.Create(r.String("output"))
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		sh.SetStreams(os.Stdin, f, os.Stderr)
	}

	if r.Bool("batch") {
		if !r.Bool("input") {
			return fmt.Errorf("batch mode requires --input FILE")
		}
		log.Info("running batch script", "file", r.String("input"))
		return sh.RunScript(r.String("input"))
	}

	log.Debug("starting interactive shell",
		"session", sess.ID,
		"history_file", cfg.History.File,
	)
	return sh.Run()
}

// printGrammarUsage renders the standard argument surface as a table.
func printGrammarUsage(c *cli.Context, set *grammar.Set) error {
	fmt.Fprintf(c.App.Writer, "usage: %s shell [arguments]\n\n", c.App.Name)
	tbl := output.NewTable("argument", "kind", "description")
	for _, def := range set.Definitions() {
		var forms []string
		if def.Short != "" {
			forms = append(forms, "-"+def.Short)
		}
		if def.Long != "" {
			forms = append(forms, "--"+def.Long)
		}
		desc := def.Description
		if len(def.Allowed) > 0 {
			desc += fmt.Sprintf(" (%s)", strings.Join(def.Allowed, "|"))
		}
		tbl.AddRow(strings.Join(forms, ", "), def.Kind.String(), desc)
	}
	return tbl.Render(c.App.Writer)
}
