// Package builtin carries the commands every shell session starts with.
package builtin

import (
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/registry"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/telemetry/metric"
)

// Deps is what the builtins borrow from the shell that owns them.
type Deps struct {
	Registry  *registry.Registry
	Metrics   *metric.Metrics
	RunScript func(path string) error
}

// All returns the built-in descriptors in registration order.
func All(d Deps) []registry.Command {
	return []registry.Command{
		helpCommand(d.Registry),
		historyCommand(d.Metrics),
		aliasCommand(),
		unaliasCommand(),
		setCommand(),
		unsetCommand(),
		statsCommand(d.Metrics),
		sourceCommand(d.RunScript, d.Metrics),
		exitCommand(),
	}
}

// command is the capability record implementing registry.Command.
// Builtins share this one type instead of a type per command.
type command struct {
	name        string
	description string
	usage       string
	aliases     []string
	exec        func(args []string, s *session.Session) bool
	complete    func(args []string, current int) []string
}

func (c *command) Name() string        { return c.name }
func (c *command) Description() string { return c.description }
func (c *command) Usage() string       { return c.usage }
func (c *command) Aliases() []string   { return c.aliases }

func (c *command) Execute(args []string, s *session.Session) bool {
	return c.exec(args, s)
}

func (c *command) Complete(args []string, current int) []string {
	if c.complete == nil {
		return nil
	}
	return c.complete(args, current)
}
