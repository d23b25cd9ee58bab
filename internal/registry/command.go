// Package registry implements the command registry and dispatch boundary.
package registry

import (
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
)

// Command is the capability contract every externally supplied command
// descriptor must satisfy.
type Command interface {
	// Name is the unique primary lookup key.
	Name() string
	// Description is a one-line summary shown by help.
	Description() string
	// Usage is the invocation synopsis shown by help.
	Usage() string
	// Aliases are additional lookup keys resolving to this descriptor.
	Aliases() []string
	// Execute runs the command with its raw argument words. It returns
	// false to report a command-level failure; the controller loop
	// continues either way.
	Execute(args []string, s *session.Session) bool
	// Complete returns candidate completions given the already-typed
	// argument words and the index of the word being completed.
	Complete(args []string, current int) []string
}

// Provider yields a batch of ready command descriptors plus lifecycle
// hooks. Module discovery and loading happen on the host side; the
// shell core only sees the finished descriptors.
type Provider interface {
	Commands() []Command
	Initialize(s *session.Session) error
	Cleanup() error
}
