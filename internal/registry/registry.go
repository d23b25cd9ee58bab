// Package registry implements the command registry and dispatch boundary.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
)

// maxSuggestions caps the "did you mean" list on a lookup miss.
const maxSuggestions = 3

// suggestionDistance is the largest edit distance still offered as a
// suggestion.
const suggestionDistance = 2

// Registry is the name/alias lookup table for command descriptors.
// A descriptor's name and every alias become separate case-folded keys
// referencing the same descriptor, so alias lookups share state with
// the primary name rather than copying it.
//
// The registry is mutated only by the controller goroutine and is not
// safe for concurrent use.
type Registry struct {
	commands  map[string]Command
	providers []Provider
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register inserts a descriptor under its name and all aliases. It
// fails if any key is already taken.
func (r *Registry) Register(cmd Command) error {
	keys := append([]string{cmd.Name()}, cmd.Aliases()...)
	folded := make([]string, 0, len(keys))
	for _, k := range keys {
		key := strings.ToLower(k)
		if key == "" {
			return fmt.Errorf("register %q: empty key", cmd.Name())
		}
		if existing, ok := r.commands[key]; ok {
			return fmt.Errorf("register %q: key %q already bound to %q", cmd.Name(), key, existing.Name())
		}
		folded = append(folded, key)
	}
	for _, key := range folded {
		r.commands[key] = cmd
	}
	return nil
}

// AddProvider registers every descriptor the provider yields and runs
// its Initialize hook. The provider's Cleanup hook runs on
// Registry.Cleanup.
func (r *Registry) AddProvider(p Provider, s *session.Session) error {
	for _, cmd := range p.Commands() {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	if err := p.Initialize(s); err != nil {
		return fmt.Errorf("initialize provider: %w", err)
	}
	r.providers = append(r.providers, p)
	return nil
}

// Cleanup runs the Cleanup hook of every registered provider and
// returns the first failure.
func (r *Registry) Cleanup() error {
	var first error
	for _, p := range r.providers {
		if err := p.Cleanup(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Resolve looks up a descriptor by case-folded token. A miss returns a
// NotFoundError carrying nearby names.
func (r *Registry) Resolve(token string) (Command, error) {
	key := strings.ToLower(token)
	if cmd, ok := r.commands[key]; ok {
		return cmd, nil
	}
	return nil, &NotFoundError{Name: token, Suggestions: r.suggest(key)}
}

// Dispatch invokes the descriptor's execute capability. A panic inside
// the command is caught here and returned as an ExecutionFault; ok
// reports the command's own success flag.
func (r *Registry) Dispatch(cmd Command, args []string, s *session.Session) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = &ExecutionFault{Name: cmd.Name(), Panic: rec}
		}
	}()
	return cmd.Execute(args, s), nil
}

// Keys returns every registered key (names and aliases), unsorted.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.commands))
	for k := range r.commands {
		out = append(out, k)
	}
	return out
}

// Commands returns the distinct registered descriptors sorted by name.
func (r *Registry) Commands() []Command {
	seen := make(map[string]Command)
	for _, cmd := range r.commands {
		seen[cmd.Name()] = cmd
	}
	out := make([]Command, 0, len(seen))
	for _, cmd := range seen {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// suggest returns up to maxSuggestions keys within edit distance
// suggestionDistance of the missed token, nearest first.
func (r *Registry) suggest(token string) []string {
	type scored struct {
		key  string
		dist int
	}
	var near []scored
	for key := range r.commands {
		if d := levenshtein.ComputeDistance(token, key); d <= suggestionDistance {
			near = append(near, scored{key, d})
		}
	}
	sort.Slice(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].key < near[j].key
	})
	if len(near) > maxSuggestions {
		near = near[:maxSuggestions]
	}
	out := make([]string, len(near))
	for i, s := range near {
		out[i] = s.key
	}
	return out
}
