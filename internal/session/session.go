// Package session holds the per-session state of the interactive shell.
package session

import (
	"io"
	"os"

	"github.com/oklog/ulid/v2"
)

// DefaultPrompt is used when no prompt is configured.
const DefaultPrompt = "catalogue> "

// Session is the state of one interactive shell session.
type Session struct {
	// ID is a ULID assigned at session start.
	ID string
	// Prompt is the text printed before each input line.
	Prompt string
	// History is the ordered log of submitted lines.
	History *History

	// Out and Err are where commands and the controller write.
	Out io.Writer
	Err io.Writer

	running bool

	varNames []string // insertion order
	vars     map[string]string
	aliases  map[string]string
}

// New creates a running session with an empty history, variable and
// alias state.
func New() *Session {
	return &Session{
		ID:      ulid.Make().String(),
		Prompt:  DefaultPrompt,
		History: NewHistory(),
		Out:     os.Stdout,
		Err:     os.Stderr,
		running: true,
		vars:    make(map[string]string),
		aliases: make(map[string]string),
	}
}

// Running reports whether the controller loop should continue.
func (s *Session) Running() bool {
	return s.running
}

// Stop flips the running flag. The controller checks it once per loop
// iteration; there is no mid-command preemption.
func (s *Session) Stop() {
	s.running = false
}

// SetVar defines or updates a variable. First definition fixes the
// name's position in the insertion order.
func (s *Session) SetVar(name, value string) {
	if _, ok := s.vars[name]; !ok {
		s.varNames = append(s.varNames, name)
	}
	s.vars[name] = value
}

// UnsetVar removes a variable definition.
func (s *Session) UnsetVar(name string) {
	if _, ok := s.vars[name]; !ok {
		return
	}
	delete(s.vars, name)
	for i, n := range s.varNames {
		if n == name {
			s.varNames = append(s.varNames[:i], s.varNames[i+1:]...)
			break
		}
	}
}

// Var returns a variable's value.
func (s *Session) Var(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// VarNames returns variable names in insertion order.
func (s *Session) VarNames() []string {
	out := make([]string, len(s.varNames))
	copy(out, s.varNames)
	return out
}

// SetAlias defines or replaces an alias.
func (s *Session) SetAlias(name, expansion string) {
	s.aliases[name] = expansion
}

// UnsetAlias removes an alias definition.
func (s *Session) UnsetAlias(name string) {
	delete(s.aliases, name)
}

// Alias returns an alias's expansion text.
func (s *Session) Alias(name string) (string, bool) {
	v, ok := s.aliases[name]
	return v, ok
}

// Aliases returns a copy of the alias map.
func (s *Session) Aliases() map[string]string {
	out := make(map[string]string, len(s.aliases))
	for k, v := range s.aliases {
		out[k] = v
	}
	return out
}
