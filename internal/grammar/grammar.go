// Package grammar implements the argument grammar registry and parser engine.
package grammar

import (
	"fmt"
	"strings"
)

// Kind classifies how a definition is written on the command line.
type Kind int

const (
	// KindFlag is a boolean argument; presence alone sets it true.
	KindFlag Kind = iota
	// KindOption is an argument requiring an associated value.
	KindOption
	// KindPositional is an argument with no leading marker, consumed
	// in encounter order.
	KindPositional
	// KindCommand is a bare word naming a sub-operation.
	KindCommand
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	case KindCommand:
		return "command"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Definition describes one argument: its unique name, optional short
// and long forms, kind, default value and an optional finite set of
// accepted values.
type Definition struct {
	Name        string
	Short       string // single character, written as -x
	Long        string // written as --long
	Kind        Kind
	Required    bool
	Description string
	Default     string
	Allowed     []string // empty means unconstrained
}

// allows reports whether v is acceptable under the Allowed set.
func (d *Definition) allows(v string) bool {
	if len(d.Allowed) == 0 {
		return true
	}
	for _, a := range d.Allowed {
		if a == v {
			return true
		}
	}
	return false
}

// Set is the argument grammar registry. Definitions are kept in
// registration order; short and long forms resolve independently.
type Set struct {
	defs    []*Definition
	byName  map[string]*Definition
	byShort map[string]*Definition
	byLong  map[string]*Definition
}

// NewSet returns an empty grammar set.
func NewSet() *Set {
	return &Set{
		byName:  make(map[string]*Definition),
		byShort: make(map[string]*Definition),
		byLong:  make(map[string]*Definition),
	}
}

// Register adds a definition to the set. It returns a GrammarError if
// the name, short form or long form is already registered, or if the
// short form is not a single character.
func (s *Set) Register(def Definition) error {
	if def.Name == "" {
		return &GrammarError{Name: def.Name, Reason: "definition name is empty"}
	}
	if _, ok := s.byName[def.Name]; ok {
		return &GrammarError{Name: def.Name, Reason: "duplicate definition name"}
	}
	if def.Short != "" {
		if len(def.Short) != 1 {
			return &GrammarError{Name: def.Name, Reason: fmt.Sprintf("short form %q is not a single character", def.Short)}
		}
		if _, ok := s.byShort[def.Short]; ok {
			return &GrammarError{Name: def.Name, Reason: fmt.Sprintf("short form -%s already registered", def.Short)}
		}
	}
	if def.Long != "" {
		if _, ok := s.byLong[def.Long]; ok {
			return &GrammarError{Name: def.Name, Reason: fmt.Sprintf("long form --%s already registered", def.Long)}
		}
	}

	d := def
	s.defs = append(s.defs, &d)
	s.byName[d.Name] = &d
	if d.Short != "" {
		s.byShort[d.Short] = &d
	}
	if d.Long != "" {
		s.byLong[d.Long] = &d
	}
	return nil
}

// MustRegister is Register that panics on error. Intended for static
// grammar construction at startup.
func (s *Set) MustRegister(def Definition) {
	if err := s.Register(def); err != nil {
		panic(err)
	}
}

// Lookup resolves a definition by its unique name.
func (s *Set) Lookup(name string) (*Definition, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Definitions returns all definitions in registration order.
func (s *Set) Definitions() []*Definition {
	return s.defs
}

// Len returns the number of registered definitions.
func (s *Set) Len() int {
	return len(s.defs)
}

// commandFor resolves a bare token against Command-kind definitions,
// case-folded.
func (s *Set) commandFor(token string) (*Definition, bool) {
	d, ok := s.byName[strings.ToLower(token)]
	if !ok || d.Kind != KindCommand {
		return nil, false
	}
	return d, true
}
