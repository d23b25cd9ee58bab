// Package grammar implements the argument grammar registry and parser engine.
package grammar

import "fmt"

// GrammarError reports an invalid registration, such as a duplicate
// definition name or a reused short/long form. It is fatal only to the
// registration call that produced it.
type GrammarError struct {
	Name   string // definition name being registered
	Reason string
}

// Error implements the error interface.
func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar: %s: %s", e.Name, e.Reason)
}

// ParseError reports a single problem found while scanning a token
// list: an unknown flag or option, a missing or invalid value, or a
// required argument that never appeared. Parse accumulates these in
// the Result instead of returning them.
type ParseError struct {
	Arg    string // definition name, if resolved
	Token  string // offending token text
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("parse: %s (%q)", e.Reason, e.Token)
	}
	return fmt.Sprintf("parse: %s", e.Reason)
}
