// Package session holds the mutable state of one interactive shell
// session: the identifier, prompt, running flag, command history,
// alias map and ordered variable store, together with the variable
// and alias substitution rules applied to raw input before tokenizing.
//
// A Session is created at shell start, mutated only by the single
// controller goroutine, and discarded at process exit. Nothing in this
// package locks; an extension exposing a Session across goroutines
// must add explicit synchronization first.
package session
