// Package registry implements the command registry and dispatch
// boundary of the shell.
//
// A Command descriptor carries a fixed capability set: describe
// (name, description, usage, aliases), execute and complete. The
// Registry maps case-folded names and aliases to shared descriptors
// and dispatches to them, converting panics inside a command into
// reported faults so the controller loop never dies on a bad command.
//
// Discovery and instantiation of command modules is the host's
// concern; the registry only consumes ready descriptors, either one
// by one via Register or in bulk through a Provider.
package registry
