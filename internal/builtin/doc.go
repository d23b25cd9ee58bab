// Package builtin carries the commands every catalogue shell session
// starts with: help, history, alias and variable management, stats,
// script sourcing and exit.
//
// Each builtin is a plain capability record (name, description,
// usage, aliases, execute and complete) registered like any externally
// supplied descriptor. Builtins that take arguments parse them with
// their own grammar set, so argument errors surface the same way they
// would for host commands.
package builtin
