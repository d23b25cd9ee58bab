// Package shell provides the interactive front-end of the catalogue CLI.
package shell

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MakeRaw switches f into raw mode so the editor sees one byte per
// keystroke. The returned func restores the previous state.
func MakeRaw(f *os.File) (restore func(), err error) {
	old, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(int(f.Fd()), old) }, nil
}
