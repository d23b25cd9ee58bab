// Package shell provides the interactive front-end of the catalogue CLI.
package shell

import "fmt"

// IOFault reports an unreadable script or startup file. The operation
// that hit it aborts; the controller loop continues.
type IOFault struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOFault) Error() string {
	return fmt.Sprintf("io fault: %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOFault) Unwrap() error {
	return e.Err
}
