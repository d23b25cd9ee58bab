// Package registry implements the command registry and dispatch boundary.
package registry

import (
	"fmt"
	"strings"
)

// NotFoundError reports a dispatch-time lookup miss. It may carry
// nearby command names as suggestions.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown command %q (did you mean: %s?)", e.Name, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

// ExecutionFault reports a panic caught at the dispatch boundary. The
// faulting command is named; the controller loop continues.
type ExecutionFault struct {
	Name  string
	Panic any
}

// Error implements the error interface.
func (e *ExecutionFault) Error() string {
	return fmt.Sprintf("command %q faulted: %v", e.Name, e.Panic)
}
