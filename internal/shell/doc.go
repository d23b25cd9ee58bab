// Package shell provides the interactive front-end of the catalogue
// CLI: the line editor, the completion engine and the controller loop
// that turns submitted text into command dispatches.
//
//   - shell.go: controller loop (substitute, alias-resolve, tokenize,
//     record history, resolve, dispatch)
//   - editor.go: per-keystroke input state machine with full-line
//     rewrite rendering
//   - completer.go: command-name and per-command argument completion
//   - script.go: batch execution of command files and the startup
//     pre-seed file
//   - terminal.go: raw-mode handling with graceful non-TTY fallback
//
// The whole package is single-threaded and cooperative: one controller
// goroutine owns the editor, the session and the registries. The only
// cancellation primitive is the exit command flipping the session's
// running flag, checked once per loop iteration.
package shell
