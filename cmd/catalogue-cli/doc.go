// Package main provides the entry point for catalogue-cli.
//
// The CLI tool is the interactive front-end of the recipe catalogue:
//
//   - Interactive shell with line editing, history recall and tab
//     completion
//   - Session state: variables, aliases, persisted history
//   - Script execution (run, source) with the same command pipeline
//   - Dual short/long argument grammar for trailing arguments
//
// Usage:
//
//	catalogue-cli [command] [flags]
//	catalogue-cli shell -v --format xml
//	catalogue-cli run setup.cat
//
// With no command the CLI drops into the interactive shell.
package main
