// Package logger provides structured logging for the catalogue CLI.
//
// It wraps the standard library log/slog behind a small interface so
// the rest of the code never touches a concrete handler:
//
//   - JSON structured logging by default, text for terminals
//   - Dynamic log level via a shared LevelVar
//   - A process-wide default logger for packages without injection
package logger
