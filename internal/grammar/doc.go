// Package grammar implements the argument grammar registry and parser
// engine for the catalogue CLI front-end.
//
// A Set holds argument definitions (flags, options, positionals and
// command words) in dual short/long form. A Parser scans a token list
// against a Set and produces a Result holding one parsed entry per
// registered definition plus an accumulated parse-error list:
//
//   - grammar.go: Definition, Kind, Set registration and lookup
//   - parser.go: Parser, Result, token scanning rules
//   - standard.go: the standard surface an embedding application exposes
//   - errors.go: GrammarError and ParseError
//
// Parsing never returns a Go error for bad input; callers inspect
// Result.Errors. Registration is the only operation that can fail.
package grammar
