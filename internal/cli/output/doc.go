// Package output provides output formatting for the catalogue CLI.
//
// It carries a small tabwriter-backed table renderer plus a JSON
// fallback, used by the help and stats commands.
package output
