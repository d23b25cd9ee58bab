// Package grammar implements the argument grammar registry and parser engine.
package grammar

// Format values accepted by the standard surface.
var Formats = []string{"json", "xml", "csv", "binary"}

// Role values accepted by the standard surface.
var Roles = []string{"admin", "editor", "viewer"}

// LogLevels accepted by the standard surface.
var LogLevels = []string{"debug", "info", "warn", "error"}

// StandardSet builds the argument surface an embedding application is
// expected to expose: help/verbose/version flags, path options for
// input, output, config and plugin directory, enumerated format, role
// and log-level options, and a batch-mode flag. The exact names are
// configuration, not invariant; embedders may register their own sets.
func StandardSet() *Set {
	s := NewSet()
	s.MustRegister(Definition{Name: "help", Short: "h", Long: "help", Kind: KindFlag, Description: "show usage information"})
	s.MustRegister(Definition{Name: "verbose", Short: "v", Long: "verbose", Kind: KindFlag, Description: "enable verbose output"})
	s.MustRegister(Definition{Name: "version", Short: "V", Long: "version", Kind: KindFlag, Description: "print version and exit"})
	s.MustRegister(Definition{Name: "input", Short: "i", Long: "input", Kind: KindOption, Description: "input file path"})
	s.MustRegister(Definition{Name: "output", Short: "o", Long: "output", Kind: KindOption, Description: "output file path"})
	s.MustRegister(Definition{Name: "config", Short: "c", Long: "config", Kind: KindOption, Description: "configuration file path"})
	s.MustRegister(Definition{Name: "plugin-dir", Short: "p", Long: "plugin-dir", Kind: KindOption, Description: "command module directory"})
	s.MustRegister(Definition{Name: "format", Short: "f", Long: "format", Kind: KindOption, Default: "json", Allowed: Formats, Description: "serialization format"})
	s.MustRegister(Definition{Name: "role", Short: "r", Long: "role", Kind: KindOption, Default: "viewer", Allowed: Roles, Description: "session role"})
	s.MustRegister(Definition{Name: "batch", Short: "b", Long: "batch", Kind: KindFlag, Description: "run in batch mode"})
	s.MustRegister(Definition{Name: "log-level", Short: "l", Long: "log-level", Kind: KindOption, Default: "info", Allowed: LogLevels, Description: "minimum log level"})
	return s
}
