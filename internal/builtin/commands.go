package builtin

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/cli/output"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/grammar"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/registry"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/telemetry/metric"
)

// reportParseErrors prints accumulated parse errors and bumps the
// counter. It reports whether any error was present.
func reportParseErrors(r *grammar.Result, s *session.Session, m *metric.Metrics) bool {
	if r.Valid() {
		return false
	}
	for _, pe := range r.Errors {
		fmt.Fprintln(s.Err, pe)
		if m != nil {
			m.ParseErrors.Inc()
		}
	}
	return true
}

func helpCommand(reg *registry.Registry) registry.Command {
	return &command{
		name:        "help",
		description: "list commands or show usage for one command",
		usage:       "help [command]",
		aliases:     []string{"?"},
		exec: func(args []string, s *session.Session) bool {
			if len(args) > 0 {
				cmd, err := reg.Resolve(args[0])
				if err != nil {
					fmt.Fprintln(s.Err, err)
					return false
				}
				fmt.Fprintf(s.Out, "%s - %s\n", cmd.Name(), cmd.Description())
				fmt.Fprintf(s.Out, "usage: %s\n", cmd.Usage())
				if aliases := cmd.Aliases(); len(aliases) > 0 {
					fmt.Fprintf(s.Out, "aliases: %s\n", strings.Join(aliases, ", "))
				}
				return true
			}

			tbl := output.NewTable("command", "description")
			for _, cmd := range reg.Commands() {
				tbl.AddRow(cmd.Name(), cmd.Description())
			}
			if err := tbl.Render(s.Out); err != nil {
				fmt.Fprintln(s.Err, err)
				return false
			}
			return true
		},
		complete: func(args []string, current int) []string {
			if current > 0 {
				return nil
			}
			prefix := ""
			if current < len(args) {
				prefix = strings.ToLower(args[current])
			}
			var out []string
			for _, cmd := range reg.Commands() {
				if strings.HasPrefix(cmd.Name(), prefix) {
					out = append(out, cmd.Name())
				}
			}
			sort.Strings(out)
			return out
		},
	}
}

func historyCommand(m *metric.Metrics) registry.Command {
	set := grammar.NewSet()
	set.MustRegister(grammar.Definition{Name: "count", Short: "n", Long: "count", Kind: grammar.KindOption, Description: "number of entries to show"})
	set.MustRegister(grammar.Definition{Name: "limit", Kind: grammar.KindPositional, Description: "number of entries to show"})
	parser := grammar.NewParser(set)

	return &command{
		name:        "history",
		description: "show recently submitted lines",
		usage:       "history [N | -n N | --count N]",
		exec: func(args []string, s *session.Session) bool {
			r := parser.Parse(args)
			if reportParseErrors(r, s, m) {
				return false
			}

			n := 0
			raw := r.String("count")
			if !r.Bool("count") {
				raw = r.String("limit")
			}
			if raw != "" {
				v, err := strconv.Atoi(raw)
				if err != nil || v < 0 {
					fmt.Fprintf(s.Err, "history: invalid count %q\n", raw)
					return false
				}
				n = v
			}

			entries := s.History.Tail(n)
			first := s.History.Len() - len(entries) + 1
			for i, line := range entries {
				fmt.Fprintf(s.Out, "%4d  %s\n", first+i, line)
			}
			return true
		},
	}
}

func aliasCommand() registry.Command {
	return &command{
		name:        "alias",
		description: "list aliases or define one",
		usage:       "alias [name=expansion]",
		exec: func(args []string, s *session.Session) bool {
			if len(args) == 0 {
				aliases := s.Aliases()
				names := make([]string, 0, len(aliases))
				for name := range aliases {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(s.Out, "alias %s=%s\n", name, aliases[name])
				}
				return true
			}

			spec := strings.Join(args, " ")
			name, expansion, ok := strings.Cut(spec, "=")
			if !ok {
				if v, defined := s.Alias(name); defined {
					fmt.Fprintf(s.Out, "alias %s=%s\n", name, v)
					return true
				}
				fmt.Fprintf(s.Err, "alias: %q is not defined\n", name)
				return false
			}
			if name == "" {
				fmt.Fprintln(s.Err, "alias: empty name")
				return false
			}
			s.SetAlias(name, expansion)
			return true
		},
	}
}

func unaliasCommand() registry.Command {
	return &command{
		name:        "unalias",
		description: "remove alias definitions",
		usage:       "unalias name...",
		exec: func(args []string, s *session.Session) bool {
			if len(args) == 0 {
				fmt.Fprintln(s.Err, "unalias: name required")
				return false
			}
			ok := true
			for _, name := range args {
				if _, defined := s.Alias(name); !defined {
					fmt.Fprintf(s.Err, "unalias: %q is not defined\n", name)
					ok = false
					continue
				}
				s.UnsetAlias(name)
			}
			return ok
		},
	}
}

func setCommand() registry.Command {
	return &command{
		name:        "set",
		description: "list variables or define one",
		usage:       "set [name=value]",
		exec: func(args []string, s *session.Session) bool {
			if len(args) == 0 {
				for _, name := range s.VarNames() {
					v, _ := s.Var(name)
					fmt.Fprintf(s.Out, "%s=%s\n", name, v)
				}
				return true
			}

			spec := strings.Join(args, " ")
			name, value, ok := strings.Cut(spec, "=")
			if !ok || name == "" {
				fmt.Fprintln(s.Err, "set: expected name=value")
				return false
			}
			s.SetVar(name, value)
			return true
		},
	}
}

func unsetCommand() registry.Command {
	return &command{
		name:        "unset",
		description: "remove variable definitions",
		usage:       "unset name...",
		exec: func(args []string, s *session.Session) bool {
			if len(args) == 0 {
				fmt.Fprintln(s.Err, "unset: name required")
				return false
			}
			ok := true
			for _, name := range args {
				if _, defined := s.Var(name); !defined {
					fmt.Fprintf(s.Err, "unset: %q is not defined\n", name)
					ok = false
					continue
				}
				s.UnsetVar(name)
			}
			return ok
		},
	}
}

func statsCommand(m *metric.Metrics) registry.Command {
	set := grammar.NewSet()
	set.MustRegister(grammar.Definition{Name: "format", Short: "f", Long: "format", Kind: grammar.KindOption, Default: "table", Allowed: []string{"table", "json"}, Description: "output format"})
	parser := grammar.NewParser(set)

	return &command{
		name:        "stats",
		description: "show session telemetry counters",
		usage:       "stats [--format table|json]",
		exec: func(args []string, s *session.Session) bool {
			r := parser.Parse(args)
			if reportParseErrors(r, s, m) {
				return false
			}
			if m == nil {
				fmt.Fprintln(s.Err, "stats: telemetry disabled")
				return false
			}

			snap, err := m.Snapshot()
			if err != nil {
				fmt.Fprintln(s.Err, err)
				return false
			}

			if r.String("format") == "json" {
				if err := output.JSON(s.Out, snap); err != nil {
					fmt.Fprintln(s.Err, err)
					return false
				}
				return true
			}

			names := make([]string, 0, len(snap))
			for name := range snap {
				names = append(names, name)
			}
			sort.Strings(names)
			tbl := output.NewTable("metric", "value")
			for _, name := range names {
				tbl.AddRow(name, strconv.FormatFloat(snap[name], 'f', -1, 64))
			}
			if err := tbl.Render(s.Out); err != nil {
				fmt.Fprintln(s.Err, err)
				return false
			}
			return true
		},
		complete: func(args []string, current int) []string {
			return []string{"--format"}
		},
	}
}

func sourceCommand(runScript func(string) error, m *metric.Metrics) registry.Command {
	set := grammar.NewSet()
	set.MustRegister(grammar.Definition{Name: "file", Kind: grammar.KindPositional, Required: true, Description: "script file to execute"})
	parser := grammar.NewParser(set)

	return &command{
		name:        "source",
		description: "execute a command script line by line",
		usage:       "source FILE",
		aliases:     []string{"."},
		exec: func(args []string, s *session.Session) bool {
			r := parser.Parse(args)
			if reportParseErrors(r, s, m) {
				return false
			}
			if runScript == nil {
				fmt.Fprintln(s.Err, "source: script execution unavailable")
				return false
			}
			if err := runScript(r.String("file")); err != nil {
				fmt.Fprintln(s.Err, err)
				return false
			}
			return true
		},
	}
}

func exitCommand() registry.Command {
	return &command{
		name:        "exit",
		description: "leave the shell",
		usage:       "exit",
		aliases:     []string{"quit"},
		exec: func(args []string, s *session.Session) bool {
			s.Stop()
			return true
		},
	}
}
