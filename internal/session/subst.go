// Package session holds the per-session state of the interactive shell.
package session

import (
	"sort"
	"strings"
)

// VarSigil prefixes variable references in raw input.
const VarSigil = "$"

// ExpandVariables rewrites every literal occurrence of a sigil-prefixed
// variable name with its value. This is plain substring replacement,
// not pattern matching. Where variable names overlap as substrings
// (say $a and $ab), the longer name is replaced first; ties keep
// definition insertion order. The policy is deterministic but still a
// choice, so scripts should not lean on overlapping names.
func (s *Session) ExpandVariables(line string) string {
	if len(s.varNames) == 0 || !strings.Contains(line, VarSigil) {
		return line
	}

	names := make([]string, len(s.varNames))
	copy(names, s.varNames)
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	for _, name := range names {
		line = strings.ReplaceAll(line, VarSigil+name, s.vars[name])
	}
	return line
}

// ExpandAlias replaces the first word of line with its alias expansion
// text, if one is defined. Aliases expand exactly once; the expansion
// is not itself checked for further aliases.
func (s *Session) ExpandAlias(line string) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	expansion, ok := s.aliases[words[0]]
	if !ok {
		return line
	}
	if len(words) == 1 {
		return expansion
	}
	return expansion + " " + strings.Join(words[1:], " ")
}
