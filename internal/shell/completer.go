// Package shell provides the interactive front-end of the catalogue CLI.
package shell

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/registry"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/telemetry/metric"
)

// Completer produces candidate completions from the registry and the
// current buffer state.
type Completer struct {
	reg     *registry.Registry
	metrics *metric.Metrics
}

// NewCompleter creates a completer over the given registry. metrics
// may be nil.
func NewCompleter(reg *registry.Registry, metrics *metric.Metrics) *Completer {
	return &Completer{reg: reg, metrics: metrics}
}

// Complete returns candidates for a buffer whose cursor sits at the
// end. With no words, or a single word and no trailing separator, it
// completes command names; otherwise it resolves the first word and
// delegates to that descriptor's completion capability, passing the
// argument words and the index of the word being completed.
func (c *Completer) Complete(buffer string) []string {
	if c.metrics != nil {
		c.metrics.Completions.Inc()
	}

	words := strings.Fields(buffer)
	trailing := buffer != "" && unicode.IsSpace(rune(buffer[len(buffer)-1]))

	if len(words) == 0 || (len(words) == 1 && !trailing) {
		prefix := ""
		if len(words) == 1 {
			prefix = words[0]
		}
		return c.commandNames(prefix)
	}

	cmd, err := c.reg.Resolve(words[0])
	if err != nil {
		return nil
	}
	args := words[1:]
	current := len(args)
	if !trailing {
		current = len(args) - 1
	}
	return cmd.Complete(args, current)
}

// commandNames returns registry keys starting with the typed prefix,
// case-insensitively, deduplicated and sorted ascending.
func (c *Completer) commandNames(prefix string) []string {
	p := strings.ToLower(prefix)
	seen := make(map[string]struct{})
	var out []string
	for _, key := range c.reg.Keys() {
		if !strings.HasPrefix(key, p) {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
