// Package grammar implements the argument grammar registry and parser engine.
package grammar

import (
	"fmt"
	"strings"
)

// Parsed is the post-parse state of one definition. After any Parse
// call exactly one Parsed exists per registered definition; absent
// arguments keep their declared default value with Present false.
type Parsed struct {
	Name    string
	Value   string
	Kind    Kind
	Present bool
}

// Result holds the outcome of a single Parse call.
type Result struct {
	args        map[string]*Parsed
	order       []string
	Positionals []string // bare tokens beyond the positional definitions
	Errors      []*ParseError
}

// Valid reports whether the parse accumulated no errors.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Get returns the parsed entry for a definition name.
func (r *Result) Get(name string) (*Parsed, bool) {
	p, ok := r.args[name]
	return p, ok
}

// String returns the parsed value for name, or "" if unknown.
func (r *Result) String(name string) string {
	if p, ok := r.args[name]; ok {
		return p.Value
	}
	return ""
}

// Bool reports whether the named argument was present.
func (r *Result) Bool(name string) bool {
	if p, ok := r.args[name]; ok {
		return p.Present
	}
	return false
}

// Args returns all parsed entries in definition registration order.
func (r *Result) Args() []*Parsed {
	out := make([]*Parsed, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.args[name])
	}
	return out
}

func (r *Result) errorf(arg, token, format string, a ...any) {
	r.Errors = append(r.Errors, &ParseError{Arg: arg, Token: token, Reason: fmt.Sprintf(format, a...)})
}

// Parser scans token lists against a grammar set.
type Parser struct {
	set *Set
}

// NewParser returns a parser over the given set.
func NewParser(set *Set) *Parser {
	return &Parser{set: set}
}

// Parse scans tokens left to right and returns a fresh Result. All
// parsed state is reset first, so parsing the same tokens twice yields
// identical results. Parse never fails outright; callers inspect
// Result.Errors.
//
// An option value that itself begins with "-" (for example a negative
// number) is never auto-consumed from the following token, so that a
// trailing flag is not swallowed by mistake. Such input reports a
// missing value. This is intentional.
func (p *Parser) Parse(tokens []string) *Result {
	r := &Result{args: make(map[string]*Parsed)}
	for _, d := range p.set.defs {
		r.args[d.Name] = &Parsed{Name: d.Name, Value: d.Default, Kind: d.Kind}
		r.order = append(r.order, d.Name)
	}

	var bare []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "--"):
			i = p.parseLong(r, tokens, i)
		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			i = p.parseShortCluster(r, tokens, i)
		default:
			if d, ok := p.set.commandFor(tok); ok && !r.args[d.Name].Present {
				r.args[d.Name].Present = true
				r.args[d.Name].Value = tok
				continue
			}
			bare = append(bare, tok)
		}
	}

	p.bindPositionals(r, bare)

	for _, d := range p.set.defs {
		if d.Required && !r.args[d.Name].Present {
			r.errorf(d.Name, "", "required argument missing: %s", d.Name)
		}
	}
	return r
}

// parseLong handles one --long token, optionally consuming the next
// token as an option value. It returns the index of the last token
// consumed.
func (p *Parser) parseLong(r *Result, tokens []string, i int) int {
	body := strings.TrimPrefix(tokens[i], "--")
	name, inline, hasInline := strings.Cut(body, "=")

	d, ok := p.set.byLong[name]
	if !ok {
		r.errorf("", tokens[i], "unknown option --%s", name)
		return i
	}

	pa := r.args[d.Name]
	switch d.Kind {
	case KindFlag:
		// Flags never take a value; an inline one is ignored.
		pa.Present = true
	case KindOption:
		value := inline
		if !hasInline {
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
				i++
				value = tokens[i]
			} else {
				r.errorf(d.Name, tokens[i], "missing value for --%s", name)
				return i
			}
		}
		p.bind(r, pa, d, tokens[i], value)
	default:
		r.errorf(d.Name, tokens[i], "%s cannot be written as --%s", d.Name, name)
	}
	return i
}

// parseShortCluster handles one -xyz token. Each character resolves
// independently via its short form; an unknown character records an
// error and scanning continues with the remaining characters. It
// returns the index of the last token consumed.
func (p *Parser) parseShortCluster(r *Result, tokens []string, i int) int {
	cluster := tokens[i][1:]
	for ci := 0; ci < len(cluster); ci++ {
		ch := string(cluster[ci])
		d, ok := p.set.byShort[ch]
		if !ok {
			r.errorf("", tokens[i], "unknown flag -%s", ch)
			continue
		}

		pa := r.args[d.Name]
		switch d.Kind {
		case KindFlag:
			pa.Present = true
		case KindOption:
			switch {
			case ci == len(cluster)-1 && i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-"):
				i++
				p.bind(r, pa, d, tokens[i-1], tokens[i])
			case ci < len(cluster)-1:
				// Remainder of the cluster is the value.
				p.bind(r, pa, d, tokens[i], cluster[ci+1:])
				return i
			default:
				r.errorf(d.Name, tokens[i], "missing value for -%s", ch)
			}
		default:
			r.errorf(d.Name, tokens[i], "%s cannot be written as -%s", d.Name, ch)
		}
	}
	return i
}

// bind validates a candidate option value against the definition's
// allowed set. On violation the argument stays absent.
func (p *Parser) bind(r *Result, pa *Parsed, d *Definition, token, value string) {
	if !d.allows(value) {
		r.errorf(d.Name, token, "invalid value %q for %s (allowed: %s)", value, d.Name, strings.Join(d.Allowed, ", "))
		return
	}
	pa.Present = true
	pa.Value = value
}

// bindPositionals assigns bare tokens to Positional-kind definitions
// in registration order; leftovers stay in Result.Positionals.
func (p *Parser) bindPositionals(r *Result, bare []string) {
	next := 0
	for _, d := range p.set.defs {
		if d.Kind != KindPositional || next >= len(bare) {
			continue
		}
		pa := r.args[d.Name]
		pa.Present = true
		pa.Value = bare[next]
		next++
	}
	r.Positionals = append(r.Positionals, bare[next:]...)
}
