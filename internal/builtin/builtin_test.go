package builtin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/registry"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/telemetry/metric"
)

func newTestSession() (*session.Session, *bytes.Buffer, *bytes.Buffer) {
	s := session.New()
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	s.Out = out
	s.Err = errw
	return s, out, errw
}

func newTestRegistry(t *testing.T, d Deps) *registry.Registry {
	t.Helper()
	reg := registry.New()
	d.Registry = reg
	for _, cmd := range All(d) {
		if err := reg.Register(cmd); err != nil {
			t.Fatalf("Register(%s): %v", cmd.Name(), err)
		}
	}
	return reg
}

func TestAllRegisters(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	for _, name := range []string{"help", "history", "alias", "unalias", "set", "unset", "stats", "source", "exit", "quit", "?"} {
		if _, err := reg.Resolve(name); err != nil {
			t.Errorf("Resolve(%q): %v", name, err)
		}
	}
}

func TestHelpListsCommands(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	s, out, _ := newTestSession()

	cmd, err := reg.Resolve("help")
	if err != nil {
		t.Fatal(err)
	}
	if ok := cmd.Execute(nil, s); !ok {
		t.Fatal("help returned false")
	}
	for _, want := range []string{"help", "history", "exit"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help output missing %q:\n%s", want, out.String())
		}
	}
}

func TestHelpDetail(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	s, out, errw := newTestSession()

	cmd, _ := reg.Resolve("help")
	if ok := cmd.Execute([]string{"exit"}, s); !ok {
		t.Fatal("help exit returned false")
	}
	if !strings.Contains(out.String(), "usage: exit") {
		t.Errorf("missing usage line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "quit") {
		t.Errorf("missing alias line:\n%s", out.String())
	}

	out.Reset()
	if ok := cmd.Execute([]string{"nosuch"}, s); ok {
		t.Fatal("help nosuch returned true")
	}
	if errw.Len() == 0 {
		t.Error("expected an error report for unknown command")
	}
}

func TestHelpCompletesCommandNames(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	cmd, _ := reg.Resolve("help")

	got := cmd.Complete([]string{"h"}, 0)
	if len(got) == 0 {
		t.Fatal("no candidates for prefix h")
	}
	for _, c := range got {
		if !strings.HasPrefix(c, "h") {
			t.Errorf("candidate %q does not match prefix", c)
		}
	}
	if got := cmd.Complete([]string{"help", "x"}, 1); got != nil {
		t.Errorf("help completes only its first argument, got %v", got)
	}
}

func TestAliasLifecycle(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	s, out, errw := newTestSession()

	alias, _ := reg.Resolve("alias")
	unalias, _ := reg.Resolve("unalias")

	if ok := alias.Execute([]string{"ls=history", "5"}, s); !ok {
		t.Fatalf("define failed: %s", errw.String())
	}
	if v, ok := s.Alias("ls"); !ok || v != "history 5" {
		t.Fatalf("Alias(ls) = %q, %v", v, ok)
	}

	out.Reset()
	if ok := alias.Execute(nil, s); !ok {
		t.Fatal("list failed")
	}
	if !strings.Contains(out.String(), "alias ls=history 5") {
		t.Errorf("list output:\n%s", out.String())
	}

	out.Reset()
	if ok := alias.Execute([]string{"ls"}, s); !ok {
		t.Fatal("lookup failed")
	}
	if !strings.Contains(out.String(), "ls=history 5") {
		t.Errorf("lookup output:\n%s", out.String())
	}

	if ok := unalias.Execute([]string{"ls"}, s); !ok {
		t.Fatal("unalias failed")
	}
	if _, ok := s.Alias("ls"); ok {
		t.Error("alias still defined after unalias")
	}
	if ok := unalias.Execute([]string{"ls"}, s); ok {
		t.Error("unalias of undefined name returned true")
	}
}

func TestSetUnset(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	s, out, errw := newTestSession()

	set, _ := reg.Resolve("set")
	unset, _ := reg.Resolve("unset")

	if ok := set.Execute([]string{"name=basil"}, s); !ok {
		t.Fatalf("set failed: %s", errw.String())
	}
	if v, ok := s.Var("name"); !ok || v != "basil" {
		t.Fatalf("Var(name) = %q, %v", v, ok)
	}

	if ok := set.Execute([]string{"bare"}, s); ok {
		t.Error("set without = returned true")
	}

	out.Reset()
	if ok := set.Execute(nil, s); !ok {
		t.Fatal("set list failed")
	}
	if !strings.Contains(out.String(), "name=basil") {
		t.Errorf("set list output:\n%s", out.String())
	}

	if ok := unset.Execute([]string{"name"}, s); !ok {
		t.Fatal("unset failed")
	}
	if _, ok := s.Var("name"); ok {
		t.Error("variable still defined after unset")
	}
}

func TestHistoryCommand(t *testing.T) {
	m := metric.New()
	reg := newTestRegistry(t, Deps{Metrics: m})
	s, out, errw := newTestSession()
	for _, line := range []string{"first", "second", "third"} {
		s.History.Append(line)
	}

	cmd, _ := reg.Resolve("history")

	tests := []struct {
		name string
		args []string
		want []string
		omit []string
	}{
		{name: "all", args: nil, want: []string{"first", "second", "third"}},
		{name: "positional", args: []string{"2"}, want: []string{"second", "third"}, omit: []string{"first"}},
		{name: "short option", args: []string{"-n", "1"}, want: []string{"third"}, omit: []string{"second"}},
		{name: "long option", args: []string{"--count", "1"}, want: []string{"third"}, omit: []string{"second"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			if ok := cmd.Execute(tt.args, s); !ok {
				t.Fatalf("Execute(%v) failed: %s", tt.args, errw.String())
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
			for _, o := range tt.omit {
				if strings.Contains(out.String(), o) {
					t.Errorf("output should omit %q:\n%s", o, out.String())
				}
			}
		})
	}

	if ok := cmd.Execute([]string{"-n", "many"}, s); ok {
		t.Error("non-numeric count returned true")
	}
}

func TestHistoryIndicesAreOneBased(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	s, out, _ := newTestSession()
	s.History.Append("only")

	cmd, _ := reg.Resolve("history")
	if ok := cmd.Execute(nil, s); !ok {
		t.Fatal("history failed")
	}
	if !strings.Contains(out.String(), "1  only") {
		t.Errorf("expected 1-based index:\n%s", out.String())
	}
}

func TestStatsFormats(t *testing.T) {
	m := metric.New()
	m.LinesRead.Inc()
	m.LinesRead.Inc()
	reg := newTestRegistry(t, Deps{Metrics: m})
	s, out, errw := newTestSession()

	cmd, _ := reg.Resolve("stats")
	if ok := cmd.Execute(nil, s); !ok {
		t.Fatalf("stats failed: %s", errw.String())
	}
	if !strings.Contains(out.String(), "catalogue_shell_lines_total") {
		t.Errorf("table output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "2") {
		t.Errorf("expected counter value 2:\n%s", out.String())
	}

	out.Reset()
	if ok := cmd.Execute([]string{"--format", "json"}, s); !ok {
		t.Fatalf("stats json failed: %s", errw.String())
	}
	if !strings.Contains(out.String(), `"catalogue_shell_lines_total"`) {
		t.Errorf("json output:\n%s", out.String())
	}

	if ok := cmd.Execute([]string{"--format", "yaml"}, s); ok {
		t.Error("invalid format returned true")
	}
}

func TestSourceDelegates(t *testing.T) {
	var ran string
	reg := newTestRegistry(t, Deps{
		Metrics:   metric.New(),
		RunScript: func(path string) error { ran = path; return nil },
	})
	s, _, errw := newTestSession()

	cmd, _ := reg.Resolve("source")
	if ok := cmd.Execute([]string{"setup.cat"}, s); !ok {
		t.Fatalf("source failed: %s", errw.String())
	}
	if ran != "setup.cat" {
		t.Errorf("ran = %q, want setup.cat", ran)
	}

	if ok := cmd.Execute(nil, s); ok {
		t.Error("source without a file returned true")
	}
}

func TestExitStopsSession(t *testing.T) {
	reg := newTestRegistry(t, Deps{Metrics: metric.New()})
	s, _, _ := newTestSession()
	if !s.Running() {
		t.Fatal("new session is not running")
	}

	cmd, _ := reg.Resolve("exit")
	if ok := cmd.Execute(nil, s); !ok {
		t.Fatal("exit failed")
	}
	if s.Running() {
		t.Error("session still running after exit")
	}
}
