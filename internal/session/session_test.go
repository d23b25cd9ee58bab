package session

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	s := New()
	if s.ID == "" {
		t.Error("session ID should be assigned")
	}
	if !s.Running() {
		t.Error("new session should be running")
	}
	if s.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want %q", s.Prompt, DefaultPrompt)
	}

	s.Stop()
	if s.Running() {
		t.Error("Stop() should flip the running flag")
	}
}

func TestSession_Vars_InsertionOrder(t *testing.T) {
	s := New()
	s.SetVar("b", "2")
	s.SetVar("a", "1")
	s.SetVar("c", "3")
	s.SetVar("b", "22") // update must not move b

	if got := s.VarNames(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("VarNames() = %v, want [b a c]", got)
	}
	if v, _ := s.Var("b"); v != "22" {
		t.Errorf("Var(b) = %q, want 22", v)
	}

	s.UnsetVar("a")
	if got := s.VarNames(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("VarNames() after unset = %v, want [b c]", got)
	}
	if _, ok := s.Var("a"); ok {
		t.Error("Var(a) should be gone")
	}
	s.UnsetVar("missing") // no-op
}

func TestSession_Aliases(t *testing.T) {
	s := New()
	s.SetAlias("ls", "history 5")

	if v, ok := s.Alias("ls"); !ok || v != "history 5" {
		t.Errorf("Alias(ls) = %q,%v", v, ok)
	}

	copied := s.Aliases()
	copied["ls"] = "mutated"
	if v, _ := s.Alias("ls"); v != "history 5" {
		t.Error("Aliases() must return a copy")
	}

	s.UnsetAlias("ls")
	if _, ok := s.Alias("ls"); ok {
		t.Error("alias should be removed")
	}
}
