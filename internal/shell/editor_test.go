package shell

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/registry"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
)

func newTestEditor(t *testing.T, input string, history *session.History, completer *Completer) (*Editor, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	ed := NewEditor(bufio.NewReader(strings.NewReader(input)), out, history, completer)
	ed.SetPrompt("> ")
	return ed, out
}

func TestReadLineKeystrokes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain line", input: "help\r", want: "help"},
		{name: "newline submits too", input: "help\n", want: "help"},
		{name: "backspace removes last rune", input: "helpp\x7f\r", want: "help"},
		{name: "ctrl-h is backspace", input: "ab\x08\r", want: "a"},
		{name: "backspace on empty is a no-op", input: "\x7fok\r", want: "ok"},
		{name: "ctrl-c discards the buffer", input: "wrong\x03right\r", want: "right"},
		{name: "ctrl-d mid-line is ignored", input: "ab\x04c\r", want: "abc"},
		{name: "left arrow then insert", input: "hlp\x1b[D\x1b[De\r", want: "help"},
		{name: "left then right arrow", input: "ab\x1b[D\x1b[Cc\r", want: "abc"},
		{name: "control bytes are dropped", input: "a\x01\x02b\r", want: "ab"},
		{name: "unknown escape is dropped", input: "a\x1b[Hb\r", want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, _ := newTestEditor(t, tt.input, nil, nil)
			got, err := ed.ReadLine()
			if err != nil {
				t.Fatalf("ReadLine: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLineEOF(t *testing.T) {
	ed, _ := newTestEditor(t, "\x04", nil, nil)
	if _, err := ed.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("Ctrl+D on empty buffer: err = %v, want io.EOF", err)
	}

	ed, _ = newTestEditor(t, "dangling", nil, nil)
	if _, err := ed.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("exhausted input: err = %v, want io.EOF", err)
	}
}

func TestReadLineHistoryRecall(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "up recalls newest", input: "\x1b[A\r", want: "third"},
		{name: "up up recalls older", input: "\x1b[A\x1b[A\r", want: "second"},
		{name: "down after two ups holds", input: "\x1b[A\x1b[A\x1b[B\r", want: "second"},
		{name: "down without up is a no-op", input: "\x1b[Bok\r", want: "ok"},
		{name: "up stops at oldest", input: "\x1b[A\x1b[A\x1b[A\x1b[A\x1b[A\r", want: "first"},
		{name: "recall replaces typed text", input: "typed\x1b[A\r", want: "third"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := session.NewHistory()
			for _, line := range []string{"first", "second", "third"} {
				h.Append(line)
			}
			ed, _ := newTestEditor(t, tt.input, h, nil)
			got, err := ed.ReadLine()
			if err != nil {
				t.Fatalf("ReadLine: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTabCompletion(t *testing.T) {
	reg := stubRegistry(t,
		&stubCommand{name: "help"},
		&stubCommand{name: "history"},
		&stubCommand{name: "halt"},
	)
	c := NewCompleter(reg, nil)

	t.Run("single candidate replaces the word", func(t *testing.T) {
		ed, _ := newTestEditor(t, "he\t\r", nil, c)
		got, err := ed.ReadLine()
		if err != nil {
			t.Fatal(err)
		}
		if got != "help" {
			t.Errorf("ReadLine = %q, want help", got)
		}
	})

	t.Run("many candidates are listed, buffer untouched", func(t *testing.T) {
		ed, out := newTestEditor(t, "h\t\r", nil, c)
		got, err := ed.ReadLine()
		if err != nil {
			t.Fatal(err)
		}
		if got != "h" {
			t.Errorf("ReadLine = %q, want h", got)
		}
		for _, cand := range []string{"halt", "help", "history"} {
			if !strings.Contains(out.String(), cand) {
				t.Errorf("candidate list missing %q:\n%s", cand, out.String())
			}
		}
	})

	t.Run("no candidate is a no-op", func(t *testing.T) {
		ed, _ := newTestEditor(t, "zz\t\r", nil, c)
		got, err := ed.ReadLine()
		if err != nil {
			t.Fatal(err)
		}
		if got != "zz" {
			t.Errorf("ReadLine = %q, want zz", got)
		}
	})
}

func TestTabCompletionCapsCandidateList(t *testing.T) {
	cmds := make([]*stubCommand, 0, maxShownCandidates+3)
	for _, suffix := range "abcdefghijklm" {
		cmds = append(cmds, &stubCommand{name: "cmd" + string(suffix)})
	}
	reg := registry.New()
	for _, cmd := range cmds {
		if err := reg.Register(cmd); err != nil {
			t.Fatal(err)
		}
	}
	c := NewCompleter(reg, nil)

	ed, out := newTestEditor(t, "cmd\t\r", nil, c)
	if _, err := ed.ReadLine(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "... (+3 more)") {
		t.Errorf("expected overflow marker:\n%s", out.String())
	}
	if strings.Contains(out.String(), "cmdk  ") || strings.Contains(out.String(), "cmdm") {
		t.Errorf("candidates past the cap should not be listed:\n%s", out.String())
	}
}

func TestTabCompletionAfterSpaceStartsNewWord(t *testing.T) {
	cmd := &stubCommand{
		name:       "export",
		candidates: map[int][]string{0: {"json"}},
	}
	c := NewCompleter(stubRegistry(t, cmd), nil)

	ed, _ := newTestEditor(t, "export \t\r", nil, c)
	got, err := ed.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if got != "export json" {
		t.Errorf("ReadLine = %q, want %q", got, "export json")
	}
}
