// Package shell provides the interactive front-end of the catalogue CLI.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
)

// maxShownCandidates caps the candidate list printed on an ambiguous
// tab completion; the rest collapse into a "+N more" suffix.
const maxShownCandidates = 10

// Control bytes handled by the editor.
const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyTab       = '\t'
	keyEscape    = 0x1b
	keyBackspace = 0x7f
	keyCtrlH     = 0x08
)

// Editor is the per-keystroke input state machine. It holds a single
// editing state: a rune buffer plus a logical cursor offset. The loop
// is synchronous: it blocks reading exactly one input byte, fully
// processes it, then blocks again. Nothing else touches the buffer.
type Editor struct {
	in        *bufio.Reader
	out       io.Writer
	prompt    string
	history   *session.History
	completer *Completer

	buf    []rune
	cursor int
}

// NewEditor creates an editor reading single bytes from in and
// rendering to out. history and completer may be nil, disabling
// recall and completion respectively.
func NewEditor(in *bufio.Reader, out io.Writer, history *session.History, completer *Completer) *Editor {
	return &Editor{in: in, out: out, history: history, completer: completer}
}

// SetPrompt sets the text rendered before the buffer.
func (e *Editor) SetPrompt(p string) {
	e.prompt = p
}

// ReadLine runs the state machine until a line is submitted. It
// returns io.EOF when input ends or Ctrl+D is pressed on an empty
// buffer.
func (e *Editor) ReadLine() (string, error) {
	e.buf = e.buf[:0]
	e.cursor = 0
	e.render()

	for {
		b, err := e.in.ReadByte()
		if err != nil {
			fmt.Fprint(e.out, "\r\n")
			return "", err
		}

		switch b {
		case '\r', '\n':
			fmt.Fprint(e.out, "\r\n")
			return string(e.buf), nil
		case keyBackspace, keyCtrlH:
			if e.cursor > 0 {
				e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
				e.cursor--
				e.render()
			}
		case keyTab:
			e.completeWord()
		case keyCtrlC:
			e.buf = e.buf[:0]
			e.cursor = 0
			fmt.Fprint(e.out, "^C\r\n")
			e.render()
		case keyCtrlD:
			if len(e.buf) == 0 {
				fmt.Fprint(e.out, "\r\n")
				return "", io.EOF
			}
		case keyEscape:
			e.handleEscape()
		default:
			if b >= 0x20 && b < 0x7f {
				e.insert(rune(b))
			}
		}
	}
}

// handleEscape consumes a CSI sequence: arrows for history recall and
// cursor movement. Unrecognized sequences are dropped.
func (e *Editor) handleEscape() {
	b1, err := e.in.ReadByte()
	if err != nil || b1 != '[' {
		return
	}
	b2, err := e.in.ReadByte()
	if err != nil {
		return
	}
	switch b2 {
	case 'A':
		if e.history != nil {
			if line, ok := e.history.RecallOlder(); ok {
				e.setLine(line)
			}
		}
	case 'B':
		if e.history != nil {
			if line, ok := e.history.RecallNewer(); ok {
				e.setLine(line)
			}
		}
	case 'C':
		if e.cursor < len(e.buf) {
			e.cursor++
			e.render()
		}
	case 'D':
		if e.cursor > 0 {
			e.cursor--
			e.render()
		}
	}
}

// setLine replaces the entire visible line with a recalled entry.
// The rewrite is whole-line, not an incremental diff; input lines are
// short enough that this costs nothing perceptible.
func (e *Editor) setLine(line string) {
	e.buf = []rune(line)
	e.cursor = len(e.buf)
	e.render()
}

func (e *Editor) insert(r rune) {
	e.buf = append(e.buf[:e.cursor], append([]rune{r}, e.buf[e.cursor:]...)...)
	e.cursor++
	e.render()
}

// completeWord invokes the completion engine. One candidate replaces
// the word being completed; several get listed, capped at
// maxShownCandidates; none is a no-op.
func (e *Editor) completeWord() {
	if e.completer == nil {
		return
	}
	cands := e.completer.Complete(string(e.buf))
	switch {
	case len(cands) == 0:
	case len(cands) == 1:
		e.replaceCurrentWord(cands[0])
	default:
		shown := cands
		extra := 0
		if len(shown) > maxShownCandidates {
			extra = len(shown) - maxShownCandidates
			shown = shown[:maxShownCandidates]
		}
		fmt.Fprint(e.out, "\r\n"+strings.Join(shown, "  "))
		if extra > 0 {
			fmt.Fprintf(e.out, "  ... (+%d more)", extra)
		}
		fmt.Fprint(e.out, "\r\n")
		e.render()
	}
}

// replaceCurrentWord swaps the word being completed for the candidate.
// With a trailing separator (or an empty buffer) the candidate starts
// a new word instead.
func (e *Editor) replaceCurrentWord(word string) {
	s := string(e.buf)
	trailing := s != "" && unicode.IsSpace(rune(s[len(s)-1]))
	if s == "" || trailing {
		e.buf = append(e.buf, []rune(word)...)
	} else {
		idx := strings.LastIndexFunc(s, unicode.IsSpace)
		e.buf = append([]rune(s[:idx+1]), []rune(word)...)
	}
	e.cursor = len(e.buf)
	e.render()
}

// render rewrites the whole visible line: carriage return, clear,
// prompt, buffer, then cursor repositioning.
func (e *Editor) render() {
	var sb strings.Builder
	sb.WriteString("\r\x1b[2K")
	sb.WriteString(e.prompt)
	sb.WriteString(string(e.buf))
	if tail := len(e.buf) - e.cursor; tail > 0 {
		fmt.Fprintf(&sb, "\x1b[%dD", tail)
	}
	io.WriteString(e.out, sb.String())
}
