// Package session holds the per-session state of the interactive shell.
package session

import (
	"bufio"
	"os"
	"path/filepath"
)

// DefaultMaxHistory bounds the in-memory history when no limit is
// configured.
const DefaultMaxHistory = 1000

// History is the ordered, append-only log of submitted lines plus the
// recall cursor used by the line editor. The cursor ranges over
// [0, len(entries)]; Append resets it to the end.
type History struct {
	entries []string
	cursor  int
	maxSize int
	file    string
}

// NewHistory creates an empty history with the default bound and no
// backing file.
func NewHistory() *History {
	return &History{maxSize: DefaultMaxHistory}
}

// SetFile sets the plain-text file used by Load and Save.
func (h *History) SetFile(path string) {
	h.file = path
}

// SetMaxSize bounds the history length; zero or negative means
// unbounded.
func (h *History) SetMaxSize(n int) {
	h.maxSize = n
}

// Append adds a line unconditionally, even if the line later fails to
// parse or dispatch, and resets the recall cursor past the end.
func (h *History) Append(line string) {
	h.entries = append(h.entries, line)
	if h.maxSize > 0 && len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries)
}

// RecallOlder moves the cursor one entry back and returns the entry it
// lands on. At the oldest entry it reports false and the cursor does
// not move.
func (h *History) RecallOlder() (string, bool) {
	if h.cursor > 0 {
		h.cursor--
		return h.entries[h.cursor], true
	}
	return "", false
}

// RecallNewer returns the entry at the current cursor and then moves
// the cursor one entry forward. At the newest entry (cursor ==
// len-1) it holds there and keeps returning the last historical entry
// instead of advancing to an empty line. The resulting asymmetry with
// RecallOlder, where a newer/older pair does not round-trip to the
// same entry, is long-standing observable behavior and is kept as is.
func (h *History) RecallNewer() (string, bool) {
	if h.cursor < len(h.entries)-1 {
		entry := h.entries[h.cursor]
		h.cursor++
		return entry, true
	}
	if len(h.entries) > 0 && h.cursor == len(h.entries)-1 {
		return h.entries[h.cursor], true
	}
	return "", false
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all stored lines, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Tail returns up to n most recent lines, oldest first.
func (h *History) Tail(n int) []string {
	if n <= 0 || n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]string, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Load reads entries from the backing file. A missing file is not an
// error.
func (h *History) Load() error {
	if h.file == "" {
		return nil
	}
	f, err := os.Open(h.file)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			h.Append(line)
		}
	}
	return scanner.Err()
}

// Save writes all entries to the backing file, creating its directory
// if needed.
func (h *History) Save() error {
	if h.file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.file), 0o700); err != nil {
		return err
	}
	f, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range h.entries {
		if _, err := w.WriteString(entry + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
