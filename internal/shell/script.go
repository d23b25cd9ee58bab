// Package shell provides the interactive front-end of the catalogue CLI.
package shell

import (
	"bufio"
	"os"
	"strings"
)

// RunScript executes a plain-text command file through the same
// substitute/resolve/dispatch path as interactive input, one line at a
// time. Blank lines and lines whose first non-space character is '#'
// are skipped. A malformed or failing line is reported and the script
// continues; only an unreadable file aborts with an IOFault.
func (sh *Shell) RunScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOFault{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		sh.Submit(line)
	}
	if err := scanner.Err(); err != nil {
		return &IOFault{Path: path, Err: err}
	}
	return nil
}

// LoadStartup pre-seeds aliases and variables from a text file of
// "alias name=value" and "set name=value" lines. Malformed lines are
// logged and skipped, never fatal. A missing file is fine; an
// unreadable one reports an IOFault and the shell starts anyway.
func (sh *Shell) LoadStartup(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &IOFault{Path: path, Err: err}
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !sh.seed(line) {
			sh.log.Warn("skipping malformed startup line", "file", path, "line", n)
		}
	}
	if err := scanner.Err(); err != nil {
		return &IOFault{Path: path, Err: err}
	}
	return nil
}

// seed applies one startup line; it reports false when the line does
// not match either convention.
func (sh *Shell) seed(line string) bool {
	keyword, rest, found := strings.Cut(line, " ")
	if !found {
		return false
	}
	name, value, ok := strings.Cut(strings.TrimSpace(rest), "=")
	if !ok || name == "" {
		return false
	}
	switch keyword {
	case "alias":
		sh.session.SetAlias(name, value)
	case "set":
		sh.session.SetVar(name, value)
	default:
		return false
	}
	return true
}
