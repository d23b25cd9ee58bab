// Package shell provides the interactive front-end of the catalogue CLI.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/builtin"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/cli/config"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/registry"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/session"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/telemetry/logger"
	"github.com/Hussla/Recipe-Ingredient-Catalogue-sub001/internal/telemetry/metric"
)

// Shell is the controller owning the session, the registries, the
// completion engine and the line editor. One Shell runs on exactly one
// goroutine; nothing here is safe for concurrent use.
type Shell struct {
	cfg       *config.Config
	log       logger.Logger
	session   *session.Session
	registry  *registry.Registry
	completer *Completer
	metrics   *metric.Metrics

	in   io.Reader
	out  io.Writer
	errw io.Writer
}

// New creates a shell wired to the standard streams with the built-in
// commands registered.
func New(cfg *config.Config, log logger.Logger) (*Shell, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Default()
	}

	sess := session.New()
	if cfg.Prompt != "" {
		sess.Prompt = cfg.Prompt
	}
	sess.History.SetMaxSize(cfg.History.Max)
	sess.History.SetFile(cfg.History.File)

	sh := &Shell{
		cfg:      cfg,
		log:      log,
		session:  sess,
		registry: registry.New(),
		metrics:  metric.New(),
		in:       os.Stdin,
		out:      os.Stdout,
		errw:     os.Stderr,
	}
	sh.completer = NewCompleter(sh.registry, sh.metrics)

	for _, cmd := range builtin.All(builtin.Deps{
		Registry:  sh.registry,
		Metrics:   sh.metrics,
		RunScript: sh.RunScript,
	}) {
		if err := sh.registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("register builtin: %w", err)
		}
	}
	return sh, nil
}

// SetStreams redirects the shell's input and output, mainly for tests
// and embedding.
func (sh *Shell) SetStreams(in io.Reader, out, errw io.Writer) {
	sh.in = in
	sh.out = out
	sh.errw = errw
	sh.session.Out = out
	sh.session.Err = errw
}

// Session returns the shell's session state.
func (sh *Shell) Session() *session.Session {
	return sh.session
}

// Registry returns the command registry so the host can add its own
// descriptors and providers.
func (sh *Shell) Registry() *registry.Registry {
	return sh.registry
}

// Submit runs one line through the full pipeline: variable
// substitution, alias resolution, tokenizing, history append, command
// resolution and dispatch. Blank lines are ignored without touching
// history. Submit never returns an error; every fault is reported to
// the error stream and the loop carries on.
func (sh *Shell) Submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	sh.metrics.LinesRead.Inc()

	expanded := sh.session.ExpandVariables(line)
	expanded = sh.session.ExpandAlias(expanded)
	words := strings.Fields(expanded)
	if len(words) == 0 {
		return
	}

	sh.session.History.Append(expanded)

	cmd, err := sh.registry.Resolve(words[0])
	if err != nil {
		fmt.Fprintln(sh.errw, err)
		sh.log.Debug("command not found", "token", words[0])
		return
	}

	sh.metrics.Dispatched.Inc()
	ok, err := sh.registry.Dispatch(cmd, words[1:], sh.session)
	if err != nil {
		sh.metrics.DispatchFaults.Inc()
		fmt.Fprintln(sh.errw, err)
		sh.log.Error("dispatch fault", "command", cmd.Name(), "error", err)
		return
	}
	if !ok {
		sh.log.Debug("command reported failure", "command", cmd.Name())
	}
}

// Run drives the interactive loop until the exit command flips the
// running flag or input ends. History and the startup file are loaded
// first; history is saved and provider cleanup hooks run on the way
// out.
func (sh *Shell) Run() error {
	if err := sh.session.History.Load(); err != nil {
		sh.log.Warn("loading history", "error", err)
	}
	if err := sh.LoadStartup(sh.cfg.RC.File); err != nil {
		fmt.Fprintln(sh.errw, err)
	}
	defer func() {
		if err := sh.session.History.Save(); err != nil {
			sh.log.Warn("saving history", "error", err)
		}
		if err := sh.registry.Cleanup(); err != nil {
			sh.log.Warn("provider cleanup", "error", err)
		}
	}()

	file, isFile := sh.in.(*os.File)
	useEditor := isFile && IsTerminal(file)
	reader := bufio.NewReader(sh.in)
	ed := NewEditor(reader, sh.out, sh.session.History, sh.completer)

	for sh.session.Running() {
		var line string
		var err error
		if useEditor {
			ed.SetPrompt(sh.session.Prompt)
			restore, rawErr := MakeRaw(file)
			if rawErr != nil {
				sh.log.Warn("raw mode unavailable", "error", rawErr)
				useEditor = false
				continue
			}
			line, err = ed.ReadLine()
			restore()
		} else {
			fmt.Fprint(sh.out, sh.session.Prompt)
			line, err = readLine(reader)
		}

		sh.Submit(line)

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readLine reads one plain line outside raw mode. A final unterminated
// line is still returned alongside io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
