// Package repl implements the REPL driver (spec.md §4, component C8):
// it owns the root environment and the evaluator, reads S-expressions
// from the input stream, and implements the standard I/O protocol in
// spec.md §6.1. The buffering approach (accumulate lines until a
// top-level form parses, or until a diagnostic or exit unwinds it)
// follows the teacher's repl.REPL evalBufferOne/evalBufferMulti split.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/ourscheme/ourscheme/ast"
	"github.com/ourscheme/ourscheme/format"
	"github.com/ourscheme/ourscheme/internal/logging"
	"github.com/ourscheme/ourscheme/topdown"
)

// REPL holds the session-scoped mutable state spec.md §9 calls out: the
// root environment and (inside the evaluator) the verbose flag. The
// partial-input buffer is a local of run.
type REPL struct {
	out         io.Writer
	historyPath string
	ev          *topdown.Evaluator
	env         ast.Env
}

// New constructs a REPL with a fresh root environment and evaluator.
// verbose sets the initial value of the verbose flag (spec.md §9); log
// receives per-form eval tracing when the --debug flag is set.
func New(out io.Writer, historyPath string, verbose bool, log logging.Logger) *REPL {
	ev := topdown.New(log)
	ev.SetVerbose(verbose)
	return &REPL{
		out:         out,
		historyPath: historyPath,
		ev:          ev,
		env:         topdown.NewRootEnv(),
	}
}

// lineSource abstracts the one thing Loop and RunBatch differ on: where
// the next raw line of input comes from, and whether reading it prints
// a prompt first.
type lineSource interface {
	readLine(prompt string) (string, error)
}

type linerSource struct{ state *liner.State }

func (l *linerSource) readLine(prompt string) (string, error) { return l.state.Prompt(prompt) }

// scanSource drives the same protocol over a plain io.Reader, for piped
// stdin and for tests — no line editing, no history, just prompt-then-
// read-a-line.
type scanSource struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (s *scanSource) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

// Loop runs the interactive REPL against the terminal via liner, until
// (exit) or stdin EOF.
func (r *REPL) Loop() {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)
	r.loadHistory(state)
	r.run(&linerSource{state: state})
	r.saveHistory(state)
}

// RunBatch drives the same protocol over an arbitrary reader (piped
// stdin, or a test fixture), writing prompts to out exactly as Loop
// does but without liner's line editing or history.
func (r *REPL) RunBatch(in io.Reader) {
	r.run(&scanSource{sc: bufio.NewScanner(in), out: r.out})
}

// run implements spec.md §6.1: a throwaway handshake line, the welcome
// banner, then the read-buffer-eval-print cycle.
func (r *REPL) run(src lineSource) {
	src.readLine("")
	fmt.Fprintln(r.out, "Welcome to OurScheme!")

	var buffer string
	for {
		if strings.TrimSpace(buffer) == "" {
			line, err := src.readLine("\n> ")
			if err != nil {
				r.finishOnEOF()
				return
			}
			buffer = line + "\n"
		}

		sc := ast.NewScanner(buffer)
		p := ast.NewParser(sc)
		if p.Empty() {
			buffer = ""
			continue
		}

		value, perr := p.Parse()
		if errors.Is(perr, ast.ErrNotFinish) {
			line, err := src.readLine("")
			if err != nil {
				r.finishOnEOF()
				return
			}
			buffer += line + "\n"
			continue
		}
		if perr != nil {
			if astErr, ok := perr.(*ast.Error); ok {
				fmt.Fprint(r.out, astErr.Error())
			}
			buffer = ""
			continue
		}

		buffer = buffer[p.LastExprEndOffset():]

		result, evalErr := r.ev.EvalTopLevel(value, r.env)
		if evalErr != nil {
			if evalErr.Code == ast.ErrExit {
				fmt.Fprint(r.out, "\nThanks for using OurScheme!")
				return
			}
			fmt.Fprint(r.out, evalErr.Error())
			continue
		}
		fmt.Fprint(r.out, format.Print(result))
	}
}

// finishOnEOF implements the EOF branch of spec.md §6.1: the
// no-more-input diagnostic, which only ever fires on stdin EOF, never
// on (exit).
func (r *REPL) finishOnEOF() {
	fmt.Fprint(r.out, "ERROR (no more input) : END-OF-FILE encountered")
	fmt.Fprint(r.out, "\nThanks for using OurScheme!")
}

func (r *REPL) loadHistory(state *liner.State) {
	if r.historyPath == "" {
		return
	}
	if f, err := os.Open(r.historyPath); err == nil {
		_, _ = state.ReadHistory(f)
		f.Close()
	}
}

func (r *REPL) saveHistory(state *liner.State) {
	if r.historyPath == "" {
		return
	}
	if f, err := os.Create(r.historyPath); err == nil {
		_, _ = state.WriteHistory(f)
		f.Close()
	}
}
