// Package cmd wires the cobra command tree for the ourscheme binary
// (spec.md §4, component C8's process entry point). It follows the
// teacher's cmd package: a package-level RootCommand that main.go
// executes, with flags registered from an init function.
package cmd

import (
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/ourscheme/ourscheme/internal/logging"
	"github.com/ourscheme/ourscheme/repl"
)

const defaultHistoryFile = ".ourscheme_history"

// RootCommand is the entry point main.go executes. Unlike the teacher,
// which dispatches to subcommands (run, build, eval, ...), OurScheme
// has exactly one mode: read S-expressions from stdin and evaluate
// them, so the root command itself runs the REPL.
var RootCommand = &cobra.Command{
	Use:   "ourscheme",
	Short: "An interactive OurScheme REPL",
	Long: `ourscheme starts an interactive read-eval-print loop for the
OurScheme language: a small Scheme-like S-expression dialect.

Input is read from stdin one S-expression at a time, evaluated, and the
result (or a diagnostic) is printed to stdout. The session ends on
(exit) or end-of-file.`,
}

func init() {
	var debug bool
	var historyFile string
	var noVerbose bool

	RootCommand.Flags().BoolVar(&debug, "debug", false, "log each evaluated form to stderr")
	RootCommand.Flags().StringVar(&historyFile, "history-file", defaultHistoryPath(), "set path of the line-editor history file")
	RootCommand.Flags().BoolVar(&noVerbose, "no-verbose", false, "start with verbose mode off (suppresses define/clean-environment confirmations)")

	RootCommand.Run = func(cmd *cobra.Command, args []string) {
		log := logging.Logger(logging.NewNoOp())
		if debug {
			std := logging.New()
			std.SetLevel(logging.Debug)
			std.SetOutput(os.Stderr)
			log = std
		}

		r := repl.New(os.Stdout, historyFile, !noVerbose, log)

		if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) != 0 {
			r.Loop()
			return
		}
		r.RunBatch(os.Stdin)
	}
}

// defaultHistoryPath mirrors the teacher's historyPath(): the history
// file lives in $HOME, falling back to a bare relative name when HOME
// isn't set.
func defaultHistoryPath() string {
	home := os.Getenv("HOME")
	if len(home) == 0 {
		return defaultHistoryFile
	}
	return path.Join(home, defaultHistoryFile)
}
