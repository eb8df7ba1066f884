package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ourscheme/ourscheme/internal/logging"
)

func runBatch(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := New(&out, "", true, logging.NewNoOp())
	r.RunBatch(strings.NewReader(input))
	return out.String()
}

// TestReplArithmeticThenExit matches spec.md §8 scenario 1, followed by
// (exit) (spec.md §6.1's exit branch: no ERROR line, just the sign-off).
func TestReplArithmeticThenExit(t *testing.T) {
	got := runBatch(t, "ignored-handshake\n(+ 1 2 3)\n(exit)\n")
	want := "Welcome to OurScheme!\n\n> 6\n> \nThanks for using OurScheme!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestReplDefineThenEOF matches spec.md §8 scenario 2's "x defined"
// output, then terminates via stdin EOF rather than (exit), exercising
// spec.md §6.1's EOF branch (the extra ERROR line).
func TestReplDefineThenEOF(t *testing.T) {
	got := runBatch(t, "ignored-handshake\n(define x 10)\n")
	want := "Welcome to OurScheme!\n\n> x defined\n> ERROR (no more input) : END-OF-FILE encountered\nThanks for using OurScheme!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestReplErrorThenContinues matches spec.md §8 scenario 6: an eval
// error aborts only the offending top-level form (spec.md §7); the
// session continues normally afterward.
func TestReplErrorThenContinues(t *testing.T) {
	got := runBatch(t, "ignored-handshake\n(1 2 3)\n(+ 1 1)\n(exit)\n")
	want := "Welcome to OurScheme!\n\n> " +
		"ERROR (attempt to apply non-function) : 1" +
		"\n> 2\n> \nThanks for using OurScheme!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestReplMultiLineBuffering exercises the incomplete-input buffering
// path (spec.md §7): an open list spanning two input lines parses as
// one top-level form once the close paren arrives.
func TestReplMultiLineBuffering(t *testing.T) {
	got := runBatch(t, "ignored-handshake\n(+ 1\n2 3)\n(exit)\n")
	want := "Welcome to OurScheme!\n\n> 6\n> \nThanks for using OurScheme!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestReplNoClosingQuoteScenario matches spec.md §8 scenario 5, then
// confirms the session survives and keeps prompting.
func TestReplNoClosingQuoteScenario(t *testing.T) {
	got := runBatch(t, "ignored-handshake\n\"unterminated\n(+ 1 1)\n(exit)\n")
	want := "Welcome to OurScheme!\n\n> " +
		"ERROR (no closing quote) : END-OF-LINE encountered at Line 1 Column 14" +
		"\n> 2\n> \nThanks for using OurScheme!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
