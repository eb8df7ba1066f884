package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseOne(t *testing.T, input string) (Value, error) {
	t.Helper()
	sc := NewScanner(input)
	p := NewParser(sc)
	if p.Empty() {
		t.Fatalf("input %q parsed as empty", input)
	}
	return p.Parse()
}

func TestParserAtoms(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"3.5", Real(3.5)},
		{"foo", Sym("foo")},
		{"t", Bool(true)},
		{"nil", Nil},
	}
	for _, tc := range tests {
		got, err := parseOne(t, tc.input)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %#v, want %#v", tc.input, got, tc.want)
		}
	}
}

func TestParserEmptyInput(t *testing.T) {
	sc := NewScanner("   ")
	p := NewParser(sc)
	if !p.Empty() {
		t.Fatalf("expected empty input to be recognized as such")
	}
}

func TestParserProperList(t *testing.T) {
	got, err := parseOne(t, "(1 2 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	elems, ok := ListToSlice(got)
	if !ok {
		t.Fatalf("expected proper list, got %#v", got)
	}
	want := []Value{Int(1), Int(2), Int(3)}
	if diff := cmp.Diff(want, elems); diff != "" {
		t.Errorf("parsed elements mismatch (-want +got):\n%s", diff)
	}
}

func TestParserDottedPair(t *testing.T) {
	got, err := parseOne(t, "(1 . 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pair, ok := got.(*Pair)
	if !ok {
		t.Fatalf("got %#v, want *Pair", got)
	}
	if pair.Car != Int(1) || pair.Cdr != Int(2) {
		t.Errorf("got %v . %v, want 1 . 2", pair.Car, pair.Cdr)
	}
}

func TestParserEmptyList(t *testing.T) {
	got, err := parseOne(t, "()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Value(Nil) {
		t.Errorf("got %#v, want Nil", got)
	}
}

func TestParserQuote(t *testing.T) {
	got, err := parseOne(t, "'x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, ok := got.(*Quoted)
	if !ok {
		t.Fatalf("got %#v, want *Quoted", got)
	}
	if q.Value != Sym("x") {
		t.Errorf("got %v, want x", q.Value)
	}
}

func TestParserNotFinish(t *testing.T) {
	tests := []string{"(1 2", "'", "(1 .", "(a . b", `"abc`}
	for _, input := range tests {
		sc := NewScanner(input)
		p := NewParser(sc)
		if p.Empty() {
			t.Fatalf("%q: should not be empty input", input)
		}
		_, err := p.Parse()
		if !errors.Is(err, ErrNotFinish) {
			t.Errorf("%q: got err %v, want ErrNotFinish", input, err)
		}
	}
}

func TestParserUnexpectedToken(t *testing.T) {
	_, err := parseOne(t, ")")
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %v, want *Error", err)
	}
	if perr.Code != ErrUnexpectedToken || perr.Expect != ExpectAtomOrLParen {
		t.Errorf("got %#v, want ErrUnexpectedToken/ExpectAtomOrLParen", perr)
	}
}

func TestParserUnexpectedTokenExpectRParen(t *testing.T) {
	_, err := parseOne(t, "(1 . 2 3)")
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %v, want *Error", err)
	}
	if perr.Code != ErrUnexpectedToken || perr.Expect != ExpectRParen {
		t.Errorf("got %#v, want ErrUnexpectedToken/ExpectRParen", perr)
	}
}

func TestParserNoClosingQuote(t *testing.T) {
	_, err := parseOne(t, "\"unterminated\n")
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %v, want *Error", err)
	}
	if perr.Code != ErrNoClosingQuote {
		t.Fatalf("got code %v, want ErrNoClosingQuote", perr.Code)
	}
	want := "ERROR (no closing quote) : END-OF-LINE encountered at Line 1 Column 14"
	if perr.Error() != want {
		t.Errorf("got %q, want %q", perr.Error(), want)
	}
}

func TestParserLastExprEndOffset(t *testing.T) {
	sc := NewScanner("(1 2) 3")
	p := NewParser(sc)
	if _, err := p.Parse(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off := p.LastExprEndOffset(); off != 5 {
		t.Errorf("got offset %d, want 5", off)
	}
}
