package ast

import "testing"

func TestScannerTokenKinds(t *testing.T) {
	tests := []struct {
		note  string
		input string
		want  []TokenKind
	}{
		{"parens", "()", []TokenKind{TokenLParen, TokenRParen, TokenEOF}},
		{"adjacent lists", "(())", []TokenKind{TokenLParen, TokenLParen, TokenRParen, TokenRParen, TokenEOF}},
		{"quote", "'x", []TokenKind{TokenQuote, TokenSymbol, TokenEOF}},
		{"int", "42", []TokenKind{TokenInt, TokenEOF}},
		{"negative int", "-42", []TokenKind{TokenInt, TokenEOF}},
		{"float", "3.14", []TokenKind{TokenFloat, TokenEOF}},
		{"float exponent", "1e10", []TokenKind{TokenFloat, TokenEOF}},
		{"underscore forces symbol", "1_000", []TokenKind{TokenSymbol, TokenEOF}},
		{"string", `"hi"`, []TokenKind{TokenString, TokenEOF}},
		{"true alias t", "t", []TokenKind{TokenTrue, TokenEOF}},
		{"true alias hash", "#t", []TokenKind{TokenTrue, TokenEOF}},
		{"nil alias", "nil", []TokenKind{TokenNil, TokenEOF}},
		{"nil alias hash", "#f", []TokenKind{TokenNil, TokenEOF}},
		{"dot alone", "(a . b)", []TokenKind{TokenLParen, TokenSymbol, TokenDot, TokenSymbol, TokenRParen, TokenEOF}},
		{"dot in number", "1.5", []TokenKind{TokenFloat, TokenEOF}},
		{"comment skipped", "1 ; comment\n2", []TokenKind{TokenInt, TokenInt, TokenEOF}},
		{"unclosed string eof", `"abc`, []TokenKind{TokenUnclosedString, TokenEOF}},
		{"unclosed string newline", "\"abc\ndef", []TokenKind{TokenUnclosedString, TokenSymbol, TokenEOF}},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			sc := NewScanner(tc.input)
			var got []TokenKind
			for {
				tok := sc.NextToken()
				got = append(got, tok.Kind)
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v kinds, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestScannerStringEscapes(t *testing.T) {
	sc := NewScanner(`"a\nb\tc\"d\\e\x"`)
	tok := sc.NextToken()
	if tok.Kind != TokenString {
		t.Fatalf("got kind %v, want TokenString", tok.Kind)
	}
	want := "a\nb\tc\"d\\e\\x"
	if tok.Text != want {
		t.Errorf("got %q, want %q", tok.Text, want)
	}
}

func TestScannerColumns(t *testing.T) {
	sc := NewScanner(`"unterminated`)
	tok := sc.NextToken()
	if tok.Kind != TokenUnclosedString {
		t.Fatalf("got kind %v, want TokenUnclosedString", tok.Kind)
	}
	if tok.Line != 1 || tok.EndCol != 14 {
		t.Errorf("got Line %d Col %d, want Line 1 Col 14", tok.Line, tok.EndCol)
	}
}

func TestScannerPeekDoesNotConsume(t *testing.T) {
	sc := NewScanner("(foo)")
	peeked := sc.PeekToken()
	next := sc.NextToken()
	if peeked.Kind != next.Kind || peeked.Text != next.Text {
		t.Fatalf("peek %+v did not match next %+v", peeked, next)
	}
	second := sc.NextToken()
	if second.Kind != TokenSymbol || second.Text != "foo" {
		t.Errorf("got %+v, want SYMBOL foo", second)
	}
}

func TestScannerSetPosition(t *testing.T) {
	sc := NewScanner("(a) (b)")
	first := sc.NextToken() // (
	_ = first
	sc.SetPosition(4)
	tok := sc.NextToken()
	if tok.Kind != TokenLParen {
		t.Fatalf("got %+v after SetPosition, want LPAREN", tok)
	}
}
