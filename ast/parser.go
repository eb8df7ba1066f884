package ast

import "strconv"

// notFinishError is the sentinel "incomplete input" signal: the REPL
// keeps its partial buffer and reads another line rather than treating
// this as a diagnostic. It is never formatted for the user.
type notFinishError struct{}

func (notFinishError) Error() string { return "input not finished" }

// ErrNotFinish is returned by Parser.Parse when more input is needed to
// complete the current top-level S-expression (open list, trailing dot,
// trailing quote, or a string left open at the end of the buffer).
var ErrNotFinish error = notFinishError{}

// Parser assembles tokens from a Scanner into a single S-expression
// value per call to Parse, per the grammar in spec.md §4.2:
//
//	S_EXP     ::= ATOM | QUOTE S_EXP | '(' LIST ')'
//	LIST      ::= ε | S_EXP LIST_TAIL
//	LIST_TAIL ::= ε | S_EXP LIST_TAIL | '.' S_EXP
type Parser struct {
	sc      *Scanner
	cur     Token
	prevEnd int
}

// NewParser constructs a Parser over sc, eagerly consuming the first
// token. Callers must check Empty() before calling Parse: an EOF as the
// very first token is empty input (the REPL silently loops for another
// line), distinct from a parse error.
func NewParser(sc *Scanner) *Parser {
	p := &Parser{sc: sc}
	p.cur = sc.NextToken()
	return p
}

// Empty reports whether construction found no tokens at all.
func (p *Parser) Empty() bool { return p.cur.Kind == TokenEOF }

// CurrentToken returns the parser's current lookahead token.
func (p *Parser) CurrentToken() Token { return p.cur }

// LastExprEndOffset returns the scanner byte offset just past the most
// recently parsed top-level S-expression, so the REPL can resume
// scanning the same buffer for the next top-level form.
func (p *Parser) LastExprEndOffset() int { return p.prevEnd }

func (p *Parser) advance() {
	p.prevEnd = p.sc.Position()
	p.cur = p.sc.NextToken()
}

// Parse reads one S-expression. It returns ErrNotFinish if the buffer
// ran out before the expression was complete, or a *Error for any other
// malformed input.
func (p *Parser) Parse() (Value, error) {
	return p.parseSExp()
}

func (p *Parser) parseSExp() (Value, error) {
	tok := p.cur

	switch tok.Kind {
	case TokenEOF:
		return nil, ErrNotFinish
	case TokenUnclosedString:
		return nil, p.unclosedStringErr()
	case TokenLParen:
		p.advance()
		return p.parseList()
	case TokenQuote:
		p.advance()
		inner, err := p.parseSExp()
		if err != nil {
			return nil, err
		}
		return &Quoted{Value: inner}, nil
	case TokenInt:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.unexpectedToken(ExpectAtomOrLParen)
		}
		p.advance()
		return Int(n), nil
	case TokenFloat:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.unexpectedToken(ExpectAtomOrLParen)
		}
		p.advance()
		return Real(f), nil
	case TokenString:
		s := tok.Text
		p.advance()
		return NewStr(s), nil
	case TokenSymbol:
		p.advance()
		return Sym(tok.Text), nil
	case TokenTrue:
		p.advance()
		return Bool(true), nil
	case TokenNil:
		p.advance()
		return Nil, nil
	default:
		// ')' or '.' where an atom or '(' was expected.
		return nil, p.unexpectedToken(ExpectAtomOrLParen)
	}
}

// parseList is entered just after consuming the opening '('.
func (p *Parser) parseList() (Value, error) {
	if p.cur.Kind == TokenRParen {
		p.advance()
		return Nil, nil
	}
	return p.parseListItems()
}

func (p *Parser) parseListItems() (Value, error) {
	head, err := p.parseSExp()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseListTail()
	if err != nil {
		return nil, err
	}
	return Cons(head, tail), nil
}

func (p *Parser) parseListTail() (Value, error) {
	switch p.cur.Kind {
	case TokenRParen:
		p.advance()
		return Nil, nil
	case TokenDot:
		p.advance()
		tailVal, err := p.parseSExp()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != TokenRParen {
			if p.cur.Kind == TokenEOF {
				return nil, ErrNotFinish
			}
			return nil, p.unexpectedToken(ExpectRParen)
		}
		p.advance()
		return tailVal, nil
	case TokenEOF:
		return nil, ErrNotFinish
	case TokenUnclosedString:
		return nil, p.unclosedStringErr()
	default:
		return p.parseListItems()
	}
}

func (p *Parser) unexpectedToken(expect ExpectKind) *Error {
	tok := p.cur
	return &Error{
		Code:   ErrUnexpectedToken,
		Expect: expect,
		Token:  tok.Text,
		Loc:    NewLocation(tok.Line, tok.StartCol),
	}
}

// unclosedStringErr reports a string the scanner could not close: one
// that ran into the end of the buffer is incomplete input (ErrNotFinish),
// one cut off by a line end is a no-closing-quote diagnostic.
func (p *Parser) unclosedStringErr() error {
	tok := p.cur
	if p.sc.Position() >= len(p.sc.src) {
		return ErrNotFinish
	}
	return &Error{
		Code: ErrNoClosingQuote,
		Loc:  NewLocation(tok.Line, tok.EndCol),
	}
}
