// Package format implements the canonical printer (spec.md §4.5,
// component C3): the single rendering used both for REPL output and for
// quoting printed forms inside error-message templates.
package format

import (
	"strings"

	"github.com/ourscheme/ourscheme/ast"
)

// Print renders v in OurScheme's canonical form.
func Print(v ast.Value) string {
	var sb strings.Builder
	writeValue(&sb, v, 0)
	return sb.String()
}

func writeValue(sb *strings.Builder, v ast.Value, indent int) {
	switch t := v.(type) {
	case *ast.Str:
		sb.WriteString(quoteStr(t.Val))
	case *ast.Pair:
		writePair(sb, t, indent)
	case *ast.Quoted:
		writeQuoteBody(sb, t.Value, indent)
	default:
		// Int, Real, Sym, Bool, NilValue, *Primitive, *Special, *Closure
		// already render their canonical single-token form via String().
		sb.WriteString(v.String())
	}
}

// isQuoteForm reports whether p is the 2-element proper list (quote X),
// which prints identically to the reader-level *ast.Quoted regardless of
// which representation produced it (spec.md §9).
func isQuoteForm(p *ast.Pair) bool {
	if p.Car != ast.Value(ast.Sym("quote")) {
		return false
	}
	cdr, ok := p.Cdr.(*ast.Pair)
	if !ok {
		return false
	}
	_, isNil := cdr.Cdr.(ast.NilValue)
	return isNil
}

func writeQuoteBody(sb *strings.Builder, inner ast.Value, indent int) {
	sb.WriteString("( quote\n")
	sb.WriteString(strings.Repeat(" ", indent+2))
	writeValue(sb, inner, indent+2)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(")")
}

func isAtomic(v ast.Value) bool {
	switch v.(type) {
	case *ast.Pair, *ast.Quoted:
		return false
	default:
		return true
	}
}

// canPrintFlat reports whether p is a proper list of only atomic
// elements, which prints on a single line ("( e1 e2 e3)") rather than
// the fully broken-out multi-line form.
func canPrintFlat(p *ast.Pair) bool {
	if isQuoteForm(p) {
		return false
	}
	elems, ok := ast.ListToSlice(p)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !isAtomic(e) {
			return false
		}
	}
	return true
}

func writeFlat(sb *strings.Builder, p *ast.Pair) {
	elems, _ := ast.ListToSlice(p)
	sb.WriteString("( ")
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(" ")
		}
		writeValue(sb, e, 0)
	}
	sb.WriteString(")")
}

func writePair(sb *strings.Builder, p *ast.Pair, indent int) {
	if isQuoteForm(p) {
		inner := p.Cdr.(*ast.Pair).Car
		writeQuoteBody(sb, inner, indent)
		return
	}
	if canPrintFlat(p) {
		writeFlat(sb, p)
		return
	}

	sb.WriteString("( ")
	writeValue(sb, p.Car, indent+2)

	cur := p.Cdr
	for {
		switch t := cur.(type) {
		case ast.NilValue:
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString(")")
			return
		case *ast.Pair:
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", indent+2))
			writeValue(sb, t.Car, indent+2)
			cur = t.Cdr
		default:
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", indent+2))
			sb.WriteString(".")
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", indent+2))
			writeValue(sb, cur, indent+2)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString(")")
			return
		}
	}
}

func quoteStr(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
