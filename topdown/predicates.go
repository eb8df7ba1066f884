package topdown

import "github.com/ourscheme/ourscheme/ast"

// boolResult maps a Go bool onto the language's two truth values: #t,
// or Nil (the unique false value — spec.md §3, never Bool(false)).
func boolResult(b bool) ast.Value {
	if b {
		return ast.Bool(true)
	}
	return ast.Nil
}

// predicate adapts a single-argument Go bool test into a Primitive.Fn.
func predicate(test func(ast.Value) bool) func([]ast.Value) (ast.Value, *ast.Error) {
	return func(args []ast.Value) (ast.Value, *ast.Error) {
		return boolResult(test(args[0])), nil
	}
}

func isAtom(v ast.Value) bool {
	_, isPair := v.(*ast.Pair)
	_, isQuoted := v.(*ast.Quoted)
	return !isPair && !isQuoted
}

func isPair(v ast.Value) bool { return isPairArg(v) }

// isList reports whether v is a finite, Nil-terminated cons chain
// (spec.md §9's open question: cyclic structures are out of scope, so a
// simple walk suffices).
func isList(v ast.Value) bool { return ast.IsProperList(v) }

func isNull(v ast.Value) bool {
	_, ok := v.(ast.NilValue)
	return ok
}

func isInteger(v ast.Value) bool {
	_, ok := v.(ast.Int)
	return ok
}

// isReal implements real?. The ground-truth original treats real? as an
// alias of number? (prim_is_real accepts both INT and FLOAT), so an
// integer satisfies it too, even though real?/number? are listed as
// distinct predicates.
func isReal(v ast.Value) bool {
	switch v.(type) {
	case ast.Real, ast.Int:
		return true
	}
	return false
}

func isNumber(v ast.Value) bool {
	return isInteger(v) || isReal(v)
}

func isStringVal(v ast.Value) bool {
	_, ok := v.(*ast.Str)
	return ok
}

// isBoolean implements boolean?. nil is lexed as a BOOLEAN-typed atom in
// the ground-truth original (the same token class as t/#t), so with Nil
// as this model's unique false value, boolean? must accept it too.
func isBoolean(v ast.Value) bool {
	switch v.(type) {
	case ast.Bool, ast.NilValue:
		return true
	}
	return false
}

func isSymbol(v ast.Value) bool {
	_, ok := v.(ast.Sym)
	return ok
}
