package topdown

import (
	"github.com/ourscheme/ourscheme/ast"
	"github.com/ourscheme/ourscheme/environment"
)

func anySpec(ast.Value) bool { return true }

// NewRootEnv builds the root environment frame seeded with the full
// built-in table named in spec.md §4.3.1/§4.3.2/§6.2: special forms,
// primitives, and the three dummy symbols lambda/verbose/verbose?.
func NewRootEnv() ast.Env {
	return environment.NewRoot(builtins())
}

func builtins() map[string]ast.Value {
	b := map[string]ast.Value{}

	special := func(name string, min, max int, fn func(ast.Evaluator, ast.Env, ast.Value) (ast.Value, *ast.Error)) {
		b[name] = &ast.Special{Name: name, Min: min, Max: max, Fn: fn}
	}
	prim := func(name string, min, max int, args []ast.ArgSpec, fn func([]ast.Value) (ast.Value, *ast.Error)) {
		b[name] = &ast.Primitive{Name: name, Min: min, Max: max, Args: args, Fn: fn}
	}

	special("quote", 1, 1, specialQuote)
	special("define", 2, -1, specialDefine)
	special("and", 2, -1, specialAnd)
	special("or", 2, -1, specialOr)
	special("begin", 1, -1, specialBegin)
	special("if", 2, 3, specialIf)
	special("cond", 1, -1, specialCond)
	special("let", 2, -1, specialLet)
	special("clean-environment", 0, 0, specialCleanEnvironment)
	special("exit", 0, 0, specialExit)

	// lambda, verbose, verbose? are intercepted lexically by the
	// evaluator (spec.md §4.3 step 5) before any generic dispatch; these
	// bindings exist only so the symbols resolve to something printable.
	b["lambda"] = &ast.Dummy{Name: "lambda"}
	b["verbose"] = &ast.Dummy{Name: "verbose"}
	b["verbose?"] = &ast.Dummy{Name: "verbose?"}

	prim("cons", 2, 2, nil, primCons)
	prim("list", 0, -1, nil, primList)
	prim("car", 1, 1, []ast.ArgSpec{isPairArg}, primCar)
	prim("cdr", 1, 1, []ast.ArgSpec{isPairArg}, primCdr)

	prim("atom?", 1, 1, nil, predicate(isAtom))
	prim("pair?", 1, 1, nil, predicate(isPair))
	prim("list?", 1, 1, nil, predicate(isList))
	prim("null?", 1, 1, nil, predicate(isNull))
	prim("integer?", 1, 1, nil, predicate(isInteger))
	prim("real?", 1, 1, nil, predicate(isReal))
	prim("number?", 1, 1, nil, predicate(isNumber))
	prim("string?", 1, 1, nil, predicate(isStringVal))
	prim("boolean?", 1, 1, nil, predicate(isBoolean))
	prim("symbol?", 1, 1, nil, predicate(isSymbol))

	numSpec := []ast.ArgSpec{isNumber}
	prim("+", 2, -1, numSpec, primAdd)
	prim("-", 2, -1, numSpec, primSub)
	prim("*", 2, -1, numSpec, primMul)
	prim("/", 2, -1, numSpec, primDiv)

	prim(">", 2, -1, numSpec, chainCompare(func(a, b float64) bool { return a > b }))
	prim(">=", 2, -1, numSpec, chainCompare(func(a, b float64) bool { return a >= b }))
	prim("<", 2, -1, numSpec, chainCompare(func(a, b float64) bool { return a < b }))
	prim("<=", 2, -1, numSpec, chainCompare(func(a, b float64) bool { return a <= b }))
	prim("=", 2, -1, numSpec, chainCompare(func(a, b float64) bool { return a == b }))

	prim("not", 1, 1, nil, primNot)

	strSpec := []ast.ArgSpec{isStringVal}
	prim("string-append", 1, -1, strSpec, primStringAppend)
	prim("string>?", 2, -1, strSpec, chainStringCompare(func(a, b string) bool { return a > b }))
	prim("string<?", 2, -1, strSpec, chainStringCompare(func(a, b string) bool { return a < b }))
	prim("string=?", 2, -1, strSpec, chainStringCompare(func(a, b string) bool { return a == b }))

	prim("eqv?", 2, 2, []ast.ArgSpec{anySpec}, primEqv)
	prim("equal?", 2, 2, []ast.ArgSpec{anySpec}, primEqual)

	return b
}
