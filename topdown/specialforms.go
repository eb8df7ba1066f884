package topdown

import (
	"github.com/ourscheme/ourscheme/ast"
	"github.com/ourscheme/ourscheme/format"
)

// specialQuote implements (quote expr): spec.md §4.3.1.
func specialQuote(_ ast.Evaluator, _ ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	return args.(*ast.Pair).Car, nil
}

// specialAnd implements (and e1 e2 ...): short-circuits on the first
// Nil, evaluating nothing past it (spec.md §8's short-circuit
// invariant).
func specialAnd(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	exprs, _ := ast.ListToSlice(args)
	var result ast.Value = ast.Bool(true)
	for _, e := range exprs {
		v, err := ev.Eval(e, env, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		if ast.IsFalse(v) {
			return ast.Nil, nil
		}
		result = v
	}
	return result, nil
}

// specialOr implements (or e1 e2 ...): returns the first non-Nil value
// without evaluating what follows it, or Nil if every branch is false.
func specialOr(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	exprs, _ := ast.ListToSlice(args)
	for _, e := range exprs {
		v, err := ev.Eval(e, env, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		if ast.IsTrue(v) {
			return v, nil
		}
	}
	return ast.Nil, nil
}

// specialBegin implements (begin e1 e2 ...): evaluate in order, return
// the last.
func specialBegin(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	exprs, _ := ast.ListToSlice(args)
	var result ast.Value = ast.NoValue
	for _, e := range exprs {
		v, err := ev.Eval(e, env, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// specialIf implements (if test then [else]): spec.md §4.3.1. A false
// test with no else branch legitimately produces NoValue, which bubbles
// up to either NoReturnValue (top level) or UnboundParameter (argument
// position) depending on where the enclosing Eval call sits.
func specialIf(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	exprs, ok := ast.ListToSlice(args)
	if !ok || len(exprs) < 2 || len(exprs) > 3 {
		return nil, arityErr("if")
	}
	test, err := ev.Eval(exprs[0], env, ast.InnerLevel)
	if err != nil {
		return nil, err
	}
	if ast.IsTrue(test) {
		return ev.Eval(exprs[1], env, ast.InnerLevel)
	}
	if len(exprs) == 3 {
		return ev.Eval(exprs[2], env, ast.InnerLevel)
	}
	return ast.NoValue, nil
}

// specialCond implements (cond (test body...) ...): spec.md §4.3.1. The
// literal symbol else is only treated as always-true on the final
// clause; anywhere else it is looked up like any other symbol.
func specialCond(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	clauses, ok := ast.ListToSlice(args)
	if !ok || len(clauses) == 0 {
		return nil, &ast.Error{Code: ast.ErrCondFormat, Printed: format.Print(ast.Cons(ast.Sym("cond"), args))}
	}
	for i, clause := range clauses {
		parts, ok := ast.ListToSlice(clause)
		if !ok || len(parts) == 0 {
			return nil, &ast.Error{Code: ast.ErrCondFormat, Printed: format.Print(ast.Cons(ast.Sym("cond"), args))}
		}
		test := parts[0]
		isElse := i == len(clauses)-1
		var fires bool
		if isElse {
			if sym, ok := test.(ast.Sym); ok && sym == "else" {
				fires = true
			}
		}
		if !fires {
			v, err := ev.Eval(test, env, ast.InnerLevel)
			if err != nil {
				return nil, err
			}
			fires = ast.IsTrue(v)
		}
		if !fires {
			continue
		}
		var result ast.Value = ast.NoValue
		for _, b := range parts[1:] {
			v, err := ev.Eval(b, env, ast.InnerLevel)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil
	}
	return ast.NoValue, nil
}

// specialLet implements (let ((s e) ...) body...): spec.md §4.3.1. Every
// binding expression is evaluated in the enclosing environment, before
// any of them is bound, so later bindings cannot see earlier ones.
func specialLet(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	parts, ok := ast.ListToSlice(args)
	if !ok || len(parts) < 2 {
		return nil, &ast.Error{Code: ast.ErrLetFormat, Printed: format.Print(ast.Cons(ast.Sym("let"), args))}
	}
	var bindings []ast.Value
	if !isNilList(parts[0]) {
		bindings, ok = ast.ListToSlice(parts[0])
		if !ok {
			return nil, &ast.Error{Code: ast.ErrLetFormat, Printed: format.Print(ast.Cons(ast.Sym("let"), args))}
		}
	}

	type pending struct {
		name string
		val  ast.Value
	}
	resolved := make([]pending, len(bindings))
	for i, b := range bindings {
		bp, ok := ast.ListToSlice(b)
		if !ok || len(bp) != 2 {
			return nil, &ast.Error{Code: ast.ErrLetFormat, Printed: format.Print(ast.Cons(ast.Sym("let"), args))}
		}
		name, ok := bp[0].(ast.Sym)
		if !ok {
			return nil, &ast.Error{Code: ast.ErrLetFormat, Printed: format.Print(ast.Cons(ast.Sym("let"), args))}
		}
		v, err := ev.Eval(bp[1], env, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		resolved[i] = pending{name: string(name), val: v}
	}

	inner := env.Child()
	for _, p := range resolved {
		inner.Bind(p.name, p.val)
	}

	var result ast.Value = ast.NoValue
	for _, b := range parts[1:] {
		v, err := ev.Eval(b, inner, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// specialDefine implements (define sym expr) and its procedure sugar
// (define (f p...) body...): spec.md §4.3.1.
func specialDefine(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	parts, ok := ast.ListToSlice(args)
	if !ok || len(parts) < 2 {
		return nil, defineFormatErr(args)
	}

	switch head := parts[0].(type) {
	case ast.Sym:
		if len(parts) != 2 {
			return nil, defineFormatErr(args)
		}
		v, err := ev.Eval(parts[1], env, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		if !env.Define(string(head), v) {
			return nil, defineFormatErr(args)
		}
		return defineResult(ev, string(head)), nil
	case *ast.Pair:
		// (define (f p...) body...) desugars to
		// (define f (lambda (p...) body...)).
		name, ok := head.Car.(ast.Sym)
		if !ok {
			return nil, defineFormatErr(args)
		}
		lambdaForm := ast.Cons(ast.Sym("lambda"), ast.Cons(head.Cdr, ast.NewList(parts[1:]...)))
		closureVal, err := ev.Eval(lambdaForm, env, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		if c, ok := closureVal.(*ast.Closure); ok {
			c.Name = string(name)
		}
		if !env.Define(string(name), closureVal) {
			return nil, defineFormatErr(args)
		}
		return defineResult(ev, string(name)), nil
	default:
		return nil, defineFormatErr(args)
	}
}

func defineFormatErr(args ast.Value) *ast.Error {
	return &ast.Error{Code: ast.ErrDefineFormat, Printed: format.Print(ast.Cons(ast.Sym("define"), args))}
}

func defineResult(ev ast.Evaluator, name string) ast.Value {
	if ev.Verbose() {
		return &ast.Confirmation{Text: name + " defined"}
	}
	return ast.Sym(name)
}

// specialCleanEnvironment implements (clean-environment): spec.md
// §4.3.2, §4.4. It clears only the root frame's user bindings; it is
// the caller's job (the REPL, holding the root Env) to ensure env here
// already is the root.
func specialCleanEnvironment(ev ast.Evaluator, env ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	if !isNilList(args) {
		return nil, arityErr("clean-environment")
	}
	env.CleanUser()
	if ev.Verbose() {
		return &ast.Confirmation{Text: "environment cleaned"}, nil
	}
	return ast.Bool(true), nil
}

// specialExit implements (exit): spec.md §7 treats this as a normal
// control-flow unwind, not an error, but it is threaded through the
// same *ast.Error channel as everything else (see ast.ErrExit).
func specialExit(_ ast.Evaluator, _ ast.Env, args ast.Value) (ast.Value, *ast.Error) {
	if !isNilList(args) {
		return nil, arityErr("exit")
	}
	return nil, &ast.Error{Code: ast.ErrExit}
}
