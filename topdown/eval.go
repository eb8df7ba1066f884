// Package topdown implements the evaluator (spec.md §4.3, component C7)
// together with the built-in special forms and primitives (component
// C6). The name and file layout follow the teacher's topdown package:
// eval.go holds the dispatch loop, and each family of built-ins gets
// its own file (arithmetic.go, comparison.go, predicates.go, strings.go,
// equivalence.go, constructors.go, specialforms.go).
package topdown

import (
	"github.com/ourscheme/ourscheme/ast"
	"github.com/ourscheme/ourscheme/format"
	"github.com/ourscheme/ourscheme/internal/logging"
)

// Evaluator implements ast.Evaluator. One Evaluator is created per REPL
// session; the REPL owns it and reuses it across every top-level form
// (spec.md §9 "Mutable global state" keeps the verbose flag alongside
// the REPL's other session state rather than behind a package-level
// singleton).
type Evaluator struct {
	verbose bool
	log     logging.Logger
}

// New returns an Evaluator with verbose mode on, matching the REPL
// transcript in spec.md §8 scenario 2 ("x defined" appears without any
// prior (verbose ...) call).
func New(log logging.Logger) *Evaluator {
	return &Evaluator{verbose: true, log: log}
}

func (ev *Evaluator) Verbose() bool     { return ev.verbose }
func (ev *Evaluator) SetVerbose(b bool) { ev.verbose = b }

// EvalTopLevel evaluates expr as the single S-expression the REPL just
// read from the input stream. It is the only caller that passes
// ast.TopLevel; every recursive call inside Eval uses ast.InnerLevel,
// which is what makes the level gate (spec.md §4.3 step 7) work without
// threading level through every special form by hand.
func (ev *Evaluator) EvalTopLevel(expr ast.Value, env ast.Env) (ast.Value, *ast.Error) {
	v, err := ev.Eval(expr, env, ast.TopLevel)
	if err != nil {
		return nil, err
	}
	if v == ast.NoValue {
		return nil, &ast.Error{Code: ast.ErrNoReturnValue, Printed: format.Print(expr)}
	}
	return v, nil
}

// Eval implements the ten-step dispatch rule in spec.md §4.3.
func (ev *Evaluator) Eval(expr ast.Value, env ast.Env, level ast.Level) (ast.Value, *ast.Error) {
	switch t := expr.(type) {
	case ast.Int, ast.Real, *ast.Str, ast.Bool, ast.NilValue:
		return expr, nil
	case ast.Sym:
		v, ok := env.Lookup(string(t))
		if !ok {
			return nil, &ast.Error{Code: ast.ErrUnboundSymbol, Name: string(t)}
		}
		return v, nil
	case *ast.Quoted:
		return t.Value, nil
	case *ast.Pair:
		return ev.evalPair(t, env, level)
	default:
		// Primitive, Special, Closure, Dummy: self-evaluating when they
		// flow back through Eval (e.g. a symbol bound to a procedure,
		// looked up and then returned as a value rather than applied).
		return expr, nil
	}
}

func (ev *Evaluator) evalPair(p *ast.Pair, env ast.Env, level ast.Level) (ast.Value, *ast.Error) {
	if ev.log != nil {
		ev.log.Debug("eval %s", format.Print(ast.Value(p)))
	}
	if sym, ok := p.Car.(ast.Sym); ok {
		switch sym {
		case "lambda":
			return ev.buildClosure(p.Cdr, env)
		case "verbose":
			return ev.evalSetVerbose(p.Cdr, env)
		case "verbose?":
			if !isNilList(p.Cdr) {
				return nil, arityErr("verbose?")
			}
			return boolResult(ev.verbose), nil
		}
	}

	callee, err := ev.Eval(p.Car, env, ast.InnerLevel)
	if err != nil {
		return nil, err
	}

	switch c := callee.(type) {
	case *ast.Special:
		if (c.Name == "define" || c.Name == "clean-environment" || c.Name == "exit") && level != ast.TopLevel {
			return nil, levelErr(c.Name)
		}
	case *ast.Primitive, *ast.Closure:
		// not level-gated
	default:
		return nil, &ast.Error{Code: ast.ErrNotCallable, Printed: format.Print(callee)}
	}

	argExprs, ok := ast.ListToSlice(p.Cdr)
	if !ok {
		return nil, &ast.Error{Code: ast.ErrNonList, Printed: format.Print(ast.Value(p))}
	}

	opName, min, max := calleeArity(callee)
	n := len(argExprs)
	if n < min || (max >= 0 && n > max) {
		return nil, &ast.Error{Code: ast.ErrIncorrectArity, Op: opName}
	}

	switch c := callee.(type) {
	case *ast.Special:
		return c.Fn(ev, env, p.Cdr)
	case *ast.Primitive:
		args, err := ev.evalArgs(env, argExprs)
		if err != nil {
			return nil, err
		}
		if idx, bad := firstBadArg(c.Args, args); bad {
			return nil, &ast.Error{Code: ast.ErrIncorrectArgumentType, Op: c.Name, Printed: format.Print(args[idx])}
		}
		return c.Fn(args)
	case *ast.Closure:
		args, err := ev.evalArgs(env, argExprs)
		if err != nil {
			return nil, err
		}
		callEnv := c.Env.Child()
		for i, param := range c.Params {
			callEnv.Bind(param, args[i])
		}
		var result ast.Value = ast.NoValue
		for _, b := range c.Body {
			result, err = ev.Eval(b, callEnv, ast.InnerLevel)
			if err != nil {
				return nil, err
			}
		}
		return result, nil
	}
	return nil, &ast.Error{Code: ast.ErrNotCallable, Printed: format.Print(callee)}
}

// evalArgs evaluates each argument expression left to right (spec.md §5
// ordering guarantee), rejecting any that legitimately produce no value.
func (ev *Evaluator) evalArgs(env ast.Env, exprs []ast.Value) ([]ast.Value, *ast.Error) {
	out := make([]ast.Value, len(exprs))
	for i, e := range exprs {
		v, err := ev.Eval(e, env, ast.InnerLevel)
		if err != nil {
			return nil, err
		}
		if v == ast.NoValue {
			return nil, &ast.Error{Code: ast.ErrUnboundParameter, Printed: format.Print(e)}
		}
		out[i] = v
	}
	return out, nil
}

func (ev *Evaluator) evalSetVerbose(argsList ast.Value, env ast.Env) (ast.Value, *ast.Error) {
	args, ok := ast.ListToSlice(argsList)
	if !ok || len(args) != 1 {
		return nil, arityErr("verbose")
	}
	v, err := ev.Eval(args[0], env, ast.InnerLevel)
	if err != nil {
		return nil, err
	}
	ev.verbose = ast.IsTrue(v)
	return boolResult(ev.verbose), nil
}

func (ev *Evaluator) buildClosure(rest ast.Value, env ast.Env) (ast.Value, *ast.Error) {
	p, ok := rest.(*ast.Pair)
	if !ok {
		return nil, &ast.Error{Code: ast.ErrLambdaFormat, Printed: format.Print(ast.Cons(ast.Sym("lambda"), rest))}
	}
	paramVals, ok := ast.ListToSlice(p.Car)
	if !ok {
		return nil, &ast.Error{Code: ast.ErrLambdaFormat, Printed: format.Print(ast.Cons(ast.Sym("lambda"), rest))}
	}
	params := make([]string, len(paramVals))
	seen := map[string]bool{}
	for i, pv := range paramVals {
		s, ok := pv.(ast.Sym)
		if !ok || seen[string(s)] {
			return nil, &ast.Error{Code: ast.ErrLambdaFormat, Printed: format.Print(ast.Cons(ast.Sym("lambda"), rest))}
		}
		seen[string(s)] = true
		params[i] = string(s)
	}
	body, ok := ast.ListToSlice(p.Cdr)
	if !ok || len(body) == 0 {
		return nil, &ast.Error{Code: ast.ErrLambdaFormat, Printed: format.Print(ast.Cons(ast.Sym("lambda"), rest))}
	}
	return &ast.Closure{Params: params, Body: body, Env: env}, nil
}

func isNilList(v ast.Value) bool {
	_, isNil := v.(ast.NilValue)
	return isNil
}

func calleeArity(callee ast.Value) (name string, min, max int) {
	switch c := callee.(type) {
	case *ast.Primitive:
		return c.Name, c.Min, c.Max
	case *ast.Special:
		return c.Name, c.Min, c.Max
	case *ast.Closure:
		name := c.Name
		if name == "" {
			name = "lambda"
		}
		return name, len(c.Params), len(c.Params)
	}
	return "", 0, -1
}

func firstBadArg(specs []ast.ArgSpec, args []ast.Value) (int, bool) {
	if specs == nil {
		return 0, false
	}
	for i, v := range args {
		var spec ast.ArgSpec
		switch {
		case i < len(specs):
			spec = specs[i]
		case len(specs) > 0:
			spec = specs[len(specs)-1]
		default:
			continue
		}
		if spec != nil && !spec(v) {
			return i, true
		}
	}
	return 0, false
}

func arityErr(op string) *ast.Error {
	return &ast.Error{Code: ast.ErrIncorrectArity, Op: op}
}

func levelErr(name string) *ast.Error {
	switch name {
	case "define":
		return &ast.Error{Code: ast.ErrLevelOfDefine}
	case "clean-environment":
		return &ast.Error{Code: ast.ErrLevelOfCleanEnvironment}
	default:
		return &ast.Error{Code: ast.ErrLevelOfExit}
	}
}
