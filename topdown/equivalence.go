package topdown

import "github.com/ourscheme/ourscheme/ast"

// primNot implements (not x): #t iff x is Nil.
func primNot(args []ast.Value) (ast.Value, *ast.Error) {
	return boolResult(ast.IsFalse(args[0])), nil
}

// eqv implements spec.md §4.3.2's eqv?: identity comparison for pairs,
// strings, and procedures (all reference types in this model), value
// comparison for the immutable atomics.
func eqv(a, b ast.Value) bool {
	switch at := a.(type) {
	case *ast.Pair:
		bt, ok := b.(*ast.Pair)
		return ok && at == bt
	case *ast.Str:
		bt, ok := b.(*ast.Str)
		return ok && at == bt
	case *ast.Closure:
		bt, ok := b.(*ast.Closure)
		return ok && at == bt
	case *ast.Primitive:
		bt, ok := b.(*ast.Primitive)
		return ok && at == bt
	case *ast.Special:
		bt, ok := b.(*ast.Special)
		return ok && at == bt
	case ast.Int:
		bt, ok := b.(ast.Int)
		return ok && at == bt
	case ast.Real:
		bt, ok := b.(ast.Real)
		return ok && at == bt
	case ast.Sym:
		bt, ok := b.(ast.Sym)
		return ok && at == bt
	case ast.Bool:
		bt, ok := b.(ast.Bool)
		return ok && at == bt
	case ast.NilValue:
		_, ok := b.(ast.NilValue)
		return ok
	default:
		return false
	}
}

// equalValue implements equal?: structural recursive equality. Quoted
// nodes normalize to their equivalent cons form first, so '(1 2) and
// (cons 1 (cons 2 nil)) compare equal regardless of which representation
// produced them (spec.md §9).
func equalValue(a, b ast.Value) bool {
	if qa, ok := a.(*ast.Quoted); ok {
		a = qa.AsPair()
	}
	if qb, ok := b.(*ast.Quoted); ok {
		b = qb.AsPair()
	}
	switch at := a.(type) {
	case *ast.Pair:
		bt, ok := b.(*ast.Pair)
		return ok && equalValue(at.Car, bt.Car) && equalValue(at.Cdr, bt.Cdr)
	case *ast.Str:
		bt, ok := b.(*ast.Str)
		return ok && at.Val == bt.Val
	case ast.Int:
		bt, ok := b.(ast.Int)
		return ok && at == bt
	case ast.Real:
		bt, ok := b.(ast.Real)
		return ok && at == bt
	case ast.Sym:
		bt, ok := b.(ast.Sym)
		return ok && at == bt
	case ast.Bool:
		bt, ok := b.(ast.Bool)
		return ok && at == bt
	case ast.NilValue:
		_, ok := b.(ast.NilValue)
		return ok
	default:
		return a == b
	}
}

func primEqv(args []ast.Value) (ast.Value, *ast.Error) {
	return boolResult(eqv(args[0], args[1])), nil
}

func primEqual(args []ast.Value) (ast.Value, *ast.Error) {
	return boolResult(equalValue(args[0], args[1])), nil
}
