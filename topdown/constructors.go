package topdown

import "github.com/ourscheme/ourscheme/ast"

// primCons implements (cons a b): spec.md §4.3.2.
func primCons(args []ast.Value) (ast.Value, *ast.Error) {
	return ast.Cons(args[0], args[1]), nil
}

// primList implements (list a b ...): spec.md §8's list/cons equivalence
// property, ( list a b c) ≡ (cons a (cons b (cons c nil))).
func primList(args []ast.Value) (ast.Value, *ast.Error) {
	return ast.NewList(args...), nil
}

// primCar implements (car p): spec.md §4.3.2.
func primCar(args []ast.Value) (ast.Value, *ast.Error) {
	return args[0].(*ast.Pair).Car, nil
}

// primCdr implements (cdr p): spec.md §4.3.2.
func primCdr(args []ast.Value) (ast.Value, *ast.Error) {
	return args[0].(*ast.Pair).Cdr, nil
}

func isPairArg(v ast.Value) bool {
	_, ok := v.(*ast.Pair)
	return ok
}
