package topdown

import "github.com/ourscheme/ourscheme/ast"

func toFloat(v ast.Value) float64 {
	switch t := v.(type) {
	case ast.Int:
		return float64(t)
	case ast.Real:
		return float64(t)
	}
	return 0
}

func allInts(args []ast.Value) bool {
	for _, a := range args {
		if _, ok := a.(ast.Int); !ok {
			return false
		}
	}
	return true
}

// arithFold implements spec.md §4.3.2's numeric promotion rule:
// arithmetic returns INT when every operand is INT, else FLOAT.
func arithFold(args []ast.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) ast.Value {
	if allInts(args) {
		acc := int64(args[0].(ast.Int))
		for _, a := range args[1:] {
			acc = intOp(acc, int64(a.(ast.Int)))
		}
		return ast.Int(acc)
	}
	acc := toFloat(args[0])
	for _, a := range args[1:] {
		acc = floatOp(acc, toFloat(a))
	}
	return ast.Real(acc)
}

func primAdd(args []ast.Value) (ast.Value, *ast.Error) {
	return arithFold(args,
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b },
	), nil
}

func primSub(args []ast.Value) (ast.Value, *ast.Error) {
	return arithFold(args,
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b },
	), nil
}

func primMul(args []ast.Value) (ast.Value, *ast.Error) {
	return arithFold(args,
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b },
	), nil
}

// primDiv implements (/ a b ...). Integer division truncates toward
// zero (Go's native int64 division semantics already do this, matching
// spec.md §4.3.2's documented (/ 7 2) ⇒ 3); a zero integer divisor
// raises DivisionByZero. A float operand anywhere promotes the whole
// expression and division by 0.0 follows normal IEEE-754 float rules.
func primDiv(args []ast.Value) (ast.Value, *ast.Error) {
	if allInts(args) {
		acc := int64(args[0].(ast.Int))
		for _, a := range args[1:] {
			d := int64(a.(ast.Int))
			if d == 0 {
				return nil, &ast.Error{Code: ast.ErrDivisionByZero}
			}
			acc /= d
		}
		return ast.Int(acc), nil
	}
	acc := toFloat(args[0])
	for _, a := range args[1:] {
		acc /= toFloat(a)
	}
	return ast.Real(acc), nil
}
