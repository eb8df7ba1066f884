package topdown

import "github.com/ourscheme/ourscheme/ast"

// chainCompare implements the chained-monotonicity rule for >, >=, <,
// <=, =: every adjacent pair must satisfy cmp.
func chainCompare(cmp func(a, b float64) bool) func([]ast.Value) (ast.Value, *ast.Error) {
	return func(args []ast.Value) (ast.Value, *ast.Error) {
		for i := 0; i < len(args)-1; i++ {
			if !cmp(toFloat(args[i]), toFloat(args[i+1])) {
				return ast.Nil, nil
			}
		}
		return boolResult(true), nil
	}
}
