package topdown

import "github.com/ourscheme/ourscheme/ast"

// primStringAppend implements (string-append s1 s2 ...): spec.md
// §4.3.2. Each call allocates a fresh *ast.Str so its identity is
// distinct from either operand, matching eqv?'s identity semantics for
// strings.
func primStringAppend(args []ast.Value) (ast.Value, *ast.Error) {
	var out string
	for _, a := range args {
		out += a.(*ast.Str).Val
	}
	return ast.NewStr(out), nil
}

func chainStringCompare(cmp func(a, b string) bool) func([]ast.Value) (ast.Value, *ast.Error) {
	return func(args []ast.Value) (ast.Value, *ast.Error) {
		for i := 0; i < len(args)-1; i++ {
			a := args[i].(*ast.Str).Val
			b := args[i+1].(*ast.Str).Val
			if !cmp(a, b) {
				return ast.Nil, nil
			}
		}
		return ast.Bool(true), nil
	}
}
