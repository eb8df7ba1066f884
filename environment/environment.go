// Package environment implements the lexically nested binding chain
// described in spec.md §4.4 (component C4). Frame satisfies ast.Env so
// that package ast's Closure/Special types can hold an environment
// reference without importing this package (which in turn imports ast
// for ast.Value) — the usual accept-an-interface pattern for breaking
// what would otherwise be an import cycle.
package environment

import "github.com/ourscheme/ourscheme/ast"

// Frame is one level of the lexical chain: a user-bindings map, an
// optional parent, and (root frames only) the immutable built-in table.
type Frame struct {
	parent   *Frame
	builtins map[string]ast.Value // only populated on the root frame; nil elsewhere
	user     map[string]ast.Value
}

// NewRoot returns a fresh root frame seeded with the given built-in
// table. The built-in table itself is never mutated by Define, which
// consults it only to reject shadowing attempts (spec.md §3); Lookup
// resolves built-in names from it.
func NewRoot(builtins map[string]ast.Value) *Frame {
	return &Frame{
		builtins: builtins,
		user:     map[string]ast.Value{},
	}
}

// Child returns a new frame whose parent is f.
func (f *Frame) Child() ast.Env {
	return &Frame{parent: f, user: map[string]ast.Value{}}
}

// root walks to the outermost frame, which alone carries the built-in
// table.
func (f *Frame) root() *Frame {
	for f.parent != nil {
		f = f.parent
	}
	return f
}

// Lookup walks outward from f: first this frame's user map, then (if
// f is the root) the built-in table, then the parent chain.
func (f *Frame) Lookup(name string) (ast.Value, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.user[name]; ok {
			return v, true
		}
		if cur.builtins != nil {
			if v, ok := cur.builtins[name]; ok {
				return v, true
			}
		}
	}
	return nil, false
}

// IsBuiltin reports whether name is a protected built-in, queryable from
// any frame (the table only lives on the root, but protection applies
// everywhere a definition is attempted).
func (f *Frame) IsBuiltin(name string) bool {
	_, ok := f.root().builtins[name]
	return ok
}

// Define binds name to v in f's own user map. It refuses to shadow a
// built-in (spec.md §3), reporting failure via its bool return; the
// caller (the define special form, which alone has access to the
// printer) is responsible for building the DEFINE-format diagnostic.
func (f *Frame) Define(name string, v ast.Value) bool {
	if f.IsBuiltin(name) {
		return false
	}
	f.user[name] = v
	return true
}

// Bind sets name in f's own user map unconditionally, bypassing the
// built-in protection Define enforces. lambda parameter binding and let
// bindings use this: a local variable named e.g. "car" may legally
// shadow the built-in within its own scope.
func (f *Frame) Bind(name string, v ast.Value) {
	f.user[name] = v
}

// CleanUser empties f's own user bindings. clean-environment (spec.md
// §4.3.2) calls this on the root frame only; closures keep whatever
// frame they captured and are unaffected.
func (f *Frame) CleanUser() {
	f.user = map[string]ast.Value{}
}
