// Package scope implements the immutable, persistent environment used
// to resolve identifiers inside lambda bodies. Each frame binds one
// name to an unevaluated expression plus the scope that expression
// should be evaluated in, so a closure can be passed around and called
// more than once without re-threading the call stack.
package scope

import "github.com/gofend/fend/ast"

// Scope is one frame of a cons-list environment. Name is the bound
// identifier; Body is the expression it resolves to, evaluated lazily
// in Defn (the scope captured at the call site); Parent is the scope
// a lambda body was defined in, consulted for every other name.
type Scope struct {
	Name   string
	Body   ast.Expr
	Defn   *Scope
	Parent *Scope
}

// Push returns a new frame binding name to body, to be evaluated in
// defn, falling back to parent for any other identifier.
func Push(name string, body ast.Expr, defn, parent *Scope) *Scope {
	return &Scope{Name: name, Body: body, Defn: defn, Parent: parent}
}

// Lookup walks the chain looking for name, returning the expression to
// evaluate and the scope to evaluate it in.
func (s *Scope) Lookup(name string) (body ast.Expr, defn *Scope, found bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Name == name {
			return cur.Body, cur.Defn, true
		}
	}
	return nil, nil, false
}
