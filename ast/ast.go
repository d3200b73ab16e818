// Package ast defines the expression tree produced by parse and consumed
// by eval. Every case in this file corresponds to one row of the
// Expression variant described in the specification.
package ast

import (
	"fmt"

	"github.com/gofend/fend/num"
)

// Expr is a node in the abstract syntax tree. Nodes are immutable once
// built, so the same subtree may be shared across deferred function
// bodies without copying (spec.md §9, "numbers lifting into function
// composition").
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Num is a literal number carrying unit, base, and format, already
// resolved by the parser from a token.
type Num struct{ Value num.Number }

// String is a string literal.
type String struct{ Value string }

// Ident is a bare identifier; may contain '.', be multi-word
// (mixed_fraction) or Unicode (π).
type Ident struct{ Name string }

// Parens is a grouping node, semantically identical to its child but
// preserved so the formatter can reproduce the source's parentheses.
type Parens struct{ Inner Expr }

// UnaryMinus is prefix '-'.
type UnaryMinus struct{ Inner Expr }

// UnaryPlus is prefix '+'.
type UnaryPlus struct{ Inner Expr }

// UnaryDiv is prefix '/', i.e. reciprocal.
type UnaryDiv struct{ Inner Expr }

// Factorial is postfix '!'.
type Factorial struct{ Inner Expr }

// Add is binary '+'.
type Add struct{ LHS, RHS Expr }

// ImplicitAdd marks implicit concatenation such as "5 feet 3 inches".
// Semantically identical to Add; kept distinct only so a formatter can
// omit the '+' sign when re-printing the expression (spec.md §9).
type ImplicitAdd struct{ LHS, RHS Expr }

// Sub is binary '-'.
type Sub struct{ LHS, RHS Expr }

// Mul is binary '*'.
type Mul struct{ LHS, RHS Expr }

// Div is binary '/'.
type Div struct{ LHS, RHS Expr }

// Pow is binary '^'.
type Pow struct{ LHS, RHS Expr }

// Apply is juxtaposition "f x": ambiguous between a function call and
// multiplication, resolved at evaluation time.
type Apply struct{ Fn, Arg Expr }

// ApplyFunctionCall is a parenthesized call "f(x)": must be a call.
type ApplyFunctionCall struct{ Fn, Arg Expr }

// ApplyMul is a juxtaposition known from parse context to behave like
// Apply (ambiguous call-or-multiply). Like Apply, it goes through the
// unit-compound-name pre-check in spec.md §4.4.
type ApplyMul struct{ LHS, RHS Expr }

// As is a conversion "e as target".
type As struct {
	Inner  Expr
	Target Expr
}

// Fn is a single-parameter lambda. Param may contain '.' to mark the
// named-parameter display variant, printed as "(param:body)" instead
// of "\param.body".
type Fn struct {
	Param string
	Body  Expr
}

// Of is object member access: "name of e".
type Of struct {
	Member string
	Inner  Expr
}

func (Num) exprNode()               {}
func (String) exprNode()            {}
func (Ident) exprNode()             {}
func (Parens) exprNode()            {}
func (UnaryMinus) exprNode()        {}
func (UnaryPlus) exprNode()         {}
func (UnaryDiv) exprNode()          {}
func (Factorial) exprNode()         {}
func (Add) exprNode()               {}
func (ImplicitAdd) exprNode()       {}
func (Sub) exprNode()               {}
func (Mul) exprNode()               {}
func (Div) exprNode()               {}
func (Pow) exprNode()               {}
func (Apply) exprNode()             {}
func (ApplyFunctionCall) exprNode() {}
func (ApplyMul) exprNode()          {}
func (As) exprNode()                {}
func (Fn) exprNode()                {}
func (Of) exprNode()                {}

func (n Num) String() string    { return n.Value.String() }
func (s String) String() string { return fmt.Sprintf("%q", s.Value) }
func (i Ident) String() string  { return i.Name }
func (p Parens) String() string { return fmt.Sprintf("(%s)", p.Inner) }
func (u UnaryMinus) String() string { return fmt.Sprintf("(-%s)", u.Inner) }
func (u UnaryPlus) String() string  { return fmt.Sprintf("(+%s)", u.Inner) }
func (u UnaryDiv) String() string   { return fmt.Sprintf("(/%s)", u.Inner) }
func (f Factorial) String() string  { return fmt.Sprintf("%s!", f.Inner) }
func (a Add) String() string        { return fmt.Sprintf("(%s+%s)", a.LHS, a.RHS) }
func (a ImplicitAdd) String() string { return fmt.Sprintf("(%s+%s)", a.LHS, a.RHS) }
func (s Sub) String() string        { return fmt.Sprintf("(%s-%s)", s.LHS, s.RHS) }
func (m Mul) String() string        { return fmt.Sprintf("(%s*%s)", m.LHS, m.RHS) }
func (d Div) String() string        { return fmt.Sprintf("(%s/%s)", d.LHS, d.RHS) }
func (p Pow) String() string        { return fmt.Sprintf("(%s^%s)", p.LHS, p.RHS) }
func (a Apply) String() string      { return fmt.Sprintf("(%s (%s))", a.Fn, a.Arg) }
func (a ApplyFunctionCall) String() string { return fmt.Sprintf("(%s %s)", a.Fn, a.Arg) }
func (a ApplyMul) String() string   { return fmt.Sprintf("(%s %s)", a.LHS, a.RHS) }
func (a As) String() string         { return fmt.Sprintf("(%s as %s)", a.Inner, a.Target) }
func (f Fn) String() string {
	if hasDot(f.Param) {
		return fmt.Sprintf("(%s:%s)", f.Param, f.Body)
	}
	return fmt.Sprintf("\\%s.%s", f.Param, f.Body)
}
func (o Of) String() string { return fmt.Sprintf("%s of %s", o.Member, o.Inner) }

func hasDot(s string) bool {
	for _, r := range s {
		if r == '.' {
			return true
		}
	}
	return false
}
