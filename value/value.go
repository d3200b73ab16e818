// Package value defines the runtime values produced by evaluation:
// numbers, functions (built-in or user lambdas), formatting
// directives, strings, dates, and objects.
package value

import (
	"fmt"

	"github.com/gofend/fend/ast"
	"github.com/gofend/fend/num"
	"github.com/gofend/fend/scope"
)

// Value is anything an expression can evaluate to.
type Value interface {
	valueNode()
}

// Num wraps a fully evaluated number.
type Num struct{ N num.Number }

// Builtin is a named built-in function such as sin or ln.
type Builtin struct{ Tag BuiltinTag }

// Fn is a user-defined single-parameter lambda, closing over the
// scope it was created in.
type Fn struct {
	Param string
	Body  ast.Expr
	Scope *scope.Scope
}

// FormatVal carries a display style selected with "x as exact" etc.
type FormatVal struct{ Style num.FormattingStyle }

// Dp is the "dp" keyword, only meaningful applied to a count via "as".
type Dp struct{}

// Sf is the "sf" keyword, only meaningful applied to a count via "as".
type Sf struct{}

// BaseVal carries a display radix selected with "x as hex" etc.
type BaseVal struct{ Base int }

// StringVal is a string value.
type StringVal struct{ S string }

// DateVal is a calendar date.
type DateVal struct{ Year, Month, Day int }

// Object is a named bag of members, such as the "earth" constant.
type Object struct {
	Order   []string
	Members map[string]Value
}

// Composed wraps Inner (a Builtin or Fn) so that calling it evaluates
// Inner on the argument and then applies Transform to the result,
// implementing the additive-composition rule ("sin + 1" is a function).
type Composed struct {
	Inner     Value
	Transform func(num.Number) (num.Number, error)
}

// Derivative wraps a callable Inner so that calling it numerically
// differentiates Inner at the call argument, implementing the
// "differentiate" built-in.
type Derivative struct {
	Inner Value
}

func (Num) valueNode()       {}
func (Builtin) valueNode()   {}
func (Fn) valueNode()        {}
func (FormatVal) valueNode() {}
func (Dp) valueNode()        {}
func (Sf) valueNode()        {}
func (BaseVal) valueNode()   {}
func (StringVal) valueNode() {}
func (DateVal) valueNode()   {}
func (Object) valueNode()    {}
func (Composed) valueNode()   {}
func (Derivative) valueNode() {}

// ExpectNum requires v to be (or reduce to) a Num, as used by binary
// operators that only make sense on numbers.
func ExpectNum(v Value) (num.Number, error) {
	n, ok := v.(Num)
	if !ok {
		return num.Number{}, fmt.Errorf("expected a number")
	}
	return n.N, nil
}

// IsCallable reports whether v can appear on the left of Apply.
func IsCallable(v Value) bool {
	switch v.(type) {
	case Builtin, Fn, Composed, Derivative:
		return true
	default:
		return false
	}
}

// ComposeUnary returns a new callable value equal to "op(v(x))" for
// whatever v(x) would have produced, used for "-sin", "+sqrt", etc.
func ComposeUnary(v Value, op func(num.Number) (num.Number, error)) Value {
	if c, ok := v.(Composed); ok {
		inner := c.Transform
		return Composed{Inner: c.Inner, Transform: func(n num.Number) (num.Number, error) {
			r, err := inner(n)
			if err != nil {
				return num.Number{}, err
			}
			return op(r)
		}}
	}
	return Composed{Inner: v, Transform: op}
}

// ComposeBinaryRight returns a callable equal to "v(x) op fixed".
func ComposeBinaryRight(v Value, fixed num.Number, op func(a, b num.Number) (num.Number, error)) Value {
	return ComposeUnary(v, func(n num.Number) (num.Number, error) { return op(n, fixed) })
}

// ComposeBinaryLeft returns a callable equal to "fixed op v(x)".
func ComposeBinaryLeft(v Value, fixed num.Number, op func(a, b num.Number) (num.Number, error)) Value {
	return ComposeUnary(v, func(n num.Number) (num.Number, error) { return op(fixed, n) })
}

// GetObjectMember implements "name of value".
func GetObjectMember(v Value, member string) (Value, error) {
	obj, ok := v.(Object)
	if !ok {
		return nil, fmt.Errorf("expected an object")
	}
	m, ok := obj.Members[member]
	if !ok {
		return nil, fmt.Errorf("object has no member %q", member)
	}
	return m, nil
}
