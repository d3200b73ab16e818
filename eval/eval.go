// Package eval is the evaluator: it walks an ast.Expr against a
// scope and a Context, producing a value.Value. This is the one
// package that is allowed to know about every other package, since
// resolving "f x" into a call or a multiply, and resolving a bare
// identifier into a number, a unit, or a built-in, both need the
// whole picture at once.
package eval

import (
	"github.com/pkg/errors"

	"github.com/gofend/fend/ast"
	"github.com/gofend/fend/dateutil"
	"github.com/gofend/fend/interrupt"
	"github.com/gofend/fend/num"
	"github.com/gofend/fend/parse"
	"github.com/gofend/fend/scope"
	"github.com/gofend/fend/units"
	"github.com/gofend/fend/value"
)

// Evaluate walks expr under scope sc, reporting to ctx and polling ii
// for cancellation.
func Evaluate(expr ast.Expr, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	if err := interrupt.Test(ii); err != nil {
		return nil, err
	}
	switch e := expr.(type) {
	case ast.Num:
		return value.Num{N: e.Value}, nil
	case ast.String:
		return value.StringVal{S: e.Value}, nil
	case ast.Ident:
		return resolveIdentifier(e.Name, sc, ctx, ii)
	case ast.Parens:
		return Evaluate(e.Inner, sc, ctx, ii)
	case ast.UnaryMinus:
		v, err := Evaluate(e.Inner, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		return handleNum(v, func(n num.Number) (num.Number, error) { return n.Neg() })
	case ast.UnaryPlus:
		v, err := Evaluate(e.Inner, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		return handleNum(v, func(n num.Number) (num.Number, error) { return n, nil })
	case ast.UnaryDiv:
		v, err := Evaluate(e.Inner, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		one := num.FromInt(1)
		return handleNum(v, func(n num.Number) (num.Number, error) { return one.Div(n) })
	case ast.Factorial:
		v, err := Evaluate(e.Inner, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		return handleNum(v, func(n num.Number) (num.Number, error) { return n.Factorial(ii) })
	case ast.Add:
		return evalAddLike(e.LHS, e.RHS, sc, ctx, ii)
	case ast.ImplicitAdd:
		return evalAddLike(e.LHS, e.RHS, sc, ctx, ii)
	case ast.Sub:
		return evalSub(e.LHS, e.RHS, sc, ctx, ii)
	case ast.Mul:
		a, err := Evaluate(e.LHS, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		b, err := Evaluate(e.RHS, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		return handleTwoNums(a, b, func(x, y num.Number) (num.Number, error) { return x.Mul(y) })
	case ast.Div:
		a, err := Evaluate(e.LHS, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		b, err := Evaluate(e.RHS, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		return handleTwoNums(a, b, func(x, y num.Number) (num.Number, error) { return x.Div(y) })
	case ast.Apply:
		return evalApplyOrApplyMul(e.Fn, e.Arg, sc, ctx, ii)
	case ast.ApplyMul:
		return evalApplyOrApplyMul(e.LHS, e.RHS, sc, ctx, ii)
	case ast.ApplyFunctionCall:
		a, err := Evaluate(e.Fn, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		return applyValue(a, e.Arg, true, sc, ctx, ii)
	case ast.Pow:
		return evalPow(e.LHS, e.RHS, sc, ctx, ii)
	case ast.As:
		return evaluateAs(e.Inner, e.Target, sc, ctx, ii)
	case ast.Fn:
		return value.Fn{Param: e.Param, Body: e.Body, Scope: sc}, nil
	case ast.Of:
		inner, err := Evaluate(e.Inner, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		return value.GetObjectMember(inner, e.Member)
	default:
		return nil, errors.Errorf("unhandled expression node %T", expr)
	}
}

func evalAddLike(aExpr, bExpr ast.Expr, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	a, err := Evaluate(aExpr, sc, ctx, ii)
	if err != nil {
		return nil, err
	}
	b, err := Evaluate(bExpr, sc, ctx, ii)
	if err != nil {
		return nil, err
	}
	return evaluateAdd(a, b)
}

func evaluateAdd(a, b value.Value) (value.Value, error) {
	add := func(x, y num.Number) (num.Number, error) { return x.Add(y) }
	switch x := a.(type) {
	case value.Num:
		switch y := b.(type) {
		case value.Num:
			r, err := x.N.Add(y.N)
			return value.Num{N: r}, err
		case value.Builtin, value.Fn, value.Composed, value.Derivative:
			return value.ComposeBinaryLeft(b, x.N, add), nil
		default:
			return nil, errors.New("expected a number")
		}
	case value.StringVal:
		y, ok := b.(value.StringVal)
		if !ok {
			return nil, errors.New("expected a string")
		}
		return value.StringVal{S: x.S + y.S}, nil
	case value.Builtin, value.Fn, value.Composed, value.Derivative:
		n, err := value.ExpectNum(b)
		if err != nil {
			return nil, err
		}
		return value.ComposeBinaryRight(a, n, add), nil
	default:
		return nil, errors.New("expected a number")
	}
}

// evalSub mirrors the source evaluator's quirky rule for subtraction
// from a function: "f - x" calls f on -x rather than composing,
// unlike "f + x" which builds a new function.
func evalSub(aExpr, bExpr ast.Expr, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	a, err := Evaluate(aExpr, sc, ctx, ii)
	if err != nil {
		return nil, err
	}
	switch av := a.(type) {
	case value.Num:
		bv, err := Evaluate(bExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		bn, err := value.ExpectNum(bv)
		if err != nil {
			return nil, err
		}
		r, err := av.N.Sub(bn)
		return value.Num{N: r}, err
	case value.Builtin, value.Fn, value.Composed, value.Derivative:
		return applyValue(a, ast.UnaryMinus{Inner: bExpr}, true, sc, ctx, ii)
	default:
		return nil, errors.New("invalid operands for subtraction")
	}
}

func evalApplyOrApplyMul(aExpr, bExpr ast.Expr, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	if ai, ok := aExpr.(ast.Ident); ok {
		if bi, ok := bExpr.(ast.Ident); ok {
			if n, err := units.Query(ai.Name + "_" + bi.Name); err == nil {
				return value.Num{N: n}, nil
			}
		}
	}
	a, err := Evaluate(aExpr, sc, ctx, ii)
	if err != nil {
		return nil, err
	}
	return applyValue(a, bExpr, false, sc, ctx, ii)
}

func evalPow(aExpr, bExpr ast.Expr, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	lhs, err := Evaluate(aExpr, sc, ctx, ii)
	if err != nil {
		return nil, err
	}
	if shouldComputeInverse(bExpr) {
		switch lv := lhs.(type) {
		case value.Builtin:
			inv, err := lv.Tag.Invert()
			if err != nil {
				return nil, err
			}
			return inv, nil
		case value.Fn:
			return nil, errors.New("inverses of lambda functions are not currently supported")
		}
	}
	rhs, err := Evaluate(bExpr, sc, ctx, ii)
	if err != nil {
		return nil, err
	}
	return handleTwoNums(lhs, rhs, func(x, y num.Number) (num.Number, error) { return x.Pow(y, ii) })
}

// shouldComputeInverse reports whether rhs is the literal "-1" or
// "(-1)", the spelling that triggers built-in function inversion
// ("sin^-1" meaning asin, not a fractional power of sin).
func shouldComputeInverse(rhs ast.Expr) bool {
	if um, ok := rhs.(ast.UnaryMinus); ok {
		if n, ok := um.Inner.(ast.Num); ok && n.Value.IsUnitlessOne() {
			return true
		}
	}
	if p, ok := rhs.(ast.Parens); ok {
		if um, ok := p.Inner.(ast.UnaryMinus); ok {
			if n, ok := um.Inner.(ast.Num); ok && n.Value.IsUnitlessOne() {
				return true
			}
		}
	}
	return false
}

func evaluateAs(aExpr, bExpr ast.Expr, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	if ident, ok := bExpr.(ast.Ident); ok {
		switch ident.Name {
		case "date":
			a, err := Evaluate(aExpr, sc, ctx, ii)
			if err != nil {
				return nil, err
			}
			s, ok := a.(value.StringVal)
			if !ok {
				return nil, errors.New("expected a string")
			}
			d, err := dateutil.Parse(s.S)
			if err != nil {
				return nil, err
			}
			return value.DateVal{Year: d.Year, Month: d.Month, Day: d.Day}, nil
		case "string":
			a, err := Evaluate(aExpr, sc, ctx, ii)
			if err != nil {
				return nil, err
			}
			if s, ok := a.(value.StringVal); ok {
				return s, nil
			}
			return value.StringVal{S: FormatPlain(a)}, nil
		case "codepoint":
			a, err := Evaluate(aExpr, sc, ctx, ii)
			if err != nil {
				return nil, err
			}
			s, ok := a.(value.StringVal)
			if !ok {
				return nil, errors.New("expected a string")
			}
			runes := []rune(s.S)
			if len(runes) == 0 {
				return nil, errors.New("string cannot be empty")
			}
			if len(runes) > 1 {
				return nil, errors.New("string cannot be longer than one codepoint")
			}
			n := num.FromInt(int64(runes[0])).WithBase(16)
			return value.Num{N: n}, nil
		}
	}
	b, err := Evaluate(bExpr, sc, ctx, ii)
	if err != nil {
		return nil, err
	}
	switch bv := b.(type) {
	case value.Num:
		a, err := Evaluate(aExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		an, err := value.ExpectNum(a)
		if err != nil {
			return nil, err
		}
		r, err := an.ConvertTo(bv.N)
		return value.Num{N: r}, err
	case value.FormatVal:
		a, err := Evaluate(aExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		an, err := value.ExpectNum(a)
		if err != nil {
			return nil, err
		}
		return value.Num{N: an.WithFormat(bv.Style)}, nil
	case value.Dp:
		return nil, errors.New("you need to specify what number of decimal places to use, e.g. '10 dp'")
	case value.Sf:
		return nil, errors.New("you need to specify what number of significant figures to use, e.g. '10 sf'")
	case value.BaseVal:
		a, err := Evaluate(aExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		an, err := value.ExpectNum(a)
		if err != nil {
			return nil, err
		}
		return value.Num{N: an.WithBase(bv.Base)}, nil
	case value.Builtin, value.Fn, value.Composed, value.Derivative:
		return nil, errors.New("unable to convert value to a function")
	case value.Object:
		return nil, errors.New("cannot convert value to object")
	case value.StringVal:
		return nil, errors.New("cannot convert value to string")
	case value.DateVal:
		return nil, errors.New("cannot convert value to date")
	default:
		return nil, errors.Errorf("cannot convert value to %T", b)
	}
}

func resolveIdentifier(name string, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	if sc != nil {
		if body, defn, found := sc.Lookup(name); found {
			return Evaluate(body, defn, ctx, ii)
		}
	}
	eval1 := func(src string) (value.Value, error) { return evaluateSource(src, sc, ctx, ii) }
	switch name {
	case "pi", "π":
		return value.Num{N: num.Pi()}, nil
	case "tau", "τ":
		r, err := num.Pi().Mul(num.FromInt(2))
		return value.Num{N: r}, err
	case "e":
		return eval1("approx. 2.718281828459045235")
	case "i":
		return value.Num{N: num.I()}, nil
	case "sqrt":
		return eval1("x: x^(1/2)")
	case "cbrt":
		return eval1("x: x^(1/3)")
	case "conjugate":
		return value.Builtin{Tag: value.Conjugate}, nil
	case "abs":
		return value.Builtin{Tag: value.Abs}, nil
	case "sin":
		return value.Builtin{Tag: value.Sin}, nil
	case "cos":
		return value.Builtin{Tag: value.Cos}, nil
	case "tan":
		return value.Builtin{Tag: value.Tan}, nil
	case "asin":
		return value.Builtin{Tag: value.Asin}, nil
	case "acos":
		return value.Builtin{Tag: value.Acos}, nil
	case "atan":
		return value.Builtin{Tag: value.Atan}, nil
	case "sinh":
		return value.Builtin{Tag: value.Sinh}, nil
	case "cosh":
		return value.Builtin{Tag: value.Cosh}, nil
	case "tanh":
		return value.Builtin{Tag: value.Tanh}, nil
	case "asinh":
		return value.Builtin{Tag: value.Asinh}, nil
	case "acosh":
		return value.Builtin{Tag: value.Acosh}, nil
	case "atanh":
		return value.Builtin{Tag: value.Atanh}, nil
	case "cis":
		return eval1("theta => cos theta + i * sin theta")
	case "ln":
		return value.Builtin{Tag: value.Ln}, nil
	case "log2":
		return value.Builtin{Tag: value.Log2}, nil
	case "log", "log10":
		return value.Builtin{Tag: value.Log10}, nil
	case "exp":
		return eval1("x: e^x")
	case "approx.", "approximately":
		return value.Builtin{Tag: value.Approximately}, nil
	case "auto":
		return value.FormatVal{Style: num.Auto}, nil
	case "exact":
		return value.FormatVal{Style: num.Exact}, nil
	case "frac", "fraction":
		return value.FormatVal{Style: num.ImproperFraction}, nil
	case "mixed_fraction":
		return value.FormatVal{Style: num.MixedFraction}, nil
	case "float":
		return value.FormatVal{Style: num.ExactFloat}, nil
	case "dp":
		return value.Dp{}, nil
	case "sf":
		return value.Sf{}, nil
	case "base":
		return value.Builtin{Tag: value.Base}, nil
	case "dec", "decimal":
		return value.BaseVal{Base: 10}, nil
	case "hex", "hexadecimal":
		return value.BaseVal{Base: 16}, nil
	case "binary":
		return value.BaseVal{Base: 2}, nil
	case "oct", "octal":
		return value.BaseVal{Base: 8}, nil
	case "version":
		return value.StringVal{S: ctx.version()}, nil
	case "square":
		return eval1("x: x^2")
	case "cubic":
		return eval1("x: x^3")
	case "earth":
		return earthObject(sc, ctx, ii)
	case "differentiate":
		return value.Builtin{Tag: value.Differentiate}, nil
	case "today":
		d := dateutil.Today(ctx.now())
		return value.DateVal{Year: d.Year, Month: d.Month, Day: d.Day}, nil
	case "tomorrow":
		d := dateutil.Today(ctx.now()).Next()
		return value.DateVal{Year: d.Year, Month: d.Month, Day: d.Day}, nil
	case "yesterday":
		d := dateutil.Today(ctx.now()).Prev()
		return value.DateVal{Year: d.Year, Month: d.Month, Day: d.Day}, nil
	default:
		n, err := units.Query(name)
		if err != nil {
			return nil, err
		}
		return value.Num{N: n}, nil
	}
}

func earthObject(sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	members := map[string]string{
		"axial_tilt":       "23.4392811 degrees",
		"eccentricity":     "0.0167086",
		"escape_velocity":  "11.186 km/s",
		"gravity":          "9.80665 m/s^2",
		"mass":             "5.97237e24 kg",
		"volume":           "1.08321e12 km^3",
	}
	order := []string{"axial_tilt", "eccentricity", "escape_velocity", "gravity", "mass", "volume"}
	out := value.Object{Order: order, Members: map[string]value.Value{}}
	for _, k := range order {
		v, err := evaluateSource(members[k], sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		out.Members[k] = v
	}
	return out, nil
}

func evaluateSource(src string, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	expr, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	return Evaluate(expr, sc, ctx, ii)
}

func handleNum(v value.Value, op func(num.Number) (num.Number, error)) (value.Value, error) {
	switch t := v.(type) {
	case value.Num:
		r, err := op(t.N)
		return value.Num{N: r}, err
	case value.Builtin, value.Fn, value.Composed, value.Derivative:
		return value.ComposeUnary(v, op), nil
	default:
		return nil, errors.New("expected a number")
	}
}

func handleTwoNums(a, b value.Value, op func(x, y num.Number) (num.Number, error)) (value.Value, error) {
	switch av := a.(type) {
	case value.Num:
		switch bv := b.(type) {
		case value.Num:
			r, err := op(av.N, bv.N)
			return value.Num{N: r}, err
		case value.Builtin, value.Fn, value.Composed, value.Derivative:
			return value.ComposeBinaryLeft(b, av.N, op), nil
		default:
			return nil, errors.New("expected a number")
		}
	case value.Builtin, value.Fn, value.Composed, value.Derivative:
		bn, err := value.ExpectNum(b)
		if err != nil {
			return nil, err
		}
		return value.ComposeBinaryRight(a, bn, op), nil
	default:
		return nil, errors.New("expected a number")
	}
}

func applyValue(fnVal value.Value, argExpr ast.Expr, onlyApply bool, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	if !value.IsCallable(fnVal) {
		if onlyApply {
			return nil, errors.Errorf("%T is not callable", fnVal)
		}
		argVal, err := Evaluate(argExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		// "5 feet" multiplies a bare number into a unit; "5 feet 3
		// inches" instead combines two already-dimensioned quantities
		// of the same physical dimension, which is addition, not a
		// nonsensical squared unit.
		if fn, ok := fnVal.(value.Num); ok {
			if arg, ok := argVal.(value.Num); ok && num.SameDimension(fn.N.Unit, arg.N.Unit) {
				r, err := fn.N.Add(arg.N)
				return value.Num{N: r}, err
			}
		}
		return handleTwoNums(fnVal, argVal, func(x, y num.Number) (num.Number, error) { return x.Mul(y) })
	}
	return callValue(fnVal, argExpr, sc, ctx, ii)
}

func callValue(fnVal value.Value, argExpr ast.Expr, sc *scope.Scope, ctx *Context, ii interrupt.Interrupt) (value.Value, error) {
	switch f := fnVal.(type) {
	case value.Builtin:
		if f.Tag == value.Base {
			argVal, err := Evaluate(argExpr, sc, ctx, ii)
			if err != nil {
				return nil, err
			}
			n, err := value.ExpectNum(argVal)
			if err != nil {
				return nil, err
			}
			if n.Real == nil || !n.Real.IsInt() {
				return nil, errors.New("base must be an integer")
			}
			return value.BaseVal{Base: int(n.Real.Num().Int64())}, nil
		}
		if f.Tag == value.Differentiate {
			argVal, err := Evaluate(argExpr, sc, ctx, ii)
			if err != nil {
				return nil, err
			}
			return value.Derivative{Inner: argVal}, nil
		}
		argVal, err := Evaluate(argExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		n, err := value.ExpectNum(argVal)
		if err != nil {
			return nil, err
		}
		r, err := applyBuiltin(f.Tag, n)
		if err != nil {
			return nil, err
		}
		return value.Num{N: r}, nil
	case value.Fn:
		argVal, err := Evaluate(argExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		n, err := value.ExpectNum(argVal)
		if err != nil {
			return nil, err
		}
		newScope := scope.Push(f.Param, ast.Num{Value: n}, nil, f.Scope)
		return Evaluate(f.Body, newScope, ctx, ii)
	case value.Composed:
		inner, err := callValue(f.Inner, argExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		n, err := value.ExpectNum(inner)
		if err != nil {
			return nil, err
		}
		r, err := f.Transform(n)
		if err != nil {
			return nil, err
		}
		return value.Num{N: r}, nil
	case value.Derivative:
		argVal, err := Evaluate(argExpr, sc, ctx, ii)
		if err != nil {
			return nil, err
		}
		n, err := value.ExpectNum(argVal)
		if err != nil {
			return nil, err
		}
		r, err := numericDerivative(n, func(x num.Number) (num.Number, error) {
			inner, err := callValue(f.Inner, ast.Num{Value: x}, sc, ctx, ii)
			if err != nil {
				return num.Number{}, err
			}
			return value.ExpectNum(inner)
		})
		if err != nil {
			return nil, err
		}
		return value.Num{N: r}, nil
	default:
		return nil, errors.Errorf("%T is not callable", fnVal)
	}
}
