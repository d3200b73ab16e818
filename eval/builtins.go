package eval

import (
	"math"

	"github.com/pkg/errors"

	"github.com/gofend/fend/num"
	"github.com/gofend/fend/value"
)

const derivativeStep = 1e-7

// applyBuiltin evaluates the named built-in function on a single real
// number. Trigonometric and logarithmic functions require a unitless
// argument; fend's unit system does not carry radians/degrees through
// these (a bare number is always interpreted as radians).
func applyBuiltin(tag value.BuiltinTag, n num.Number) (num.Number, error) {
	switch tag {
	case value.Abs:
		return numAbs(n)
	case value.Conjugate:
		return numConjugate(n), nil
	case value.Approximately:
		return n.WithApprox(), nil
	}
	if !n.Unit.IsUnitless() {
		return num.Number{}, errors.Errorf("%s expects a unitless argument", tag)
	}
	f, _ := realFloat(n)
	var r float64
	switch tag {
	case value.Sin:
		r = math.Sin(f)
	case value.Cos:
		r = math.Cos(f)
	case value.Tan:
		r = math.Tan(f)
	case value.Asin:
		r = math.Asin(f)
	case value.Acos:
		r = math.Acos(f)
	case value.Atan:
		r = math.Atan(f)
	case value.Sinh:
		r = math.Sinh(f)
	case value.Cosh:
		r = math.Cosh(f)
	case value.Tanh:
		r = math.Tanh(f)
	case value.Asinh:
		r = math.Asinh(f)
	case value.Acosh:
		r = math.Acosh(f)
	case value.Atanh:
		r = math.Atanh(f)
	case value.Ln:
		r = math.Log(f)
	case value.Log2:
		r = math.Log2(f)
	case value.Log10:
		r = math.Log10(f)
	default:
		return num.Number{}, errors.Errorf("%s cannot be applied directly", tag)
	}
	return num.FromFloat(r), nil
}

func realFloat(n num.Number) (float64, error) {
	f, _ := bigRatFloat(n)
	return f, nil
}

func bigRatFloat(n num.Number) (float64, bool) {
	r := n.Real
	if r == nil {
		return 0, false
	}
	f, _ := r.Float64()
	return f, true
}

func numAbs(n num.Number) (num.Number, error) {
	if n.Imag != nil && n.Imag.Sign() != 0 {
		re, _ := n.Real.Float64()
		im, _ := n.Imag.Float64()
		return num.FromFloat(math.Hypot(re, im)), nil
	}
	if n.Real == nil {
		return num.FromInt(0), nil
	}
	out := n
	if n.Real.Sign() < 0 {
		neg, err := n.Neg()
		if err != nil {
			return num.Number{}, err
		}
		out = neg
	}
	return out, nil
}

func numConjugate(n num.Number) num.Number {
	out := n
	if n.Imag != nil {
		neg, err := n.Neg()
		if err == nil {
			out.Real = n.Real
			out.Imag = neg.Imag
		}
	}
	return out
}

// numericDerivative approximates d/dx call(x) at n via a centred
// finite difference.
func numericDerivative(n num.Number, call func(num.Number) (num.Number, error)) (num.Number, error) {
	h := num.FromFloat(derivativeStep)
	plus, err := n.Add(h)
	if err != nil {
		return num.Number{}, err
	}
	minus, err := n.Sub(h)
	if err != nil {
		return num.Number{}, err
	}
	fp, err := call(plus)
	if err != nil {
		return num.Number{}, err
	}
	fm, err := call(minus)
	if err != nil {
		return num.Number{}, err
	}
	diff, err := fp.Sub(fm)
	if err != nil {
		return num.Number{}, err
	}
	twoH, err := h.Mul(num.FromInt(2))
	if err != nil {
		return num.Number{}, err
	}
	return diff.Div(twoH)
}
