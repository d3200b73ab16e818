// Package num implements the arbitrary-precision number kernel used by
// the evaluator: exact rational arithmetic with an optional imaginary
// part, a dimensional unit vector, a display base, and a formatting
// style. The evaluator only ever calls the operator surface defined
// here; it never inspects a Number's internals directly.
package num

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/gofend/fend/interrupt"
)

// FormattingStyle controls how a Number renders itself.
type FormattingStyle int

// The formatting styles a user can select with "as auto"/"as exact"/etc.
const (
	Auto FormattingStyle = iota
	Exact
	ImproperFraction
	MixedFraction
	ExactFloat
)

// Unit describes the dimensional makeup of a Number: a vector of
// exponents over named base units, a scale factor converting "one of
// this unit" into base units, and an optional display name.
type Unit struct {
	// Components maps a base unit name (e.g. "meter") to its exponent
	// in this unit. A nil or empty map means unitless.
	Components map[string]*big.Rat
	// Scale is the value of one instance of this unit expressed in
	// base units. Unitless values use a scale of 1.
	Scale *big.Rat
	// Singular/Plural are the display names for this unit, empty for
	// an anonymous compound unit (e.g. the product of two units that
	// don't have their own catalog entry).
	Singular, Plural string
}

func unitless() Unit {
	return Unit{Scale: big.NewRat(1, 1)}
}

// IsUnitless reports whether u carries no dimension.
func (u Unit) IsUnitless() bool {
	return len(u.Components) == 0
}

func cloneComponents(c map[string]*big.Rat) map[string]*big.Rat {
	if len(c) == 0 {
		return nil
	}
	out := make(map[string]*big.Rat, len(c))
	for k, v := range c {
		out[k] = new(big.Rat).Set(v)
	}
	return out
}

func sameDimension(a, b map[string]*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		ov, ok := b[k]
		if !ok || v.Cmp(ov) != 0 {
			return false
		}
	}
	return true
}

func combineComponents(a, b map[string]*big.Rat, sign int) map[string]*big.Rat {
	out := make(map[string]*big.Rat)
	for k, v := range a {
		out[k] = new(big.Rat).Set(v)
	}
	for k, v := range b {
		scaled := new(big.Rat).Set(v)
		if sign < 0 {
			scaled.Neg(scaled)
		}
		if cur, ok := out[k]; ok {
			cur.Add(cur, scaled)
			if cur.Sign() == 0 {
				delete(out, k)
			}
		} else {
			out[k] = scaled
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func scaleComponents(c map[string]*big.Rat, by *big.Rat) map[string]*big.Rat {
	if len(c) == 0 {
		return nil
	}
	out := make(map[string]*big.Rat, len(c))
	for k, v := range c {
		nv := new(big.Rat).Mul(v, by)
		if nv.Sign() != 0 {
			out[k] = nv
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Number is an exact rational (with an optional imaginary part),
// carrying a Unit, a display Base, a FormattingStyle, and whether it
// was produced by an approximating operation.
type Number struct {
	Real *big.Rat
	// Imag is nil for a purely real number.
	Imag    *big.Rat
	Unit    Unit
	Base    int
	Format  FormattingStyle
	Approx  bool
}

// FromInt builds a unitless exact integer Number.
func FromInt(n int64) Number {
	return Number{Real: big.NewRat(n, 1), Unit: unitless(), Base: 10}
}

// FromRat builds a unitless exact Number from a rational.
func FromRat(r *big.Rat) Number {
	return Number{Real: new(big.Rat).Set(r), Unit: unitless(), Base: 10}
}

// FromFloat builds an approximate unitless Number from a float64,
// used by transcendental functions that cannot stay exact.
func FromFloat(f float64) Number {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		r = big.NewRat(0, 1)
	}
	return Number{Real: r, Unit: unitless(), Base: 10, Approx: true}
}

// Pi returns an approximate value of pi, the same way fend's "pi"
// identifier is resolved via approximate evaluation.
func Pi() Number {
	return FromFloat(piFloat)
}

// I returns the imaginary unit.
func I() Number {
	n := FromInt(0)
	n.Imag = big.NewRat(1, 1)
	return n
}

// IsUnitlessOne reports whether n is exactly the unitless value 1,
// used to detect "^-1"/"^(-1)" for built-in function inversion.
func (n Number) IsUnitlessOne() bool {
	return n.Unit.IsUnitless() && n.Imag == nil && n.Real != nil && n.Real.Cmp(big.NewRat(1, 1)) == 0
}

func (n Number) hasImag() bool {
	return n.Imag != nil && n.Imag.Sign() != 0
}

func (n Number) realOrZero() *big.Rat {
	if n.Real == nil {
		return new(big.Rat)
	}
	return n.Real
}

func (n Number) imagOrZero() *big.Rat {
	if n.Imag == nil {
		return new(big.Rat)
	}
	return n.Imag
}

// checkSameDimension returns an error if a and b have different
// dimension vectors, as required before adding or converting.
func checkSameDimension(a, b Unit) error {
	if !sameDimension(a.Components, b.Components) {
		return errors.Errorf("cannot combine incompatible units %s and %s", describeDimension(a), describeDimension(b))
	}
	return nil
}

func describeDimension(u Unit) string {
	if u.Singular != "" {
		return u.Singular
	}
	if u.IsUnitless() {
		return "unitless"
	}
	return "compound unit"
}

// Add returns n + other. Both must share the same dimension; other is
// rescaled into n's display unit before summing.
func (n Number) Add(other Number) (Number, error) {
	if err := checkSameDimension(n.Unit, other.Unit); err != nil {
		return Number{}, err
	}
	rescaled, err := other.rescaleInto(n.Unit)
	if err != nil {
		return Number{}, err
	}
	out := n
	out.Real = new(big.Rat).Add(n.realOrZero(), rescaled.realOrZero())
	if n.hasImag() || rescaled.hasImag() {
		out.Imag = new(big.Rat).Add(n.imagOrZero(), rescaled.imagOrZero())
	} else {
		out.Imag = nil
	}
	out.Approx = n.Approx || other.Approx
	return out, nil
}

// Sub returns n - other, with the same dimensional rule as Add.
func (n Number) Sub(other Number) (Number, error) {
	neg, err := other.Neg()
	if err != nil {
		return Number{}, err
	}
	return n.Add(neg)
}

// Neg returns -n.
func (n Number) Neg() (Number, error) {
	out := n
	out.Real = new(big.Rat).Neg(n.realOrZero())
	if n.hasImag() {
		out.Imag = new(big.Rat).Neg(n.imagOrZero())
	}
	return out, nil
}

// rescaleInto converts n (which must share target's dimension) so
// that its Unit becomes target, adjusting Real accordingly.
func (n Number) rescaleInto(target Unit) (Number, error) {
	if specialA, specialB, ok := temperatureUnits(n.Unit, target); ok {
		converted := convertTemperature(n.realOrZero(), specialA, specialB)
		out := n
		out.Real = converted
		out.Unit = target
		return out, nil
	}
	if err := checkSameDimension(n.Unit, target); err != nil {
		return Number{}, err
	}
	if n.Unit.Scale.Cmp(target.Scale) == 0 {
		out := n
		out.Unit = target
		return out, nil
	}
	baseVal := new(big.Rat).Mul(n.realOrZero(), n.Unit.Scale)
	newReal := new(big.Rat).Quo(baseVal, target.Scale)
	out := n
	out.Real = newReal
	out.Unit = target
	return out, nil
}

// ConvertTo implements the "as" conversion: n must share target's
// dimension, and the result displays as target's unit.
func (n Number) ConvertTo(target Number) (Number, error) {
	out, err := n.rescaleInto(target.Unit)
	if err != nil {
		return Number{}, err
	}
	out.Format = n.Format
	out.Base = n.Base
	return out, nil
}

// Mul returns n * other, combining units multiplicatively.
func (n Number) Mul(other Number) (Number, error) {
	out := Number{Base: n.Base, Format: n.Format, Approx: n.Approx || other.Approx}
	if n.hasImag() || other.hasImag() {
		ar, ai, br, bi := n.realOrZero(), n.imagOrZero(), other.realOrZero(), other.imagOrZero()
		re := new(big.Rat).Sub(new(big.Rat).Mul(ar, br), new(big.Rat).Mul(ai, bi))
		im := new(big.Rat).Add(new(big.Rat).Mul(ar, bi), new(big.Rat).Mul(ai, br))
		out.Real, out.Imag = re, im
	} else {
		out.Real = new(big.Rat).Mul(n.realOrZero(), other.realOrZero())
	}
	out.Unit = mulUnits(n.Unit, other.Unit)
	return out, nil
}

// Div returns n / other.
func (n Number) Div(other Number) (Number, error) {
	if other.realOrZero().Sign() == 0 && !other.hasImag() {
		return Number{}, errors.New("division by zero")
	}
	out := Number{Base: n.Base, Format: n.Format, Approx: n.Approx || other.Approx}
	if n.hasImag() || other.hasImag() {
		ar, ai, br, bi := n.realOrZero(), n.imagOrZero(), other.realOrZero(), other.imagOrZero()
		denom := new(big.Rat).Add(new(big.Rat).Mul(br, br), new(big.Rat).Mul(bi, bi))
		reNum := new(big.Rat).Add(new(big.Rat).Mul(ar, br), new(big.Rat).Mul(ai, bi))
		imNum := new(big.Rat).Sub(new(big.Rat).Mul(ai, br), new(big.Rat).Mul(ar, bi))
		out.Real = new(big.Rat).Quo(reNum, denom)
		out.Imag = new(big.Rat).Quo(imNum, denom)
	} else {
		out.Real = new(big.Rat).Quo(n.realOrZero(), other.realOrZero())
	}
	out.Unit = divUnits(n.Unit, other.Unit)
	return out, nil
}

func mulUnits(a, b Unit) Unit {
	switch {
	case a.isPlainUnitless():
		return b
	case b.isPlainUnitless():
		return a
	}
	return Unit{
		Components: combineComponents(a.Components, b.Components, 1),
		Scale:      new(big.Rat).Mul(a.Scale, b.Scale),
	}
}

func divUnits(a, b Unit) Unit {
	if b.isPlainUnitless() {
		return a
	}
	if a.isPlainUnitless() {
		return Unit{
			Components: combineComponents(nil, b.Components, -1),
			Scale:      new(big.Rat).Inv(b.Scale),
		}
	}
	return Unit{
		Components: combineComponents(a.Components, b.Components, -1),
		Scale:      new(big.Rat).Quo(a.Scale, b.Scale),
	}
}

// SameDimension reports whether a and b both carry a genuine physical
// dimension (not plain numbers, not dimensionless named ratios like
// percent) and that dimension is the same, e.g. feet and inches are
// both length. Used to decide that "5 feet 3 inches" means addition
// rather than multiplication.
func SameDimension(a, b Unit) bool {
	return len(a.Components) > 0 && len(b.Components) > 0 && sameDimension(a.Components, b.Components)
}

// isPlainUnitless reports whether u is the bare unitless unit with no
// display name, as opposed to a named dimensionless unit like "percent".
func (u Unit) isPlainUnitless() bool {
	return u.IsUnitless() && u.Singular == "" && (u.Scale == nil || u.Scale.Cmp(big.NewRat(1, 1)) == 0)
}

// Pow returns n raised to the integer power in other. Fractional
// powers are supported for unitless, non-negative bases by falling
// back to floating point (flagging the result Approx). ii is polled
// periodically during the squaring loop so that a large exponent
// (e.g. "10^1000000") can be cancelled instead of running to
// completion; pass nil for an uncancellable call.
func (n Number) Pow(other Number, ii interrupt.Interrupt) (Number, error) {
	if !other.Unit.IsUnitless() {
		return Number{}, errors.New("exponent must be unitless")
	}
	if other.hasImag() {
		return Number{}, errors.New("complex exponents are not supported")
	}
	otherReal := other.realOrZero()
	if otherReal.IsInt() {
		exp := otherReal.Num()
		if !exp.IsInt64() {
			return Number{}, errors.New("exponent too large")
		}
		e := exp.Int64()
		return n.powInt(e, ii)
	}
	if !n.Unit.IsUnitless() {
		return Number{}, errors.New("cannot raise a dimensioned number to a fractional power")
	}
	base, _ := n.realOrZero().Float64()
	exp, _ := otherReal.Float64()
	return FromFloat(mathPow(base, exp)), nil
}

func (n Number) powInt(e int64, ii interrupt.Interrupt) (Number, error) {
	out := Number{Base: n.Base, Format: n.Format, Approx: n.Approx}
	neg := e < 0
	if neg {
		e = -e
	}
	re, im := n.realOrZero(), n.imagOrZero()
	accRe, accIm := big.NewRat(1, 1), big.NewRat(0, 1)
	curRe, curIm := new(big.Rat).Set(re), new(big.Rat).Set(im)
	for exp := e; exp > 0; exp >>= 1 {
		if err := interrupt.Test(ii); err != nil {
			return Number{}, err
		}
		if exp&1 == 1 {
			nr := new(big.Rat).Sub(new(big.Rat).Mul(accRe, curRe), new(big.Rat).Mul(accIm, curIm))
			ni := new(big.Rat).Add(new(big.Rat).Mul(accRe, curIm), new(big.Rat).Mul(accIm, curRe))
			accRe, accIm = nr, ni
		}
		nr := new(big.Rat).Sub(new(big.Rat).Mul(curRe, curRe), new(big.Rat).Mul(curIm, curIm))
		ni := new(big.Rat).Mul(big.NewRat(2, 1), new(big.Rat).Mul(curRe, curIm))
		curRe, curIm = nr, ni
	}
	if accIm.Sign() == 0 {
		out.Real = accRe
	} else {
		out.Real, out.Imag = accRe, accIm
	}
	if neg {
		zero := Number{Real: big.NewRat(1, 1), Unit: unitless()}
		tmp := Number{Real: accRe, Imag: optionalRat(accIm), Unit: unitless()}
		inv, err := zero.Div(tmp)
		if err != nil {
			return Number{}, err
		}
		out.Real, out.Imag = inv.Real, inv.Imag
	}
	expFactor := big.NewRat(e, 1)
	if neg {
		expFactor.Neg(expFactor)
	}
	out.Unit = Unit{
		Components: scaleComponents(n.Unit.Components, expFactor),
		Scale:      powRat(n.Unit.Scale, e, neg),
	}
	return out, nil
}

func optionalRat(r *big.Rat) *big.Rat {
	if r.Sign() == 0 {
		return nil
	}
	return r
}

func powRat(r *big.Rat, e int64, neg bool) *big.Rat {
	if r == nil {
		r = big.NewRat(1, 1)
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(e), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(e), nil)
	out := new(big.Rat).SetFrac(num, den)
	if neg {
		out.Inv(out)
	}
	return out
}

// Factorial requires n be a unitless, non-negative integer. ii is
// polled periodically during the multiplication loop; pass nil for an
// uncancellable call.
func (n Number) Factorial(ii interrupt.Interrupt) (Number, error) {
	if !n.Unit.IsUnitless() || n.hasImag() {
		return Number{}, errors.New("factorial is only defined for unitless real integers")
	}
	if !n.realOrZero().IsInt() || n.realOrZero().Sign() < 0 {
		return Number{}, errors.New("factorial requires a non-negative integer")
	}
	k := n.realOrZero().Num()
	if !k.IsInt64() {
		return Number{}, errors.New("factorial argument too large")
	}
	acc := big.NewInt(1)
	for i := int64(2); i <= k.Int64(); i++ {
		if err := interrupt.Test(ii); err != nil {
			return Number{}, err
		}
		acc.Mul(acc, big.NewInt(i))
	}
	out := FromRat(new(big.Rat).SetInt(acc))
	out.Base = n.Base
	return out, nil
}

// WithFormat returns a copy of n with the given display style.
func (n Number) WithFormat(f FormattingStyle) Number {
	out := n
	out.Format = f
	return out
}

// WithBase returns a copy of n with the given display base.
func (n Number) WithBase(b int) Number {
	out := n
	out.Base = b
	return out
}

// WithApprox returns a copy of n flagged as an approximation.
func (n Number) WithApprox() Number {
	out := n
	out.Approx = true
	return out
}

// NewBaseUnit declares a new primitive base unit with the given
// display names, equal to one of itself (scale 1).
func NewBaseUnit(singular, plural string) Number {
	return Number{
		Real: big.NewRat(1, 1),
		Unit: Unit{
			Components: map[string]*big.Rat{singular: big.NewRat(1, 1)},
			Scale:      big.NewRat(1, 1),
			Singular:   singular,
			Plural:     plural,
		},
		Base: 10,
	}
}

// CreateUnitValueFromValue wraps value (the result of evaluating a
// unit's definition expression, e.g. "12 inch") as "one <prefix><singular>",
// i.e. a Number whose Unit.Scale equals value's magnitude in base
// units and whose Real is 1.
func CreateUnitValueFromValue(value Number, prefix, singular, plural string) (Number, error) {
	baseScale := new(big.Rat).Mul(value.realOrZero(), value.Unit.Scale)
	name := prefix + singular
	pname := prefix + plural
	if plural == "" {
		pname = name
	}
	return Number{
		Real: big.NewRat(1, 1),
		Unit: Unit{
			Components: cloneComponents(value.Unit.Components),
			Scale:      baseScale,
			Singular:   name,
			Plural:     pname,
		},
		Base: 10,
	}, nil
}
