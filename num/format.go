package num

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// String renders n the way the CLI and the formatter package print a
// final result: magnitude (respecting Format/Base/Approx) followed by
// a unit suffix, if any.
func (n Number) String() string {
	mag := n.magnitudeString()
	unit := n.unitSuffix()
	if unit == "" {
		return mag
	}
	return mag + " " + unit
}

func (n Number) magnitudeString() string {
	real := n.realOrZero()
	var out string
	if n.Approx {
		out = approximateDecimal(real)
	} else {
		out = n.exactString(real)
	}
	if n.hasImag() {
		imagStr := n.exactString(n.imagOrZero())
		if n.Imag.Sign() >= 0 {
			out = fmt.Sprintf("%s + %si", out, imagStr)
		} else {
			out = fmt.Sprintf("%s - %si", out, strings.TrimPrefix(imagStr, "-"))
		}
	}
	return out
}

func (n Number) exactString(r *big.Rat) string {
	base := n.Base
	if base == 0 {
		base = 10
	}
	if r.IsInt() {
		return r.Num().Text(base)
	}
	switch n.Format {
	case ImproperFraction:
		return fmt.Sprintf("%s/%s", r.Num().Text(base), r.Denom().Text(base))
	case MixedFraction:
		return mixedFractionString(r, base)
	case ExactFloat:
		return approximateDecimal(r)
	default:
		if base == 10 {
			if s, ok := terminatingDecimal(r); ok {
				return s
			}
		}
		return fmt.Sprintf("%s/%s", r.Num().Text(base), r.Denom().Text(base))
	}
}

func mixedFractionString(r *big.Rat, base int) string {
	whole := new(big.Int).Quo(r.Num(), r.Denom())
	rem := new(big.Rat).Sub(r, new(big.Rat).SetInt(whole))
	rem.Abs(rem)
	if rem.Sign() == 0 {
		return whole.Text(base)
	}
	return fmt.Sprintf("%s %s/%s", whole.Text(base), rem.Num().Text(base), rem.Denom().Text(base))
}

// terminatingDecimal reports the decimal expansion of r when its
// denominator's only prime factors are 2 and 5, i.e. it terminates.
func terminatingDecimal(r *big.Rat) (string, bool) {
	denom := new(big.Int).Set(r.Denom())
	two, five := big.NewInt(2), big.NewInt(5)
	twos, fives := 0, 0
	for new(big.Int).Mod(denom, two).Sign() == 0 {
		denom.Quo(denom, two)
		twos++
	}
	for new(big.Int).Mod(denom, five).Sign() == 0 {
		denom.Quo(denom, five)
		fives++
	}
	if denom.CmpAbs(big.NewInt(1)) != 0 {
		return "", false
	}
	places := twos
	if fives > places {
		places = fives
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Int).Mul(r.Num(), scale)
	scaled.Quo(scaled, r.Denom())
	s := scaled.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for len(s) <= places {
		s = "0" + s
	}
	intPart := s[:len(s)-places]
	fracPart := s[len(s)-places:]
	fracPart = strings.TrimRight(fracPart, "0")
	out := intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out, true
}

// approximateDecimal renders r rounded to 15 decimal places, with
// trailing zeros trimmed, used for Approx numbers and ExactFloat style.
func approximateDecimal(r *big.Rat) string {
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	if den.IsZero() {
		return "undefined"
	}
	d := num.DivRound(den, 15)
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

func (n Number) unitSuffix() string {
	if n.Unit.Singular != "" {
		if n.isPluralMagnitude() {
			return n.Unit.Plural
		}
		return n.Unit.Singular
	}
	if len(n.Unit.Components) == 0 {
		return ""
	}
	return formatComponents(n.Unit.Components)
}

func (n Number) isPluralMagnitude() bool {
	if n.hasImag() {
		return true
	}
	r := n.realOrZero()
	return r.Cmp(big.NewRat(1, 1)) != 0 && r.Cmp(big.NewRat(-1, 1)) != 0
}

func formatComponents(c map[string]*big.Rat) string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	sort.Strings(names)
	var pos, neg []string
	for _, name := range names {
		exp := c[name]
		if exp.Sign() > 0 {
			pos = append(pos, componentTerm(name, exp))
		} else {
			negExp := new(big.Rat).Neg(exp)
			neg = append(neg, componentTerm(name, negExp))
		}
	}
	numerator := strings.Join(pos, " ")
	if numerator == "" {
		numerator = "1"
	}
	if len(neg) == 0 {
		return numerator
	}
	return numerator + " / " + strings.Join(neg, " ")
}

func componentTerm(name string, exp *big.Rat) string {
	if exp.IsInt() && exp.Num().Cmp(big.NewInt(1)) == 0 {
		return name
	}
	if exp.IsInt() {
		return fmt.Sprintf("%s^%s", name, exp.Num().String())
	}
	return fmt.Sprintf("%s^(%s)", name, exp.RatString())
}
