package num

import "math/big"

// Celsius and Fahrenheit have a zero point offset from kelvin, so they
// can't be handled by Unit's plain ratio Scale the way every other
// unit conversion is. Rankine is a pure ratio of kelvin (absolute
// zero coincides) and needs no special case.
func isAffineTemperature(u Unit) bool {
	return u.Singular == "celsius" || u.Singular == "fahrenheit"
}

func temperatureUnits(a, b Unit) (string, string, bool) {
	if !sameDimension(a.Components, b.Components) {
		return "", "", false
	}
	if isAffineTemperature(a) || isAffineTemperature(b) {
		return a.Singular, b.Singular, true
	}
	return "", "", false
}

func toKelvin(v *big.Rat, name string) *big.Rat {
	switch name {
	case "celsius":
		return new(big.Rat).Add(v, big.NewRat(27315, 100))
	case "fahrenheit":
		sum := new(big.Rat).Add(v, big.NewRat(45967, 100))
		return sum.Mul(sum, big.NewRat(5, 9))
	default:
		return new(big.Rat).Set(v)
	}
}

func fromKelvin(k *big.Rat, name string) *big.Rat {
	switch name {
	case "celsius":
		return new(big.Rat).Sub(k, big.NewRat(27315, 100))
	case "fahrenheit":
		scaled := new(big.Rat).Mul(k, big.NewRat(9, 5))
		return scaled.Sub(scaled, big.NewRat(45967, 100))
	default:
		return new(big.Rat).Set(k)
	}
}

func convertTemperature(v *big.Rat, fromName, toName string) *big.Rat {
	return fromKelvin(toKelvin(v, fromName), toName)
}
