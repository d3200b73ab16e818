package num

import "math"

const piFloat = math.Pi

func mathPow(base, exp float64) float64 {
	return math.Pow(base, exp)
}
