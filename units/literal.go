package units

import "math/big"

// parseRatLiteral parses a decimal, scientific, or plain fraction
// literal such as "299792458", "1e-24", or "1/1000".
func parseRatLiteral(s string) (*big.Rat, bool) {
	r := new(big.Rat)
	if _, ok := r.SetString(s); ok {
		return r, true
	}
	return nil, false
}
