package num

import (
	"math/big"

	"github.com/pkg/errors"
)

// ParseLiteral parses the text of a single lex.Number token: a
// decimal literal with optional fractional part and exponent, or a
// "0x"/"0b"/"0o" prefixed integer literal in another base.
func ParseLiteral(text string) (Number, error) {
	if len(text) > 1 && text[0] == '0' {
		switch text[1] {
		case 'x':
			return parseRadixLiteral(text[2:], 16)
		case 'b':
			return parseRadixLiteral(text[2:], 2)
		case 'o':
			return parseRadixLiteral(text[2:], 8)
		}
	}
	r := new(big.Rat)
	if _, ok := r.SetString(text); !ok {
		return Number{}, errors.Errorf("invalid number literal %q", text)
	}
	return FromRat(r), nil
}

func parseRadixLiteral(digits string, base int) (Number, error) {
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Number{}, errors.Errorf("invalid base-%d literal %q", base, digits)
	}
	out := FromRat(new(big.Rat).SetInt(i))
	out.Base = 10
	return out, nil
}
