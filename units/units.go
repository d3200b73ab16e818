// Package units resolves unit identifiers (and prefixed combinations
// of them, like "km" or "kilometer") to num.Number values, grounded on
// the static catalog and two-pass split-and-combine search of the
// original fend unit database.
package units

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gofend/fend/num"
)

// PrefixRule records which of the definition's rule codes ("l@",
// "lp@", "s@", "sp@") a catalog entry was declared with, controlling
// whether it may combine with a prefix and on which side.
type PrefixRule int

const (
	NoPrefix PrefixRule = iota
	LongPrefixAllowed
	LongPrefix
	ShortPrefixAllowed
	ShortPrefix
)

type unitDef struct {
	Singular, Plural string
	Rule             PrefixRule
	Value            num.Number
}

var (
	cacheMu sync.Mutex
	cache   = map[string]unitDef{}
)

func parseRule(def string) (PrefixRule, string) {
	switch {
	case strings.HasPrefix(def, "lp@"):
		return LongPrefix, def[3:]
	case strings.HasPrefix(def, "l@"):
		return LongPrefixAllowed, def[2:]
	case strings.HasPrefix(def, "sp@"):
		return ShortPrefix, def[3:]
	case strings.HasPrefix(def, "s@"):
		return ShortPrefixAllowed, def[2:]
	default:
		return NoPrefix, def
	}
}

func exprUnit(singular, plural, definition string) (unitDef, error) {
	def := strings.TrimSpace(definition)
	rule, rest := parseRule(def)
	rest = strings.TrimSpace(rest)
	if rest == "!" {
		v := num.NewBaseUnit(singular, plural)
		return unitDef{singular, plural, rule, v}, nil
	}
	alias := false
	if strings.HasPrefix(rest, "=") {
		alias = true
		rest = rest[1:]
	}
	val, err := parseUnitExpr(rest)
	if err != nil {
		return unitDef{}, fmt.Errorf("unit %q: %w", singular, err)
	}
	if !alias && rule != LongPrefix {
		val, err = num.CreateUnitValueFromValue(val, "", singular, plural)
		if err != nil {
			return unitDef{}, err
		}
	}
	return unitDef{singular, plural, rule, val}, nil
}

func constructPrefixedUnit(a, b unitDef) (num.Number, error) {
	product, err := a.Value.Mul(b.Value)
	if err != nil {
		return num.Number{}, err
	}
	return num.CreateUnitValueFromValue(product, a.Singular, b.Singular, b.Plural)
}

func lookupRaw(group []rawUnit, ident string, caseSensitive bool) (rawUnit, bool) {
	var candidate rawUnit
	found := false
	for _, u := range group {
		plural := u.Plural
		if plural == "" {
			plural = u.Singular
		}
		if u.Singular == ident || plural == ident {
			return rawUnit{u.Singular, plural, u.Definition}, true
		}
		if !caseSensitive && (strings.EqualFold(u.Singular, ident) || strings.EqualFold(plural, ident)) {
			if found {
				return rawUnit{}, false
			}
			candidate = rawUnit{u.Singular, plural, u.Definition}
			found = true
		}
	}
	return candidate, found
}

func queryUnitInternal(ident string, allowShortPrefix, caseSensitive bool) (unitDef, bool, error) {
	key := fmt.Sprintf("%v|%v|%s", allowShortPrefix, caseSensitive, ident)
	cacheMu.Lock()
	if u, ok := cache[key]; ok {
		cacheMu.Unlock()
		return u, true, nil
	}
	cacheMu.Unlock()

	if allowShortPrefix {
		if raw, ok := lookupRaw(shortPrefixes, ident, true); ok {
			u, err := exprUnit(raw.Singular, raw.Plural, raw.Definition)
			if err != nil {
				return unitDef{}, false, err
			}
			cacheMu.Lock()
			cache[key] = u
			cacheMu.Unlock()
			return u, true, nil
		}
	}
	for _, group := range allCatalogGroups {
		if raw, ok := lookupRaw(group, ident, caseSensitive); ok {
			u, err := exprUnit(raw.Singular, raw.Plural, raw.Definition)
			if err != nil {
				return unitDef{}, false, err
			}
			cacheMu.Lock()
			cache[key] = u
			cacheMu.Unlock()
			return u, true, nil
		}
	}
	return unitDef{}, false, nil
}

func queryUnitCaseSensitive(ident string, caseSensitive bool) (num.Number, bool, error) {
	if u, ok, err := queryUnitInternal(ident, false, caseSensitive); err != nil {
		return num.Number{}, false, err
	} else if ok {
		return u.Value, true, nil
	}
	runes := []rune(ident)
	for splitIdx := 1; splitIdx < len(runes); splitIdx++ {
		prefix := string(runes[:splitIdx])
		remaining := string(runes[splitIdx:])
		a, aok, aerr := queryUnitInternal(prefix, true, caseSensitive)
		if aerr != nil {
			return num.Number{}, false, aerr
		}
		if !aok {
			continue
		}
		b, bok, berr := queryUnitInternal(remaining, false, caseSensitive)
		if berr != nil {
			return num.Number{}, false, berr
		}
		if !bok {
			continue
		}
		if (a.Rule == LongPrefix && b.Rule == LongPrefixAllowed) ||
			(a.Rule == ShortPrefix && b.Rule == ShortPrefixAllowed) {
			v, err := constructPrefixedUnit(a, b)
			return v, err == nil, err
		}
		return num.Number{}, false, nil
	}
	return num.Number{}, false, nil
}

// Query resolves ident to a Number, trying an exact case match first
// and falling back to a case-insensitive match when it is unambiguous.
// A name quoted in single quotes declares a fresh, ad hoc base unit.
func Query(ident string) (num.Number, error) {
	if strings.HasPrefix(ident, "'") && strings.HasSuffix(ident, "'") && len(ident) >= 3 {
		name := ident[1 : len(ident)-1]
		return num.NewBaseUnit(name, name), nil
	}
	if v, ok, err := queryUnitCaseSensitive(ident, true); err != nil {
		return num.Number{}, err
	} else if ok {
		return v, nil
	}
	if v, ok, err := queryUnitCaseSensitive(ident, false); err != nil {
		return num.Number{}, err
	} else if ok {
		return v, nil
	}
	return num.Number{}, fmt.Errorf("unknown identifier %q", ident)
}

// parseUnitExpr evaluates the small expression language used by
// catalog definitions: space-separated terms multiply, "/" divides
// the following term, and a term may carry an integer "^" exponent.
func parseUnitExpr(s string) (num.Number, error) {
	tokens := tokenizeUnitExpr(s)
	if len(tokens) == 0 {
		return num.Number{}, fmt.Errorf("empty unit expression")
	}
	result := num.FromInt(1)
	dividing := false
	first := true
	for _, tok := range tokens {
		if tok == "/" {
			dividing = true
			continue
		}
		val, err := parseUnitTerm(tok)
		if err != nil {
			return num.Number{}, err
		}
		var opErr error
		switch {
		case first && !dividing:
			result = val
		case dividing:
			result, opErr = result.Div(val)
		default:
			result, opErr = result.Mul(val)
		}
		if opErr != nil {
			return num.Number{}, opErr
		}
		dividing = false
		first = false
	}
	return result, nil
}

func parseUnitTerm(tok string) (num.Number, error) {
	base, exp, hasExp := strings.Cut(tok, "^")
	val, err := parseUnitAtom(base)
	if err != nil {
		return num.Number{}, err
	}
	if !hasExp {
		return val, nil
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return num.Number{}, fmt.Errorf("bad exponent %q: %w", exp, err)
	}
	return val.Pow(num.FromInt(int64(e)), nil)
}

func parseUnitAtom(s string) (num.Number, error) {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	if s == "pi" {
		return num.Pi(), nil
	}
	if r, ok := parseRatLiteral(s); ok {
		return num.FromRat(r), nil
	}
	return Query(s)
}

func tokenizeUnitExpr(s string) []string {
	if strings.HasPrefix(s, "/") {
		s = "1 " + s
	}
	var out []string
	for _, raw := range strings.Fields(s) {
		out = append(out, splitSlashToken(raw)...)
	}
	return out
}

func splitSlashToken(raw string) []string {
	if raw == "/" {
		return []string{"/"}
	}
	if !strings.Contains(raw, "/") {
		return []string{raw}
	}
	left, right, _ := strings.Cut(raw, "/")
	if isPlainInt(left) && isPlainInt(right) {
		return []string{raw}
	}
	var out []string
	if left != "" {
		out = append(out, left)
	}
	out = append(out, "/")
	if right != "" {
		out = append(out, right)
	}
	return out
}

func isPlainInt(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
