package fend

import "github.com/gofend/fend/lex"

// repairTokens applies two small forgiving transforms before parsing,
// mirroring the leniency the interactive CLI depends on:
//
//   - a string with more ')' than '(' gets the missing '(' tokens
//     prepended, so a REPL user who only typed the closing half of a
//     parenthesized aside still gets something sensible back;
//   - "/3 kg" is parenthesized into "/(3 kg)" so a unit divides by the
//     whole quantity instead of just the bare number.
func repairTokens(toks []lex.Token) []lex.Token {
	missingOpens := 0
	for _, t := range toks {
		if t.Kind == lex.RParen {
			missingOpens++
		} else if t.Kind == lex.LParen {
			missingOpens--
		}
	}
	if missingOpens < 0 {
		missingOpens = 0
	}

	out := make([]lex.Token, 0, len(toks)+missingOpens*2)
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == lex.Slash && i+2 < len(toks) &&
			toks[i+1].Kind == lex.Number && toks[i+2].Kind == lex.Ident {
			out = append(out, t, lex.Token{Kind: lex.LParen}, toks[i+1], toks[i+2], lex.Token{Kind: lex.RParen})
			i += 2
			continue
		}
		out = append(out, t)
	}

	if missingOpens == 0 {
		return out
	}
	prefix := make([]lex.Token, missingOpens)
	for i := range prefix {
		prefix[i] = lex.Token{Kind: lex.LParen}
	}
	return append(prefix, out...)
}
