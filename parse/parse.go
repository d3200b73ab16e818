// Package parse turns a token stream into an ast.Expr tree. Operator
// precedence, low to high: lambda ':'/'=>', 'as'/'to', '+'/'-'
// (including bare juxtaposition between two numeric groups), implicit
// multiplication and explicit '*'/'/', '^' (right associative), unary
// '+'/'-'/'/', postfix '!'. Bare juxtaposition "f x" is never resolved
// to a call or a multiply here: it comes out as ast.Apply, and eval
// decides which one applies once it knows the left operand's type. A
// parenthesized argument "f(x)" comes out as ast.ApplyFunctionCall,
// which eval only ever treats as a call.
package parse

import (
	"fmt"

	"github.com/gofend/fend/ast"
	"github.com/gofend/fend/lex"
	"github.com/gofend/fend/num"
)

type parser struct {
	toks []lex.Token
	pos  int
}

// Parse lexes and parses s into a single expression.
func Parse(s string) (ast.Expr, error) {
	toks, err := lex.Scan(s)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses an already-lexed token stream, letting a caller
// (fend.EvaluateWithInterrupt) repair the stream first.
func ParseTokens(toks []lex.Token) (ast.Expr, error) {
	if len(toks) == 0 || toks[len(toks)-1].Kind != lex.EOF {
		toks = append(append([]lex.Token{}, toks...), lex.Token{Kind: lex.EOF})
	}
	p := &parser{toks: toks}
	expr, err := p.parseLambda()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != lex.EOF {
		return nil, fmt.Errorf("unexpected trailing input at position %d: %q", p.cur().Pos, p.cur().Text)
	}
	return expr, nil
}

func (p *parser) cur() lex.Token  { return p.toks[p.pos] }
func (p *parser) peek2() lex.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}
func (p *parser) advance() lex.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k lex.Kind, what string) (lex.Token, error) {
	if p.cur().Kind != k {
		return lex.Token{}, fmt.Errorf("expected %s at position %d, got %q", what, p.cur().Pos, p.cur().Text)
	}
	return p.advance(), nil
}

func (p *parser) parseLambda() (ast.Expr, error) {
	if p.cur().Kind == lex.Ident {
		nxt := p.peek2()
		if nxt.Kind == lex.Colon || nxt.Kind == lex.FatArrow {
			param := p.advance().Text
			p.advance() // ':' or '=>'
			body, err := p.parseLambda()
			if err != nil {
				return nil, err
			}
			return ast.Fn{Param: param, Body: body}, nil
		}
	}
	return p.parseAs()
}

func (p *parser) parseAs() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lex.As {
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.As{Inner: left, Target: right}
	}
	return left, nil
}

func (p *parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case lex.Plus:
			p.advance()
			right, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			left = ast.Add{LHS: left, RHS: right}
		case lex.Minus:
			p.advance()
			right, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			left = ast.Sub{LHS: left, RHS: right}
		case lex.Number:
			right, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			left = ast.ImplicitAdd{LHS: left, RHS: right}
		default:
			return left, nil
		}
	}
}

// parseGroup parses one multiplicative juxtaposition chain: explicit
// '*'/'/' and bare adjacency (function application or multiplication,
// undetermined until eval) all live at this precedence.
//
// A bare Number may continue the chain only as the group's very first
// juxtaposed term ("sqrt 4", "sin 30"): this lets a built-in bind to
// its numeric argument without a space-sensitive grammar. A second
// Number showing up later ends the group instead of joining it, so
// that "5 feet 3 inches" splits into two groups ("5 feet", "3
// inches") for parseAdditive to combine — eval then decides whether
// that combination is an addition (matching units) or something else.
func (p *parser) parseGroup() (ast.Expr, error) {
	left, err := p.parsePow()
	if err != nil {
		return nil, err
	}
	first := true
	for {
		switch p.cur().Kind {
		case lex.Star:
			p.advance()
			right, err := p.parsePow()
			if err != nil {
				return nil, err
			}
			left = ast.Mul{LHS: left, RHS: right}
		case lex.Slash:
			p.advance()
			right, err := p.parsePow()
			if err != nil {
				return nil, err
			}
			left = ast.Div{LHS: left, RHS: right}
		case lex.LParen:
			right, err := p.parsePow()
			if err != nil {
				return nil, err
			}
			left = ast.ApplyFunctionCall{Fn: left, Arg: right}
		case lex.Ident, lex.String:
			right, err := p.parsePow()
			if err != nil {
				return nil, err
			}
			left = ast.Apply{Fn: left, Arg: right}
		case lex.Number:
			if !first {
				return left, nil
			}
			right, err := p.parsePow()
			if err != nil {
				return nil, err
			}
			left = ast.Apply{Fn: left, Arg: right}
		default:
			return left, nil
		}
		first = false
	}
}

func (p *parser) parsePow() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == lex.Caret {
		p.advance()
		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		return ast.Pow{LHS: left, RHS: right}, nil
	}
	return left, nil
}

func (p *parser) parseUnary() (ast.Expr, error) {
	switch p.cur().Kind {
	case lex.Minus:
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryMinus{Inner: inner}, nil
	case lex.Plus:
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryPlus{Inner: inner}, nil
	case lex.Slash:
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryDiv{Inner: inner}, nil
	default:
		return p.parsePostfix()
	}
}

func (p *parser) parsePostfix() (ast.Expr, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lex.Bang {
		p.advance()
		atom = ast.Factorial{Inner: atom}
	}
	return atom, nil
}

func (p *parser) parseAtom() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Kind {
	case lex.Number:
		p.advance()
		n, err := parseNumberLiteral(tok.Text)
		if err != nil {
			return nil, err
		}
		return ast.Num{Value: n}, nil
	case lex.String:
		p.advance()
		return ast.String{Value: tok.Text}, nil
	case lex.Ident:
		p.advance()
		if p.cur().Kind == lex.Of {
			p.advance()
			inner, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			return ast.Of{Member: tok.Text, Inner: inner}, nil
		}
		return ast.Ident{Name: tok.Text}, nil
	case lex.LParen:
		p.advance()
		inner, err := p.parseLambda()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RParen, "')'"); err != nil {
			return nil, err
		}
		return ast.Parens{Inner: inner}, nil
	default:
		return nil, fmt.Errorf("unexpected token %q at position %d", tok.Text, tok.Pos)
	}
}

func parseNumberLiteral(text string) (num.Number, error) {
	return num.ParseLiteral(text)
}
