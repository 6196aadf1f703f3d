// Package expr evaluates arithmetic over numeric literals with + - * /,
// unary signs and parentheses. Anything else is rejected while parsing.
package expr

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// SyntaxError reports a malformed expression.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

// Eval parses and evaluates input.
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
func Eval(input string) (Value, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return Value{}, err
	}
	p := &parser{tokens: tokens}
	v, err := p.expr()
	if err != nil {
		return Value{}, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return Value{}, &SyntaxError{Pos: tok.pos, Msg: "unexpected " + tok.String()}
	}
	return v, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expr() (Value, error) {
	left, err := p.term()
	if err != nil {
		return Value{}, err
	}
	for {
		op := p.peek()
		if op.kind != tokenPlus && op.kind != tokenMinus {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return Value{}, err
		}
		if op.kind == tokenPlus {
			left, err = add(left, right)
		} else {
			left, err = sub(left, right)
		}
		if err != nil {
			return Value{}, err
		}
	}
}

func (p *parser) term() (Value, error) {
	left, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	for {
		op := p.peek()
		if op.kind != tokenStar && op.kind != tokenSlash {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		if op.kind == tokenStar {
			left, err = mul(left, right)
		} else {
			left, err = div(left, right)
		}
		if err != nil {
			return Value{}, err
		}
	}
}

func (p *parser) unary() (Value, error) {
	switch p.peek().kind {
	case tokenPlus:
		p.next()
		return p.unary()
	case tokenMinus:
		p.next()
		v, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		return neg(v)
	default:
		return p.primary()
	}
}

func (p *parser) primary() (Value, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		return tok.value, nil
	case tokenLParen:
		v, err := p.expr()
		if err != nil {
			return Value{}, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return Value{}, &SyntaxError{Pos: closing.pos, Msg: "expected ')' but found " + closing.String()}
		}
		return v, nil
	default:
		return Value{}, &SyntaxError{Pos: tok.pos, Msg: "unexpected " + tok.String()}
	}
}
