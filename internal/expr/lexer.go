package expr

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
)

type token struct {
	kind  tokenKind
	pos   int
	text  string
	value Value
}

func (t token) String() string {
	if t.kind == tokenEOF {
		return "end of expression"
	}
	return strconv.Quote(t.text)
}

var operatorTokens = map[byte]tokenKind{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'/': tokenSlash,
	'(': tokenLParen,
	')': tokenRParen,
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	for pos := 0; pos < len(input); {
		c := input[pos]
		switch {
		case isSpace(c):
			pos++
		case isDigit(c) || c == '.':
			tok, err := scanNumber(input, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			pos += len(tok.text)
		default:
			kind, ok := operatorTokens[c]
			if !ok {
				return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", rune(c))}
			}
			tokens = append(tokens, token{kind: kind, pos: pos, text: string(c)})
			pos++
		}
	}
	return append(tokens, token{kind: tokenEOF, pos: len(input)}), nil
}

// scanNumber reads digits with at most one decimal point. Literals with a
// point ("5.", ".5", "2.0") are floats; everything else is an integer.
func scanNumber(input string, start int) (token, error) {
	end := start
	digits := 0
	sawPoint := false
	for end < len(input) {
		c := input[end]
		if isDigit(c) {
			digits++
		} else if c == '.' && !sawPoint {
			sawPoint = true
		} else {
			break
		}
		end++
	}
	text := input[start:end]
	if digits == 0 {
		return token{}, &SyntaxError{Pos: start, Msg: "invalid number " + strconv.Quote(text)}
	}

	tok := token{kind: tokenNumber, pos: start, text: text}
	if sawPoint {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, &SyntaxError{Pos: start, Msg: "number out of range " + strconv.Quote(text)}
		}
		tok.value = Float(f)
		return tok, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token{}, &SyntaxError{Pos: start, Msg: "integer out of range " + strconv.Quote(text)}
	}
	tok.value = Int(i)
	return tok, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
