package eval

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokFloorDiv
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	num  Value
	err  error
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		l.i++
		if l.i < len(l.s) && l.s[l.i] == '*' {
			l.i++
			return token{kind: tokPow, text: "**"}
		}
		return token{kind: tokStar, text: "*"}
	case '/':
		l.i++
		if l.i < len(l.s) && l.s[l.i] == '/' {
			l.i++
			return token{kind: tokFloorDiv, text: "//"}
		}
		return token{kind: tokSlash, text: "/"}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")"}
	}

	ch := l.s[l.i]
	if ch == '.' || isDigit(ch) {
		start := l.i
		end, isFloat := scanNumber(l.s, l.i)
		if end == start {
			l.i++
			return token{kind: tokInvalid, text: string(ch)}
		}
		l.i = end
		txt := l.s[start:end]
		v, err := parseNumber(txt, isFloat)
		if err != nil {
			return token{kind: tokInvalid, text: txt, err: err}
		}
		return token{kind: tokNumber, text: txt, num: v}
	}

	start := l.i
	l.i++
	for l.i < len(l.s) && !isBoundary(l.s[l.i]) {
		l.i++
	}
	return token{kind: tokInvalid, text: l.s[start:l.i]}
}

// scanNumber returns the end of the literal starting at i and whether it is a
// float literal. It returns i when no literal starts there (a lone ".").
func scanNumber(s string, i int) (int, bool) {
	start := i
	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}
	isFloat := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		fracDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			fracDigits++
		}
		if intDigits == 0 && fracDigits == 0 {
			return start, false
		}
		i = j
		isFloat = true
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
			isFloat = true
		}
	}
	return i, isFloat
}

func parseNumber(txt string, isFloat bool) (Value, error) {
	if !isFloat {
		if len(txt) > 1 && txt[0] == '0' && !allZeros(txt) {
			return Value{}, fmt.Errorf("%w: leading zeros in decimal integer literal %q", ErrParse, txt)
		}
		n, err := strconv.ParseInt(txt, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Value{}, fmt.Errorf("%w: integer literal %q", ErrOverflow, txt)
			}
			return Value{}, fmt.Errorf("%w: bad integer literal %q", ErrParse, txt)
		}
		return Int(n), nil
	}
	f, err := strconv.ParseFloat(txt, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("%w: bad float literal %q", ErrParse, txt)
	}
	return Float(f), nil
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isBoundary(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '(', ')', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
