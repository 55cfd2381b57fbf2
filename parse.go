package decimal

import (
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

// sign is the sign of a decimal literal.
type sign uint8

const (
	positive sign = iota
	negative
)

// maxExpDigits is the maximum number of significant digits in an exponent.
const maxExpDigits = 3

// parts are the interesting pieces of a decimal literal.
// The integral part has no leading zeros unless it is exactly "0",
// and the fractional part has no trailing zeros.
type parts struct {
	sign       sign
	integral   string
	fractional string
	exp        int16
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	.22E-9
//	  42.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	whitespace     ::= ' ' | '\t' | '\n' | '\f' | '\r'
//	sign           ::= '+' | '-'
//	digits         ::= ( '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' ) { digits }
//	mantissa       ::= digits [ '.' [ digits ] ] | '.' digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= { whitespace } [sign] mantissa [exponent] { whitespace }
//
// Parse removes leading zeros from the integer part and trailing zeros
// from the fractional part, so "000123.4500" and "123.45" give the same decimal.
// The sign of zero is always dropped.
//
// Parse returns an error wrapping:
//   - [ErrEmpty] if the string is empty or consists of whitespace only;
//   - [ErrInvalid] if the string does not match the grammar, including "NaN";
//   - [ErrOverflow] if the result has more than [MaxPrec] significant digits,
//     its scale is outside of [[MinScale], [MaxScale]], or the exponent has
//     more than 3 significant digits.
func Parse(s string) (Decimal, error) {
	s = trimLeftSpace(s)
	if s == "" {
		return Decimal{}, ErrEmpty
	}
	if hasNaN(s) {
		return Decimal{}, fmt.Errorf("NaN is not supported: %w", ErrInvalid)
	}
	d, rest, err := parseStr(s)
	if err != nil {
		return Decimal{}, err
	}
	if rest = trimLeftSpace(rest); rest != "" {
		return Decimal{}, fmt.Errorf("invalid character %q: %w", rest[0], ErrInvalid)
	}
	return d, nil
}

// parseStr parses a decimal at the start of s and returns the remainder of s.
// parseStr handles neither leading whitespace nor NaN.
func parseStr(s string) (Decimal, string, error) {
	p, rest, err := parseParts(s)
	if err != nil {
		return Decimal{}, "", err
	}
	scale, err := p.checkBounds()
	if err != nil {
		return Decimal{}, "", err
	}
	coef := p.coef()
	neg := p.sign == negative && !coef.IsZero()
	return newDecimalUnchecked(coef, scale, neg), rest, nil
}

// parseParts checks that s starts with a decimal literal and locates
// its integral part, fractional part and exponent.
func parseParts(s string) (parts, string, error) {
	var p parts

	p.sign, s = extractSign(s)
	if s == "" {
		return parts{}, "", fmt.Errorf("no digits: %w", ErrInvalid)
	}

	p.integral, s = eatDigits(s)
	for len(p.integral) > 1 && p.integral[0] == '0' {
		p.integral = p.integral[1:]
	}

	var err error
	switch {
	case s != "" && isExpMark(s[0]):
		if p.integral == "" {
			return parts{}, "", fmt.Errorf("no digits before exponent: %w", ErrInvalid)
		}
		p.exp, s, err = extractExponent(s[1:])
		if err != nil {
			return parts{}, "", err
		}
	case s != "" && s[0] == '.':
		p.fractional, s = eatDigits(s[1:])
		if p.integral == "" && p.fractional == "" {
			return parts{}, "", fmt.Errorf("no digits around decimal point: %w", ErrInvalid)
		}
		p.fractional = strings.TrimRight(p.fractional, "0")
		if s != "" && isExpMark(s[0]) {
			p.exp, s, err = extractExponent(s[1:])
			if err != nil {
				return parts{}, "", err
			}
		}
	default:
		if p.integral == "" {
			return parts{}, "", fmt.Errorf("invalid character %q: %w", s[0], ErrInvalid)
		}
	}

	return p, s, nil
}

// checkBounds validates the number of significant digits and returns
// the scale of the decimal.
func (p parts) checkBounds() (int16, error) {
	prec := len(p.integral) + len(p.fractional)
	if p.integral == "0" {
		prec = len(p.fractional)
	}
	if prec > MaxPrec {
		return 0, fmt.Errorf("more than %v significant digits: %w", MaxPrec, ErrOverflow)
	}
	scale := len(p.fractional) - int(p.exp)
	if scale < MinScale || scale > MaxScale {
		return 0, fmt.Errorf("scale %v out of range [%v, %v]: %w", scale, MinScale, MaxScale, ErrOverflow)
	}
	return int16(scale), nil
}

// coef folds the digits of the integral and fractional parts into
// the coefficient. The parts must have passed checkBounds.
func (p parts) coef() uint128.Uint128 {
	var coef uint128.Uint128
	for i := 0; i < len(p.integral); i++ {
		coef = fsa(coef, p.integral[i])
	}
	for i := 0; i < len(p.fractional); i++ {
		coef = fsa(coef, p.fractional[i])
	}
	return coef
}

// extractExponent parses the exponent that follows an 'e' or 'E'.
func extractExponent(s string) (int16, string, error) {
	var (
		sgn sign
		num string
		exp int16
	)

	sgn, s = extractSign(s)
	num, s = eatDigits(s)
	if num == "" {
		return 0, "", fmt.Errorf("no exponent digits: %w", ErrInvalid)
	}

	num = strings.TrimLeft(num, "0")
	if len(num) > maxExpDigits {
		return 0, "", fmt.Errorf("exponent has more than %v digits: %w", maxExpDigits, ErrOverflow)
	}
	for i := 0; i < len(num); i++ {
		exp = exp*10 + int16(num[i]-'0')
	}
	if sgn == negative {
		exp = -exp
	}

	if exp > -MinScale || exp < -MaxScale {
		return 0, "", fmt.Errorf("exponent %v out of range [%v, %v]: %w", exp, -MaxScale, -MinScale, ErrOverflow)
	}
	return exp, s, nil
}

// extractSign splits s into a sign and the rest, without inspecting the rest.
func extractSign(s string) (sign, string) {
	switch {
	case s == "":
		return positive, s
	case s[0] == '-':
		return negative, s[1:]
	case s[0] == '+':
		return positive, s[1:]
	}
	return positive, s
}

// eatDigits carves off decimal digits up to the first non-digit character.
func eatDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// trimLeftSpace carves off whitespace up to the first non-whitespace character.
func trimLeftSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// hasNaN reports whether s starts with "nan" in any case.
func hasNaN(s string) bool {
	return len(s) >= 3 && strings.EqualFold(s[:3], "nan")
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isExpMark(c byte) bool {
	return c == 'e' || c == 'E'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
