package decimal

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

// Decimal type is a representation of a fixed-precision decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the position of the decimal point.
//   - Coefficient: a 128-bit unsigned integer value of the decimal without
//     the decimal point.
//
// The numerical value of a decimal is Coefficient / 10^Scale.
// A negative scale multiplies the coefficient by a power of ten,
// so a decimal with a coefficient of 12 and a scale of -3 represents 12000.
//
// Zero is never negative, and there are no special values such as
// NaN or Infinity.
type Decimal struct {
	neg   bool            // indicates whether the decimal is negative
	scale int16           // the position of the decimal point
	coef  uint128.Uint128 // the coefficient of the decimal
}

// MaxPrec and the 128-bit coefficient are chosen together:
// 10^MaxPrec - 1 is the largest run of nines that fits into 128 bits.
const (
	MaxPrec  = 38   // maximum length of the coefficient in decimal digits
	MaxScale = 130  // maximum number of digits after the decimal point
	MinScale = -126 // minimum (most negative) scale
)

var (
	// ErrEmpty is returned when the text is empty or consists of whitespace only.
	ErrEmpty = errors.New("empty decimal string")
	// ErrInvalid is returned when the text does not match the decimal grammar.
	ErrInvalid = errors.New("invalid decimal string")
	// ErrOverflow is returned when the coefficient has more than [MaxPrec] digits
	// or the scale is outside of [[MinScale], [MaxScale]].
	ErrOverflow = errors.New("decimal overflow")
)

// newDecimalUnchecked builds a decimal from parts that were already validated.
// It must only be called by the parser.
func newDecimalUnchecked(coef uint128.Uint128, scale int16, neg bool) Decimal {
	return Decimal{neg: neg, scale: scale, coef: coef}
}

func newDecimal(neg bool, coef uint128.Uint128, scale int) (Decimal, error) {
	switch {
	case scale < MinScale || scale > MaxScale:
		return Decimal{}, fmt.Errorf("scale %v out of range [%v, %v]: %w", scale, MinScale, MaxScale, ErrOverflow)
	case coef.Cmp(maxCoef) > 0:
		return Decimal{}, fmt.Errorf("coefficient has more than %v digits: %w", MaxPrec, ErrOverflow)
	}
	if coef.IsZero() {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: int16(scale)}, nil
}

// New returns a decimal equal to coef / 10^scale.
// New returns an error if scale is less than [MinScale] or greater than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	neg := false
	if coef < 0 {
		neg = true
		coef = -coef
	}
	return newDecimal(neg, uint128.From64(uint64(coef)), scale)
}

// Coef returns the coefficient of the decimal.
// Also see method [Decimal.Prec].
func (d Decimal) Coef() uint128.Uint128 {
	return d.coef
}

// Scale returns number of digits after the decimal point.
// A negative scale means the coefficient is followed by -scale zeros.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// Prec returns number of digits in the coefficient.
// Zero has no digits.
func (d Decimal) Prec() int {
	return prec(d.coef)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef.IsZero():
		return 0
	}
	return 1
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.coef.IsZero()
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.IsZero()
}

// Neg returns a decimal with the opposite sign.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Cmp compares numeric values, so 1, 1.0 and 10e-1 are all equal.
func (d Decimal) Cmp(e Decimal) int {
	switch ds, es := d.Sign(), e.Sign(); {
	case ds < es:
		return -1
	case ds > es:
		return 1
	case ds == 0:
		return 0
	}
	r := cmpAbs(d, e)
	if d.neg {
		return -r
	}
	return r
}

// cmpAbs compares absolute values of non-zero decimals.
func cmpAbs(d, e Decimal) int {
	dprec, eprec := d.Prec(), e.Prec()
	// Position of the most significant digit
	dexp, eexp := dprec-d.Scale(), eprec-e.Scale()
	switch {
	case dexp < eexp:
		return -1
	case dexp > eexp:
		return 1
	}
	// Same position, align coefficients to the same length
	dcoef, ecoef := d.coef, e.coef
	switch {
	case dprec < eprec:
		dcoef, _ = lsh(dcoef, eprec-dprec)
	case dprec > eprec:
		ecoef, _ = lsh(ecoef, dprec-eprec)
	}
	return dcoef.Cmp(ecoef)
}

// Equal returns true if d and e represent the same numeric value.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical text of a decimal value.
// Decimals with 0 <= scale <= [MaxPrec] are written without an exponent and
// with exactly scale digits after the decimal point.
// Decimals with a negative scale are written as the coefficient followed by
// -scale zeros, unless that would take more than [MaxPrec] digits.
// All other decimals are written as the coefficient followed by an exponent:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	exponent       ::= 'e' [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// The result is always accepted by [Parse] and parses to an equal decimal.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {

	var (
		buf   [48]byte
		pos   int
		coef  uint128.Uint128
		scale int
		digit uint64
	)

	pos = len(buf) - 1
	coef = d.coef
	scale = d.Scale()

	switch {
	case d.IsZero() && scale < 0:
		scale = 0
	case scale > MaxPrec, scale < 0 && d.Prec()-scale > MaxPrec:
		// Exponent
		exp, eneg := scale, scale > 0
		if exp < 0 {
			exp = -exp
		}
		for {
			buf[pos] = byte(exp%10) + '0'
			pos--
			exp /= 10
			if exp == 0 {
				break
			}
		}
		if eneg {
			buf[pos] = '-'
			pos--
		}
		buf[pos] = 'e'
		pos--
		scale = 0
	case scale < 0:
		// Trailing zeros
		for ; scale < 0; scale++ {
			buf[pos] = '0'
			pos--
		}
	}

	// Coefficient
	for {
		coef, digit = coef.QuoRem64(10)
		buf[pos] = byte(digit) + '0'
		pos--
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef.IsZero() {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef.IsZero() && scale == 0 {
			break
		}
	}

	// Sign
	if d.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	// Convert bytes to string
	return string(buf[pos+1:])
}
