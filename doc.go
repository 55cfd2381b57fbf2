/*
Package decimal implements immutable fixed-precision decimal numbers.
It is specifically designed for financial and quantity data,
where the rounding errors of binary floating-point numbers are unacceptable.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: a 128-bit unsigned integer representing the numeric value
    of the decimal without the decimal point.
  - Scale: a signed integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2
    represents the value 123.45, and a decimal with a coefficient of 12 and
    a scale of -3 represents the value 12000.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

# Constraints

	| Attribute           | Value |
	| ------------------- | ----- |
	| Precision (MaxPrec) | 38    |
	| Maximum Scale       | 130   |
	| Minimum Scale       | -126  |

The coefficient never has more than 38 digits, which is the largest number
of nines that fits into 128 bits.

Special values such as [NaN], [Infinity], or [negative zeros] are not supported.
A zero parsed from "-0" or "-0.0e5" is the same non-negative zero.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [MustParse], [Decimal.String].
  - from/to int64:
    [New], [MustNew].
  - from/to text, JSON and SQL:
    [Decimal.UnmarshalText], [Decimal.UnmarshalJSON], [Decimal.Scan]
    and their counterparts, all of which use [Parse].

# Errors

All parsing errors wrap exactly one of the following sentinel errors,
which can be checked with [errors.Is]:

  - [ErrEmpty]: the text is empty or consists of whitespace only.
  - [ErrInvalid]: the text is not a decimal literal.
    This includes "NaN" in any case, a bare sign, a bare decimal point,
    an exponent without digits, whitespace inside the literal, and any
    other trailing characters.
  - [ErrOverflow]: the literal has more than 38 significant digits,
    its scale is outside of [-126, 130], or its exponent has more than
    3 significant digits.

A failed conversion never returns a partially parsed decimal.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package decimal
