package decimal

import "lukechampine.com/uint128"

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = func() [MaxPrec + 1]uint128.Uint128 {
	var p [MaxPrec + 1]uint128.Uint128
	p[0] = uint128.From64(1)
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1].Mul64(10)
	}
	return p
}()

// maxCoef is a maximum value of the coefficient, which is equal to (10^MaxPrec - 1).
var maxCoef = pow10[MaxPrec].Sub64(1)

// fsa (Fused Shift and Addition) calculates x * 10 + (b - '0').
// b must be an ASCII digit and x must have fewer than [MaxPrec] digits,
// otherwise fsa panics.
func fsa(x uint128.Uint128, b byte) uint128.Uint128 {
	return x.Mul64(10).Add64(uint64(b - '0'))
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func lsh(x uint128.Uint128, shift int) (z uint128.Uint128, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case x.IsZero():
		return x, true
	case shift > MaxPrec:
		return uint128.Zero, false
	}
	// General case
	if x.Cmp(pow10[MaxPrec-shift]) >= 0 {
		return uint128.Zero, false
	}
	return x.Mul(pow10[shift]), true
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func prec(x uint128.Uint128) int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x.Cmp(pow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}
