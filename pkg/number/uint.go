package number

import "math/bits"

// AddUint64 returns a+b, reporting whether the sum fits in uint64.
func AddUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// MulDiv returns floor(a*b/den) computed with a 128-bit intermediate.
// Reports false when den is zero or the quotient does not fit in uint64.
func MulDiv(a, b, den uint64) (uint64, bool) {
	if den == 0 {
		return 0, false
	}

	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		return 0, false
	}

	quo, _ := bits.Div64(hi, lo, den)
	return quo, true
}

// MulDiv3 returns floor(a*b*c/den). The three-way product must fit in
// 128 bits and the quotient in uint64, otherwise reports false.
func MulDiv3(a, b, c, den uint64) (uint64, bool) {
	if den == 0 {
		return 0, false
	}

	hi, lo := bits.Mul64(a, b)

	// (hi<<64 + lo) * c
	hh, hl := bits.Mul64(hi, c)
	if hh != 0 {
		return 0, false
	}

	lh, ll := bits.Mul64(lo, c)
	mid, carry := bits.Add64(hl, lh, 0)
	if carry != 0 {
		return 0, false
	}

	if mid >= den {
		return 0, false
	}

	quo, _ := bits.Div64(mid, ll, den)
	return quo, true
}
