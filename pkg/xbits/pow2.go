// SPDX-License-Identifier: MIT
package xbits

import "golang.org/x/exp/constraints"

// Pow2 returns 2 raised to n, computed as 1 << n.
//
// The useful range is 0 <= n < bit-width(T); outside it the result is
// 0 rather than a fault (the shift amount is reinterpreted as unsigned
// of n's width, so negative and oversized exponents both shift past the
// top bit). Callers wanting a meaningful answer must range-check n,
// exactly as with a native shift.
func Pow2[T constraints.Integer](n T) T {
	return T(1) << toUint(n)
}

// Log2Floor returns floor(log2(x)) for x >= 1 by counting how many
// right-shifts reduce x to 1.
//
// Log2Floor(0) is 0 by convention, not mathematics; Log2RoundUp depends
// on exactly that convention. Negative inputs also return 0.
func Log2Floor[T constraints.Integer](x T) T {
	var p T
	for x > 1 {
		x >>= 1
		p++
	}
	return p
}

// Log2RoundUp returns the number of bits needed to represent x: 0 for
// x < 1, otherwise Log2Floor(x)+1.
//
// Examples:
//
//	Input   0 1 2 3 4 5 6 7 8 ... 1023 1024
//	Output  0 1 2 2 3 3 3 3 4 ...   10   11
func Log2RoundUp[T constraints.Integer](x T) T {
	if x < 1 {
		return 0
	}
	return Log2Floor(x) + 1
}

// IsPowerOfTwo reports whether x is a power of two. Zero and negative
// values are not powers of two.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// RoundUpToPowerOfTwo returns the smallest power of two >= x, or 0 for
// x == 0. Powers of two map to themselves.
//
// The classic bit-smear: drop to x-1, OR in right-shifted copies until
// every bit below the highest set bit is set, then add 1. The shift
// sequence is derived from T's width, so the loop runs log2(width)
// times regardless of x.
//
// Near the top of T's range (x > the largest representable power of
// two) the +1 wraps to 0; that overflow is the caller's to avoid.
func RoundUpToPowerOfTwo[T constraints.Unsigned](x T) T {
	if x == 0 {
		return 0
	}
	x--
	for s := WidthOf[T]() / 2; s > 0; s >>= 1 {
		x |= x >> s
	}
	return x + 1
}

// DivisibleByPow2 reports whether n is divisible by 2^x, i.e.
// n mod 2^x == 0, without a division. x == 0 is always true.
// x must be in [0, bit-width); see Pow2 for the out-of-range behavior
// it inherits.
func DivisibleByPow2[T constraints.Integer](n, x T) bool {
	return n&(Pow2(x)-1) == 0
}
