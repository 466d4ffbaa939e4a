//go:build !xbits_portable

package xbits

import "math/bits"

// The default bit-counting backend delegates to math/bits, which the
// compiler lowers to single instructions (POPCNT, LZCNT, TZCNT) where
// the target has them. The xbits_portable build tag swaps in the
// shift/mask fallbacks; both backends satisfy the same contract and are
// covered by the same test suite.

// OnesCount32 returns the number of set bits in x.
func OnesCount32(x uint32) uint32 {
	return uint32(bits.OnesCount32(x))
}

// OnesCount64 returns the number of set bits in x.
func OnesCount64(x uint64) uint64 {
	return uint64(bits.OnesCount64(x))
}

// LeadingZeros32 returns the number of zero bits above the highest set
// bit of x; 32 for x == 0.
func LeadingZeros32(x uint32) uint32 {
	return uint32(bits.LeadingZeros32(x))
}

// LeadingZeros64 returns the number of zero bits above the highest set
// bit of x; 64 for x == 0.
func LeadingZeros64(x uint64) uint64 {
	return uint64(bits.LeadingZeros64(x))
}

// TrailingZeros32 returns the number of zero bits below the lowest set
// bit of x; 32 for x == 0.
func TrailingZeros32(x uint32) uint32 {
	return uint32(bits.TrailingZeros32(x))
}

// TrailingZeros64 returns the number of zero bits below the lowest set
// bit of x; 64 for x == 0.
func TrailingZeros64(x uint64) uint64 {
	return uint64(bits.TrailingZeros64(x))
}
