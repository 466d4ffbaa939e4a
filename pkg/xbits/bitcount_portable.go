//go:build xbits_portable

package xbits

// Portable bit-counting backend: pure shift/mask arithmetic, no
// math/bits. Selected by the xbits_portable build tag; must agree
// bit-for-bit with the default backend on every input.

// OnesCount32 returns the number of set bits in x, by parallel partial
// sums: pairs, then nibbles, then bytes.
func OnesCount32(x uint32) uint32 {
	x -= (x >> 1) & 0x55555555
	x = (x>>2)&0x33333333 + x&0x33333333
	x = (x>>4 + x) & 0x0f0f0f0f
	x += x >> 8
	x += x >> 16
	return x & 0x3f
}

// OnesCount64 returns the number of set bits in x.
func OnesCount64(x uint64) uint64 {
	x -= (x >> 1) & 0x5555555555555555
	x = (x>>2)&0x3333333333333333 + x&0x3333333333333333
	x = (x>>4 + x) & 0x0f0f0f0f0f0f0f0f
	x += x >> 8
	x += x >> 16
	x += x >> 32
	return x & 0x7f
}

// LeadingZeros32 returns the number of zero bits above the highest set
// bit of x; 32 for x == 0. Smears the highest set bit down, then counts
// what is left unset.
func LeadingZeros32(x uint32) uint32 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return 32 - OnesCount32(x)
}

// LeadingZeros64 returns the number of zero bits above the highest set
// bit of x; 64 for x == 0.
func LeadingZeros64(x uint64) uint64 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return 64 - OnesCount64(x)
}

// TrailingZeros32 returns the number of zero bits below the lowest set
// bit of x; 32 for x == 0. x & -x isolates the lowest set bit, and
// subtracting 1 turns the bits below it into ones to count.
func TrailingZeros32(x uint32) uint32 {
	return OnesCount32((x & -x) - 1)
}

// TrailingZeros64 returns the number of zero bits below the lowest set
// bit of x; 64 for x == 0.
func TrailingZeros64(x uint64) uint64 {
	return OnesCount64((x & -x) - 1)
}
