package xbits

import "unsafe"

// MurmurHash3 finalizer constants, from
// code.google.com/p/smhasher/wiki/MurmurHash3.
const (
	mix32Mul1 = 0x85ebca6b
	mix32Mul2 = 0xc2b2ae35

	mix64Mul1 = 0xff51afd7ed558ccd
	mix64Mul2 = 0xc4ceb9fe1a85ec53
)

// Mix32 is the 32-bit MurmurHash3 avalanche finalizer: a deterministic
// bit mixer in which a one-bit input change flips roughly half the
// output bits. Not cryptographic. Mix32(0) is 0.
func Mix32(h uint32) uint32 {
	h ^= h >> 16
	h *= mix32Mul1
	h ^= h >> 13
	h *= mix32Mul2
	h ^= h >> 16
	return h
}

// Mix64 is the 64-bit MurmurHash3 avalanche finalizer. See Mix32.
func Mix64(h uint64) uint64 {
	h ^= h >> 33
	h *= mix64Mul1
	h ^= h >> 33
	h *= mix64Mul2
	h ^= h >> 33
	return h
}

// Mix applies the finalizer matching h's width. The Word constraint
// admits only 4-byte and 8-byte integer types, so passing any other
// width is a compile error. Signed inputs are mixed as their unsigned
// bit pattern and the result carries the original type back.
func Mix[T Word](h T) T {
	if unsafe.Sizeof(h) == 4 {
		return T(Mix32(uint32(h)))
	}
	return T(Mix64(toUint(h)))
}
