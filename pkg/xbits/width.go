/*
Package xbits provides low-level integer bit-manipulation primitives:
power-of-two alignment, flag mask operations, integer log2 helpers,
power-of-two rounding, a MurmurHash3-style avalanche finalizer, and
bit-counting primitives.

Design Principles:
  - Zero Allocations: every operation works on stack values only
  - Predictable Performance: constant time, or logarithmic in bit width
  - No Validation: value-level preconditions are documented, not checked,
    to keep the primitives branch-free; wrong values give wrong answers,
    never a panic or out-of-range shift
  - Type Safety: width preconditions (such as the hash finalizer only
    accepting 32-bit and 64-bit words) are expressed as closed constraint
    sets, so misuse fails to compile instead of failing at runtime

Usage:

	// Round a buffer offset up to a cache line
	off := xbits.AlignUp(off, 64)

	// Size a hash table
	n := xbits.RoundUpToPowerOfTwo(uint32(expected))

	// Finalize a hash value
	h := xbits.Mix(h)
*/
package xbits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Word32 is the closed set of integer types that occupy exactly 4 bytes.
type Word32 interface {
	~int32 | ~uint32
}

// Word64 is the closed set of integer types that occupy exactly 8 bytes
// on 64-bit platforms.
type Word64 interface {
	~int64 | ~uint64
}

// Word is the set of integer types the hash finalizer accepts: exactly
// 4 or 8 bytes wide. int, uint and uintptr are admitted because they
// are always one of those two widths; their size is resolved per call
// site via unsafe.Sizeof.
type Word interface {
	Word32 | Word64 | ~int | ~uint | ~uintptr
}

// BitsFor maps an integer's byte size to its canonical bit width:
// 1→8, 2→16, 3..4→32, 5..8→64. The argument is always the result of
// unsafe.Sizeof, so out-of-range sizes indicate a non-integer operand
// and panic rather than returning garbage.
func BitsFor(sizeBytes uintptr) uint {
	switch {
	case sizeBytes == 1:
		return 8
	case sizeBytes == 2:
		return 16
	case sizeBytes == 3 || sizeBytes == 4:
		return 32
	case sizeBytes >= 5 && sizeBytes <= 8:
		return 64
	}
	panic("xbits: no integer width matches the given byte size")
}

// WidthOf returns the bit width of T's representation.
func WidthOf[T constraints.Integer]() uint {
	var v T
	return BitsFor(unsafe.Sizeof(v))
}

// toUint reinterprets v as an unsigned integer of the same width and
// widens the bit pattern into a uint64. Unlike a direct uint64
// conversion it never sign-extends: toUint(int32(-1)) is 0xffffffff,
// not 0xffffffffffffffff. Shift and mask routines go through this so
// signed inputs behave exactly like their unsigned twins.
func toUint[T constraints.Integer](v T) uint64 {
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(uint8(v))
	case 2:
		return uint64(uint16(v))
	case 4:
		return uint64(uint32(v))
	default:
		return uint64(v)
	}
}
