// SPDX-License-Identifier: MIT
package xbits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// AlignUp returns the smallest multiple of alignTo that is >= addr.
//
// alignTo must be a power of two >= 1; the result is silently wrong
// otherwise. AlignUp(addr, 1) is addr. Values already on the boundary
// are returned unchanged. Overflow at the top of T's range is not
// guarded.
//
// Examples:
//
//	AlignUp(57, 16) = 64
//	AlignUp(64, 16) = 64
//	AlignUp(0, 16)  = 0
func AlignUp[T constraints.Integer](addr, alignTo T) T {
	return (addr + alignTo - 1) &^ (alignTo - 1)
}

// AlignDown returns the largest multiple of alignTo that is <= addr.
// Same power-of-two precondition as AlignUp.
//
// Examples:
//
//	AlignDown(57, 16) = 48
//	AlignDown(48, 16) = 48
func AlignDown[T constraints.Integer](addr, alignTo T) T {
	return addr &^ (alignTo - 1)
}

// IsAligned reports whether addr is a multiple of alignTo, which must
// be a power of two. Zero is aligned to everything, and everything is
// aligned to 1.
func IsAligned[T constraints.Integer](addr, alignTo T) bool {
	return addr&(alignTo-1) == 0
}

// AlignPointerUp returns p moved up to the next alignTo boundary. The
// pointer round-trips through its numeric address and the integer
// AlignUp, so the byte-level effect is identical to the integer form.
// The result is only safe to dereference if the allocation actually
// extends to the aligned address.
func AlignPointerUp[T any](p *T, alignTo uintptr) *T {
	return (*T)(unsafe.Pointer(AlignUp(uintptr(unsafe.Pointer(p)), alignTo)))
}

// AlignPointerDown returns p moved down to the previous alignTo
// boundary. See AlignPointerUp for the safety caveat.
func AlignPointerDown[T any](p *T, alignTo uintptr) *T {
	return (*T)(unsafe.Pointer(AlignDown(uintptr(unsafe.Pointer(p)), alignTo)))
}

// IsPointerAligned reports whether p sits on an alignTo boundary.
func IsPointerAligned[T any](p *T, alignTo uintptr) bool {
	return IsAligned(uintptr(unsafe.Pointer(p)), alignTo)
}
