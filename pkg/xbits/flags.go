package xbits

import "golang.org/x/exp/constraints"

// Flag operations treat an integer as a bag of independent bits and a
// mask as the set of positions of interest. A zero mask is a valid
// "no constraint" mask: the mutators become no-ops, FlagIsOn is always
// false and FlagsAreOn is always true. Callers rely on that, so it is
// part of the contract.

// FlagToggle flips, in place, the bits of *n selected by mask.
func FlagToggle[T constraints.Unsigned](n *T, mask T) {
	*n ^= mask
}

// FlagOn sets, in place, the bits of *n selected by mask.
func FlagOn[T constraints.Unsigned](n *T, mask T) {
	*n |= mask
}

// FlagOff clears, in place, the bits of *n selected by mask.
func FlagOff[T constraints.Unsigned](n *T, mask T) {
	*n &^= mask
}

// FlagIsOn reports whether ANY bit of mask is set in n.
func FlagIsOn[T constraints.Unsigned](n, mask T) bool {
	return n&mask != 0
}

// FlagsAreOn reports whether ALL bits of mask are set in n.
func FlagsAreOn[T constraints.Unsigned](n, mask T) bool {
	return n&mask == mask
}
