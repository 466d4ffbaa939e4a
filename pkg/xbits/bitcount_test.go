package xbits

import (
	"fmt"
	"math/bits"
	"testing"
)

// This file runs against whichever backend the build selected (the
// math/bits default or the xbits_portable fallbacks); the two must be
// indistinguishable from here.

func TestOnesCount32(t *testing.T) {
	tests := []struct {
		x        uint32
		expected uint32
	}{
		{0, 0},
		{1, 1},
		{7, 3},
		{16, 1},
		{0x80000000, 1},
		{0xF0F0F0F0, 16},
		{0xFFFFFFFF, 32},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x→%d", tt.x, tt.expected), func(t *testing.T) {
			result := OnesCount32(tt.x)
			if result != tt.expected {
				t.Errorf("OnesCount32(%#x) = %d, expected %d", tt.x, result, tt.expected)
			}
		})
	}
}

func TestLeadingZeros32(t *testing.T) {
	tests := []struct {
		x        uint32
		expected uint32
	}{
		{0, 32}, // All-zero word
		{1, 31},
		{16, 27},
		{0x80000000, 0},
		{0xFFFFFFFF, 0},
		{0x00010000, 15},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x→%d", tt.x, tt.expected), func(t *testing.T) {
			result := LeadingZeros32(tt.x)
			if result != tt.expected {
				t.Errorf("LeadingZeros32(%#x) = %d, expected %d", tt.x, result, tt.expected)
			}
		})
	}
}

func TestTrailingZeros32(t *testing.T) {
	tests := []struct {
		x        uint32
		expected uint32
	}{
		{0, 32}, // All-zero word
		{1, 0},
		{8, 3},
		{16, 4},
		{0x80000000, 31},
		{0xFFFFFFFF, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x→%d", tt.x, tt.expected), func(t *testing.T) {
			result := TrailingZeros32(tt.x)
			if result != tt.expected {
				t.Errorf("TrailingZeros32(%#x) = %d, expected %d", tt.x, result, tt.expected)
			}
		})
	}
}

func TestBitCount64(t *testing.T) {
	tests := []struct {
		x            uint64
		ones, lz, tz uint64
	}{
		{0, 0, 64, 64},
		{1, 1, 63, 0},
		{1 << 40, 1, 23, 40},
		{0xFFFFFFFFFFFFFFFF, 64, 0, 0},
		{0x8000000000000000, 1, 0, 63},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x", tt.x), func(t *testing.T) {
			if got := OnesCount64(tt.x); got != tt.ones {
				t.Errorf("OnesCount64(%#x) = %d, expected %d", tt.x, got, tt.ones)
			}
			if got := LeadingZeros64(tt.x); got != tt.lz {
				t.Errorf("LeadingZeros64(%#x) = %d, expected %d", tt.x, got, tt.lz)
			}
			if got := TrailingZeros64(tt.x); got != tt.tz {
				t.Errorf("TrailingZeros64(%#x) = %d, expected %d", tt.x, got, tt.tz)
			}
		})
	}
}

func TestBitCountMatchesMathBits(t *testing.T) {
	// Sweep a spread of values and hold the selected backend to the
	// math/bits reference. Under the default build this is a tautology;
	// under xbits_portable it proves the fallbacks agree bit-for-bit.
	for i := uint64(0); i < 100000; i++ {
		x32 := uint32(i * 2654435761) // Knuth multiplicative spread
		if got, want := OnesCount32(x32), uint32(bits.OnesCount32(x32)); got != want {
			t.Fatalf("OnesCount32(%#x) = %d, math/bits gives %d", x32, got, want)
		}
		if got, want := LeadingZeros32(x32), uint32(bits.LeadingZeros32(x32)); got != want {
			t.Fatalf("LeadingZeros32(%#x) = %d, math/bits gives %d", x32, got, want)
		}
		if got, want := TrailingZeros32(x32), uint32(bits.TrailingZeros32(x32)); got != want {
			t.Fatalf("TrailingZeros32(%#x) = %d, math/bits gives %d", x32, got, want)
		}

		x64 := i * 0x9e3779b97f4a7c15
		if got, want := OnesCount64(x64), uint64(bits.OnesCount64(x64)); got != want {
			t.Fatalf("OnesCount64(%#x) = %d, math/bits gives %d", x64, got, want)
		}
		if got, want := LeadingZeros64(x64), uint64(bits.LeadingZeros64(x64)); got != want {
			t.Fatalf("LeadingZeros64(%#x) = %d, math/bits gives %d", x64, got, want)
		}
		if got, want := TrailingZeros64(x64), uint64(bits.TrailingZeros64(x64)); got != want {
			t.Fatalf("TrailingZeros64(%#x) = %d, math/bits gives %d", x64, got, want)
		}
	}
}
