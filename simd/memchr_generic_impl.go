package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants: lo8 has the low bit of every byte set, hi8 the high bit.
const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// memchrGeneric implements pure Go byte search using the SWAR technique,
// processing 8 bytes at a time using uint64 bitwise operations.
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64
//  2. XOR an 8-byte chunk with the broadcast (matching bytes become 0x00)
//  3. Apply the zero-byte detection formula to flag zero bytes
//  4. Extract the first flagged position with a trailing zero count
//
// The detection formula (v - lo8) & ^v & hi8 can flag spurious bytes above
// the first zero byte due to borrow propagation, but the lowest flagged byte
// is always exact, which is all first-match search needs. CandidateMask64
// uses the exact (carry-free) variant instead.
func memchrGeneric(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	needleMask := uint64(needle) * lo8

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask
		hasZero := (xor - lo8) & ^xor & hi8
		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	// Process remaining bytes (0-7 bytes) byte-by-byte
	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}

// memchrWide is the unrolled SWAR kernel: 32 bytes per iteration with four
// independent accumulators, so the loads and the zero-detection arithmetic
// can overlap. Requires len(haystack) >= 32; shorter tails fall back to
// memchrGeneric.
func memchrWide(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	needleMask := uint64(needle) * lo8

	idx := 0
	for idx+32 <= haystackLen {
		x0 := binary.LittleEndian.Uint64(haystack[idx:]) ^ needleMask
		x1 := binary.LittleEndian.Uint64(haystack[idx+8:]) ^ needleMask
		x2 := binary.LittleEndian.Uint64(haystack[idx+16:]) ^ needleMask
		x3 := binary.LittleEndian.Uint64(haystack[idx+24:]) ^ needleMask

		z0 := (x0 - lo8) & ^x0 & hi8
		z1 := (x1 - lo8) & ^x1 & hi8
		z2 := (x2 - lo8) & ^x2 & hi8
		z3 := (x3 - lo8) & ^x3 & hi8

		if z0|z1|z2|z3 != 0 {
			if z0 != 0 {
				return idx + bits.TrailingZeros64(z0)/8
			}
			if z1 != 0 {
				return idx + 8 + bits.TrailingZeros64(z1)/8
			}
			if z2 != 0 {
				return idx + 16 + bits.TrailingZeros64(z2)/8
			}
			return idx + 24 + bits.TrailingZeros64(z3)/8
		}

		idx += 32
	}

	if idx < haystackLen {
		if rest := memchrGeneric(haystack[idx:], needle); rest != -1 {
			return idx + rest
		}
	}

	return -1
}
