package simd

import "encoding/binary"

// movemask multiplier: gathers the 0x01 bit of each byte into the top byte,
// so ((flags >> 7) * moveMul) >> 56 yields one result bit per input byte.
const moveMul = 0x0102040810204080

// CandidateMask64 returns a bitmask with bit i set iff block[i] == needle.
// block may hold at most 64 bytes; bits at positions >= len(block) are zero.
// Bit 0 corresponds to block[0] (little-endian bit order, matching the
// trailing-zeros consumption order of the scan loop).
//
// Unlike the first-match formula in memchrGeneric, this uses the carry-free
// zero-byte detector, so every matching position is flagged exactly:
//
//	y = ^(((x & ^hi8) + ^hi8) | x | ^hi8)
//
// For each byte b of x: the high bit of y is set iff b == 0. Per-byte
// additions cannot carry into the next byte because (b & 0x7F) + 0x7F <= 0xFE.
func CandidateMask64(block []byte, needle byte) uint64 {
	n := len(block)
	if n > 64 {
		n = 64
	}
	needleMask := uint64(needle) * lo8

	var result uint64
	idx := 0
	for idx+8 <= n {
		x := binary.LittleEndian.Uint64(block[idx:]) ^ needleMask
		y := ^(((x & ^uint64(hi8)) + ^uint64(hi8)) | x | ^uint64(hi8))
		result |= ((y >> 7) * moveMul) >> 56 << idx
		idx += 8
	}

	// Partial trailing word, byte-by-byte
	for ; idx < n; idx++ {
		if block[idx] == needle {
			result |= 1 << idx
		}
	}

	return result
}

// AlignedMask64 returns a bitmask over a 64-byte block with bits set only at
// positions congruent to phase modulo stride. stride must be a power of two
// in 1..64; phase is reduced modulo stride.
//
// The scan loop ANDs this with CandidateMask64 output to restrict candidates
// to aligned offsets. Because block bases are multiples of 64 and stride
// divides 64, the mask is the same for every block and can be computed once.
func AlignedMask64(stride, phase int) uint64 {
	if stride <= 1 {
		return ^uint64(0)
	}
	phase &= stride - 1

	var result uint64
	for i := phase; i < 64; i += stride {
		result |= 1 << i
	}
	return result
}
