//go:build amd64

// Package simd provides SWAR-accelerated byte search primitives for the
// signature scanner. SWAR (SIMD Within A Register) processes 8 bytes per
// uint64 operation, and the package selects between a short-loop kernel and a
// wide unrolled kernel based on available CPU features.
//
// The primary use cases are finding anchor-byte candidates in large data
// buffers (Memchr) and producing per-block candidate bitmasks for the scan
// loop (CandidateMask64).
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
// These are used to dispatch to the fastest available kernel.
var (
	// hasAVX2 indicates an AVX2-class core. The wide kernel keeps four SWAR
	// accumulators live per iteration, which pays off on cores with the load
	// bandwidth and register pressure headroom that AVX2-era hardware has.
	hasAVX2 = cpu.X86.HasAVX2
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte but is tuned for the scan
// engine's access pattern: called repeatedly with advancing start positions
// over the same buffer. On AVX2-class hardware large inputs take the wide
// unrolled kernel (32 bytes per iteration); otherwise the 8-byte SWAR kernel
// is used.
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	// The wide kernel's setup cost is only amortized on larger inputs.
	if hasAVX2 && len(haystack) >= 64 {
		return memchrWide(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}
