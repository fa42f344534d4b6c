// Package scanner implements the search engine for compiled byte signatures.
//
// The engine coordinates three search paths:
//   - Trivial: patterns with no required byte (empty or all wildcards) are
//     counted arithmetically without touching the data
//   - Block: anchor-byte candidate bitmasks over 64-byte blocks (SWAR),
//     verified with word-level masked comparison
//   - Scalar: straightforward per-offset verification, used as a forced
//     diagnostic path and as the differential baseline in tests
//
// The path is selected once when the engine is built, so per-search calls
// carry no dispatch cost. Searches never allocate: offsets are written into
// caller-provided storage and the true total is returned, which may exceed
// the storage capacity (callers detect truncation by comparing).
package scanner

// Config controls scan engine behavior.
//
// Example:
//
//	cfg := scanner.DefaultConfig()
//	cfg.AlignedOffsetsOnly = true
//	eng := scanner.NewWithConfig(p, cfg)
type Config struct {
	// AlignedOffsetsOnly restricts reported matches to offsets that are
	// multiples of the pattern's alignment, measured from the start of the
	// data buffer. When false (the default), alignment is a layout hint
	// only and matches are reported at every qualifying offset.
	AlignedOffsetsOnly bool

	// ForceScalar disables the block kernel and verifies every candidate
	// offset individually. Intended for diagnostics and differential
	// testing; the result is identical to the block path, only slower.
	ForceScalar bool
}

// DefaultConfig returns the default engine configuration: alignment treated
// as a hint, block kernel enabled.
func DefaultConfig() Config {
	return Config{}
}
