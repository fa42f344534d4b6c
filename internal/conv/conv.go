// Package conv provides safe integer conversion helpers for the scan engine.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., a token count outside the engine's fixed limits).
package conv

import "math"

// IntToUint8 safely converts an int to uint8.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of uint8 range")
	}
	return uint8(n)
}

// Uint8ToInt converts a uint8 to int. Always safe; provided for symmetry at
// call sites that round-trip token counts through the compact compiled form.
//
//go:inline
func Uint8ToInt(n uint8) int {
	return int(n)
}
