//go:build !amd64

package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// On non-AMD64 platforms this always uses the 8-byte SWAR kernel, which
// processes 8 bytes at a time using uint64 bitwise operations. Not as fast
// as a hand-tuned vector kernel, but significantly better than a byte loop.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}
