package simd

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestMemchrBasic tests basic functionality and edge cases
func TestMemchrBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		// Empty and single byte cases
		{"empty_haystack", []byte{}, 0xAA, -1},
		{"single_match", []byte{0xAA}, 0xAA, 0},
		{"single_no_match", []byte{0xAA}, 0xBB, -1},

		// Position tests
		{"first_position", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0xDE, 0},
		{"middle_position", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0xBE, 2},
		{"last_position", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0xEF, 3},
		{"not_found", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0xCC, -1},

		// Multiple occurrences (should return first)
		{"multiple_returns_first", []byte{1, 2, 3, 2, 1}, 2, 1},

		// Special bytes
		{"null_byte_present", []byte{1, 0, 2, 3}, 0, 1},
		{"null_byte_absent", []byte{1, 2, 3, 4}, 0, -1},
		{"high_byte_0xff", []byte{1, 2, 255, 4}, 255, 2},
		{"all_same_find_first", []byte{5, 5, 5, 5}, 5, 0},

		// SWAR false-positive bait: 0x01 directly after the needle byte
		// exercises the borrow-propagation caveat of the detection formula
		{"borrow_bait", []byte{0x01, 0x00, 0x01, 0x00}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("Memchr(%x, %#02x) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}

			// Verify against stdlib
			stdGot := bytes.IndexByte(tt.haystack, tt.needle)
			if got != stdGot {
				t.Errorf("Memchr != stdlib: got %d, stdlib %d (haystack=%x, needle=%#02x)",
					got, stdGot, tt.haystack, tt.needle)
			}
		})
	}
}

// TestMemchrSizes sweeps input sizes across the kernel cutover points
// (8-byte words, the 32-byte unroll, the 64-byte wide-kernel threshold).
func TestMemchrSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 7, 8, 9, 15, 16, 31, 32, 33, 63, 64, 65, 127, 128, 500, 4096} {
		haystack := make([]byte, size)
		rng.Read(haystack)

		for _, needle := range []byte{0x00, 0x42, 0xFF, haystack[size/2], haystack[size-1]} {
			got := Memchr(haystack, needle)
			want := bytes.IndexByte(haystack, needle)
			if got != want {
				t.Errorf("size=%d needle=%#02x: Memchr = %d, want %d", size, needle, got, want)
			}
		}
	}
}

// TestMemchrKernels verifies the wide and generic kernels agree on every
// position of a buffer where the needle occurs repeatedly.
func TestMemchrKernels(t *testing.T) {
	haystack := make([]byte, 256)
	for i := range haystack {
		haystack[i] = byte(i % 5)
	}
	for start := 0; start < len(haystack); start++ {
		sub := haystack[start:]
		want := bytes.IndexByte(sub, 3)
		if got := memchrGeneric(sub, 3); got != want {
			t.Fatalf("memchrGeneric(haystack[%d:], 3) = %d, want %d", start, got, want)
		}
		if len(sub) >= 32 {
			if got := memchrWide(sub, 3); got != want {
				t.Fatalf("memchrWide(haystack[%d:], 3) = %d, want %d", start, got, want)
			}
		}
	}
}

func BenchmarkMemchr(b *testing.B) {
	haystack := make([]byte, 1<<20)
	haystack[len(haystack)-1] = 0xEE

	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Memchr(haystack, 0xEE) != len(haystack)-1 {
			b.Fatal("wrong position")
		}
	}
}
