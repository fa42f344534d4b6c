package scanner

import (
	"math/rand"
	"testing"
)

func benchCorpus(size int) []byte {
	data := make([]byte, size)
	rng := rand.New(rand.NewSource(42))
	rng.Read(data)
	return data
}

// BenchmarkFindIntoRare: selective anchor, few candidates. This is the
// signature-scanning common case.
func BenchmarkFindIntoRare(b *testing.B) {
	data := benchCorpus(1 << 20)
	e := New(mustParse(b, "DE AD ?? ?? BE EF", 1))
	dst := make([]int, 128)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.FindInto(data, dst)
	}
}

// BenchmarkFindIntoDense: every data byte is a candidate for the anchor,
// stressing the verify path.
func BenchmarkFindIntoDense(b *testing.B) {
	data := make([]byte, 1<<20)
	for i := range data {
		data[i] = byte(i % 2)
	}
	e := New(mustParse(b, "01 00 01 00 01 00 01 01", 1))
	dst := make([]int, 128)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.FindInto(data, dst)
	}
}

// BenchmarkFindIntoScalar is the same workload as BenchmarkFindIntoRare on
// the forced scalar path, for kernel comparison.
func BenchmarkFindIntoScalar(b *testing.B) {
	data := benchCorpus(1 << 20)
	e := NewWithConfig(mustParse(b, "DE AD ?? ?? BE EF", 1), Config{ForceScalar: true})
	dst := make([]int, 128)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.FindInto(data, dst)
	}
}
