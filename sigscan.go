// Package sigscan provides high-performance wildcard byte-signature scanning.
//
// A signature is a textual byte pattern: whitespace-separated units that are
// either two hex digits (a required byte) or a wildcard marker ("?", "??" or
// ".") matching any byte. Signatures compile once into a fixed-capacity,
// allocation-free form and can then be scanned against any number of byte
// buffers, reporting every offset where the pattern occurs.
//
// sigscan is built for signature-based scanning of binary data (locating
// known byte sequences in executable images or memory dumps), where millions
// of candidate offsets are tested per call:
//   - SWAR kernels (8-64 bytes per operation) for candidate generation
//   - Rare-byte anchor selection to keep candidate counts low
//   - Bounded "write into caller storage, return total" search, so hot paths
//     never allocate
//
// Basic usage:
//
//	// Compile a signature (alignment 1 = match at any offset)
//	sig, err := sigscan.Compile("DE ?? BE", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find all occurrences
//	offsets := sig.FindAll(data)
//
//	// Or scan without allocating, into caller-owned storage
//	buf := make([]int, 32)
//	total := sig.FindInto(data, buf)
//	if total > len(buf) {
//	    // truncated: buf holds the 32 smallest offsets, total is exact
//	}
//
// Advanced usage:
//
//	cfg := sigscan.DefaultConfig()
//	cfg.AlignedOffsetsOnly = true // only report alignment-multiple offsets
//	sig, err := sigscan.CompileWithConfig("48 8B ?? ??", 8, cfg)
//
// For scanning many signatures in one pass, see the sigset subpackage.
package sigscan

import (
	"github.com/coregx/sigscan/pattern"
	"github.com/coregx/sigscan/scanner"
)

// Signature represents a compiled byte signature bound to a scan engine.
//
// A Signature is immutable after compilation and safe to use concurrently
// from multiple goroutines.
//
// Example:
//
//	sig := sigscan.MustCompile("55 48 89 E5", 1)
//	if sig.Match(image) {
//	    println("prologue found")
//	}
type Signature struct {
	pat    *pattern.Pattern
	engine *scanner.Engine
}

// Config is the scan engine configuration. See scanner.Config for fields.
type Config = scanner.Config

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return scanner.DefaultConfig()
}

// Compile compiles a signature text with the given alignment requirement.
//
// alignment must be a power of two between 1 and 64. It is validated at
// compile time and, by default, used only as an internal layout hint; see
// Config.AlignedOffsetsOnly for the restrictive interpretation.
//
// Returns a *pattern.ParseError wrapping pattern.ErrInvalidAlignment,
// pattern.ErrMalformedToken or pattern.ErrPatternTooLong on invalid input.
//
// Example:
//
//	sig, err := sigscan.Compile("E8 ?? ?? ?? ?? 85 C0", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(text string, alignment int) (*Signature, error) {
	return CompileWithConfig(text, alignment, DefaultConfig())
}

// MustCompile compiles a signature and panics if it fails.
//
// This is useful for signatures known to be valid at compile time.
//
// Example:
//
//	var prologue = sigscan.MustCompile("55 48 89 E5", 1)
func MustCompile(text string, alignment int) *Signature {
	sig, err := Compile(text, alignment)
	if err != nil {
		panic("sigscan: Compile(`" + text + "`): " + err.Error())
	}
	return sig
}

// CompileWithConfig compiles a signature with a custom engine configuration.
//
// Example:
//
//	cfg := sigscan.DefaultConfig()
//	cfg.AlignedOffsetsOnly = true
//	sig, err := sigscan.CompileWithConfig("00 00 00 00 48", 4, cfg)
func CompileWithConfig(text string, alignment int, cfg Config) (*Signature, error) {
	p, err := pattern.Parse(text, alignment)
	if err != nil {
		return nil, err
	}
	return &Signature{
		pat:    p,
		engine: scanner.NewWithConfig(p, cfg),
	}, nil
}

// Find returns the offset of the first match in data, or -1 if none.
func (s *Signature) Find(data []byte) int {
	return s.engine.Find(data)
}

// FindInto writes up to len(dst) ascending match offsets into dst and
// returns the true total number of matches, which may exceed len(dst).
// This is the allocation-free core search; dst may be nil to count only.
func (s *Signature) FindInto(data []byte, dst []int) int {
	return s.engine.FindInto(data, dst)
}

// FindAll returns all match offsets in ascending order.
func (s *Signature) FindAll(data []byte) []int {
	return s.engine.FindAll(data)
}

// Count returns the total number of matches in data.
func (s *Signature) Count(data []byte) int {
	return s.engine.Count(data)
}

// Match reports whether data contains at least one match.
func (s *Signature) Match(data []byte) bool {
	return s.engine.Match(data)
}

// Len returns the number of tokens in the signature.
func (s *Signature) Len() int {
	return s.pat.Len()
}

// Alignment returns the signature's validated alignment requirement.
func (s *Signature) Alignment() int {
	return s.pat.Alignment()
}

// String returns the original signature text.
func (s *Signature) String() string {
	return s.pat.String()
}
