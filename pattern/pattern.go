// Package pattern compiles textual wildcarded byte signatures into a
// fixed-capacity form suitable for allocation-free scanning.
//
// A signature is a whitespace-separated sequence of units. Each unit is
// either two hex digits denoting a required byte ("DE", "ad") or a wildcard
// marker matching any byte (a unit starting with '?' or '.', so "?", "??"
// and "." all work). The compiled Pattern is a flat value type: a bounded
// token array plus precomputed word-level views for SWAR comparison, with no
// heap-allocated state behind it.
//
// Example:
//
//	p, err := pattern.Parse("DE ?? BE", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.MatchAt([]byte{0xDE, 0x00, 0xBE}, 0) // true
//
// Patterns are immutable after Parse and safe for concurrent readers.
package pattern

import (
	"encoding/binary"

	"github.com/coregx/sigscan/internal/conv"
	"github.com/coregx/sigscan/simd"
)

const (
	// MaxTokens is the maximum number of tokens a pattern can hold. It equals
	// the scan engine's block width, so a whole pattern always fits in one
	// candidate block. Compilation fails with ErrPatternTooLong beyond it;
	// raising the limit is a rebuild, not a runtime option.
	MaxTokens = 64

	// MaxAlignment is the largest accepted alignment value.
	MaxAlignment = 64

	wordCount = MaxTokens / 8
)

// Pattern is the compiled form of a signature.
//
// The layout is fixed-size and internal: values holds the required byte at
// each token position (zero for wildcards), masks holds 0xFF for required
// positions and 0x00 for wildcards, and valueWords/maskWords are the same
// arrays viewed as little-endian uint64 words so a verifier can test
// (data ^ values) & masks == 0 eight tokens at a time. Positions past the
// token count have zero masks, which makes over-length word compares benign.
//
// Callers treat Pattern as opaque and interact through accessors only.
type Pattern struct {
	values     [MaxTokens]byte
	masks      [MaxTokens]byte
	valueWords [wordCount]uint64
	maskWords  [wordCount]uint64
	length     uint8
	alignment  uint8
	anchor     int16 // token index of the rarest required byte, -1 if none
	text       string
}

// Parse compiles a signature text with the given alignment requirement.
//
// alignment must be a power of two in 1..MaxAlignment; anything else fails
// with ErrInvalidAlignment. Empty or whitespace-only text compiles to the
// empty pattern, and all-wildcard patterns are valid (both match everywhere;
// the scan engine handles them without an anchor). A unit starting with '?'
// or '.' is a wildcard regardless of what follows the marker; the trailing
// characters are ignored.
//
// Errors are returned as *ParseError wrapping one of the sentinel errors.
func Parse(text string, alignment int) (*Pattern, error) {
	if alignment < 1 || alignment > MaxAlignment || alignment&(alignment-1) != 0 {
		return nil, &ParseError{Text: text, Err: ErrInvalidAlignment}
	}

	p := &Pattern{
		alignment: conv.IntToUint8(alignment),
		anchor:    -1,
		text:      text,
	}

	count := 0
	for i := 0; i < len(text); {
		if isSpace(text[i]) {
			i++
			continue
		}
		start := i
		for i < len(text) && !isSpace(text[i]) {
			i++
		}
		unit := text[start:i]

		if count == MaxTokens {
			return nil, &ParseError{Text: text, Unit: unit, Pos: start, Err: ErrPatternTooLong}
		}

		if unit[0] == '?' || unit[0] == '.' {
			// Wildcard token: mask stays zero. Only the first character is
			// inspected, so "?", "??" and "." are all accepted.
			count++
			continue
		}

		if len(unit) != 2 {
			return nil, &ParseError{Text: text, Unit: unit, Pos: start, Err: ErrMalformedToken}
		}
		hi, ok1 := hexVal(unit[0])
		lo, ok2 := hexVal(unit[1])
		if !ok1 || !ok2 {
			return nil, &ParseError{Text: text, Unit: unit, Pos: start, Err: ErrMalformedToken}
		}
		p.values[count] = hi<<4 | lo
		p.masks[count] = 0xFF
		count++
	}

	p.length = conv.IntToUint8(count)

	for w := 0; w < wordCount; w++ {
		p.valueWords[w] = binary.LittleEndian.Uint64(p.values[w*8:])
		p.maskWords[w] = binary.LittleEndian.Uint64(p.masks[w*8:])
	}

	// Pick the rarest required byte as the search anchor. Ties go to the
	// earliest position, which keeps candidate offsets closer to match
	// offsets.
	best := -1
	bestRank := 0
	for k := 0; k < count; k++ {
		if p.masks[k] == 0 {
			continue
		}
		rank := int(simd.ByteFrequencies[p.values[k]])
		if best == -1 || rank < bestRank {
			best = k
			bestRank = rank
		}
	}
	p.anchor = int16(best)

	return p, nil
}

// isSpace reports whether c is ASCII whitespace. Unit separation is
// ASCII-only; any other codepoint is part of a unit and fails validation.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Len returns the number of tokens in the pattern.
func (p *Pattern) Len() int {
	return conv.Uint8ToInt(p.length)
}

// Alignment returns the validated alignment requirement.
func (p *Pattern) Alignment() int {
	return conv.Uint8ToInt(p.alignment)
}

// String returns the original pattern text.
func (p *Pattern) String() string {
	return p.text
}

// IsEmpty reports whether the pattern has zero tokens.
func (p *Pattern) IsEmpty() bool {
	return p.length == 0
}

// Token returns the token at position i: its required value and whether it
// is a wildcard (value is zero for wildcards). Panics if i is out of range.
func (p *Pattern) Token(i int) (value byte, wildcard bool) {
	if i < 0 || i >= p.Len() {
		panic("pattern: token index out of range")
	}
	return p.values[i], p.masks[i] == 0
}

// Anchor returns the position and value of the pattern's anchor token, the
// required byte expected to be rarest in scanned data. ok is false when the
// pattern has no required byte (empty or all wildcards).
func (p *Pattern) Anchor() (offset int, value byte, ok bool) {
	if p.anchor < 0 {
		return 0, 0, false
	}
	return int(p.anchor), p.values[p.anchor], true
}

// LongestRun returns the longest contiguous run of required bytes and its
// token offset. Returns a nil run when the pattern has no required bytes.
// The returned slice is a copy; mutating it does not affect the pattern.
func (p *Pattern) LongestRun() (offset int, run []byte) {
	n := p.Len()
	bestStart, bestLen := 0, 0
	for i := 0; i < n; {
		if p.masks[i] == 0 {
			i++
			continue
		}
		j := i
		for j < n && p.masks[j] != 0 {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}
	if bestLen == 0 {
		return 0, nil
	}
	run = make([]byte, bestLen)
	copy(run, p.values[bestStart:bestStart+bestLen])
	return bestStart, run
}

// MatchAt reports whether the pattern matches data at the given offset.
// Wildcard tokens match any byte. Out-of-range offsets and windows shorter
// than the pattern report false; the empty pattern matches at every offset
// from 0 through len(data) inclusive.
//
// The comparison runs eight tokens per step using the precomputed word
// views; mask words are zero past the token count, so a full word compare
// near the end of the pattern needs no extra length mask. Only the final
// partial word falls back to a byte loop, and only when a full 8-byte load
// would run past the end of data.
func (p *Pattern) MatchAt(data []byte, offset int) bool {
	n := p.Len()
	if offset < 0 || len(data)-offset < n {
		return false
	}

	w := 0
	for ; w+8 <= n; w += 8 {
		d := binary.LittleEndian.Uint64(data[offset+w:])
		if (d^p.valueWords[w/8])&p.maskWords[w/8] != 0 {
			return false
		}
	}
	if w < n {
		if offset+w+8 <= len(data) {
			d := binary.LittleEndian.Uint64(data[offset+w:])
			if (d^p.valueWords[w/8])&p.maskWords[w/8] != 0 {
				return false
			}
		} else {
			for ; w < n; w++ {
				if p.masks[w] != 0 && data[offset+w] != p.values[w] {
					return false
				}
			}
		}
	}
	return true
}
