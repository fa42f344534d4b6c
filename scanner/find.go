package scanner

import (
	"math/bits"

	"github.com/coregx/sigscan/simd"
)

// FindInto scans data and writes match offsets into dst in ascending order,
// up to len(dst) entries. The return value is the true total number of
// matches in data, which may exceed len(dst); callers detect truncation by
// comparing the total against len(dst). dst may be nil to count only.
//
// Every offset i with 0 <= i <= len(data)-patternLen is eligible (all
// overlapping matches are reported); the empty pattern matches at every
// offset from 0 through len(data). FindInto performs no allocation and
// retains no reference to data or dst after returning.
func (e *Engine) FindInto(data []byte, dst []int) int {
	switch e.strat {
	case strategyTrivial:
		return e.findTrivialInto(data, dst)
	case strategyScalar:
		return e.findScalarInto(data, dst)
	default:
		return e.findBlockInto(data, dst)
	}
}

// Count returns the total number of matches in data without recording
// offsets.
func (e *Engine) Count(data []byte) int {
	return e.FindInto(data, nil)
}

// Find returns the offset of the first match in data, or -1 if there is
// none. Unlike FindInto it stops at the first match.
func (e *Engine) Find(data []byte) int {
	n := e.pat.Len()
	if len(data) < n {
		return -1
	}

	switch e.strat {
	case strategyTrivial:
		return 0

	case strategyScalar:
		last := len(data) - n
		for i := 0; i <= last; i += e.stride {
			if e.pat.MatchAt(data, i) {
				return i
			}
		}
		return -1

	default:
		// Hop between anchor-byte candidates; the anchor for a match at
		// offset i sits at i+anchorOff, so the search window for the anchor
		// is [anchorOff, last+anchorOff].
		last := len(data) - n
		limit := last + e.anchorOff + 1
		pos := e.anchorOff
		for pos < limit {
			k := simd.Memchr(data[pos:limit], e.anchorByte)
			if k < 0 {
				return -1
			}
			i := pos + k - e.anchorOff
			pos += k + 1
			if e.stride > 1 && i%e.stride != 0 {
				continue
			}
			if e.pat.MatchAt(data, i) {
				return i
			}
		}
		return -1
	}
}

// Match reports whether data contains at least one match.
func (e *Engine) Match(data []byte) bool {
	return e.Find(data) >= 0
}

// FindAll returns all match offsets in ascending order. It is the allocating
// convenience wrapper over FindInto: it sizes a result slice and retries
// once if the first pass was truncated.
func (e *Engine) FindAll(data []byte) []int {
	dst := make([]int, 16)
	for {
		total := e.FindInto(data, dst)
		if total <= len(dst) {
			return dst[:total]
		}
		dst = make([]int, total)
	}
}

// findTrivialInto handles patterns where every qualifying offset matches.
// Offsets form the arithmetic sequence 0, stride, 2*stride, ..., so both the
// total and the written prefix are computed directly.
func (e *Engine) findTrivialInto(data []byte, dst []int) int {
	n := e.pat.Len()
	if len(data) < n {
		return 0
	}
	last := len(data) - n
	total := last/e.stride + 1

	write := total
	if write > len(dst) {
		write = len(dst)
	}
	for k := 0; k < write; k++ {
		dst[k] = k * e.stride
	}
	return total
}

// findScalarInto verifies every candidate offset. Baseline path; results
// are identical to findBlockInto.
func (e *Engine) findScalarInto(data []byte, dst []int) int {
	n := e.pat.Len()
	if len(data) < n {
		return 0
	}
	last := len(data) - n

	total := 0
	for i := 0; i <= last; i += e.stride {
		if e.pat.MatchAt(data, i) {
			if total < len(dst) {
				dst[total] = i
			}
			total++
		}
	}
	return total
}

// findBlockInto is the hot path: for each 64-byte block it builds a bitmask
// of anchor-byte positions, filters it to aligned candidates, and consumes
// set bits in ascending order, verifying each candidate with the pattern's
// masked word comparison.
func (e *Engine) findBlockInto(data []byte, dst []int) int {
	n := e.pat.Len()
	if len(data) < n {
		return 0
	}
	last := len(data) - n

	total := 0
	// Anchor positions for valid matches span [anchorOff, last+anchorOff].
	for base := 0; base <= last+e.anchorOff; base += 64 {
		end := base + 64
		if end > len(data) {
			end = len(data)
		}
		m := simd.CandidateMask64(data[base:end], e.anchorByte) & e.alignedMask
		for m != 0 {
			tz := bits.TrailingZeros64(m)
			m &= m - 1
			i := base + tz - e.anchorOff
			if i < 0 {
				continue
			}
			if i > last {
				// Candidates are consumed in ascending position order, so
				// nothing beyond this point can match.
				return total
			}
			if e.pat.MatchAt(data, i) {
				if total < len(dst) {
					dst[total] = i
				}
				total++
			}
		}
	}
	return total
}
