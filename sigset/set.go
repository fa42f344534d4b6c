// Package sigset scans one data buffer for many signatures at once.
//
// Each signature contributes its longest contiguous run of required bytes to
// a shared Aho-Corasick automaton. One overlapping automaton pass over the
// data yields every run occurrence; each occurrence is verified against the
// signature that owns the run. Signatures with no usable run (all wildcards,
// or runs shorter than two bytes) are scanned individually and merged into
// the result.
//
// Example:
//
//	b := sigset.NewBuilder()
//	b.Add("prologue", "55 48 89 E5", 1)
//	b.Add("magic", "DE ?? BE", 1)
//	set, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range set.Scan(image) {
//	    fmt.Printf("%s at %#x\n", set.Name(m.Index), m.Offset)
//	}
package sigset

import (
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/sigscan/pattern"
	"github.com/coregx/sigscan/scanner"
)

// minRunLen is the shortest required-byte run worth feeding to the
// automaton; single bytes are too unselective and fall back to a direct
// engine scan.
const minRunLen = 2

// Match is one signature occurrence: the index of the signature (in Add
// order) and the byte offset of the match in the scanned data.
type Match struct {
	Index  int
	Offset int
}

type signature struct {
	name   string
	pat    *pattern.Pattern
	engine *scanner.Engine

	// runOff/run locate the signature's automaton literal within the
	// pattern; run is nil for fallback signatures.
	runOff int
	run    []byte
}

// Builder accumulates signatures for a Set.
type Builder struct {
	sigs []signature
	cfg  scanner.Config
}

// NewBuilder returns an empty Builder using the default engine
// configuration.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(scanner.DefaultConfig())
}

// NewBuilderWithConfig returns an empty Builder whose signatures will be
// scanned with the given engine configuration.
func NewBuilderWithConfig(cfg scanner.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Add compiles a signature and appends it to the set under construction.
// The signature's index in scan results is its Add order. Returns a
// *pattern.ParseError if text or alignment is invalid.
func (b *Builder) Add(name, text string, alignment int) error {
	p, err := pattern.Parse(text, alignment)
	if err != nil {
		return err
	}
	sig := signature{
		name:   name,
		pat:    p,
		engine: scanner.NewWithConfig(p, b.cfg),
	}
	if off, run := p.LongestRun(); len(run) >= minRunLen {
		sig.runOff = off
		sig.run = run
	}
	b.sigs = append(b.sigs, sig)
	return nil
}

// Len returns the number of signatures added so far.
func (b *Builder) Len() int {
	return len(b.sigs)
}

// Build constructs the Set. If any signature contributed a literal run, the
// shared automaton is built here; building an empty set is valid and yields
// a Set whose Scan always returns nil.
func (b *Builder) Build() (*Set, error) {
	s := &Set{sigs: b.sigs, cfg: b.cfg}

	withRun := 0
	for i := range s.sigs {
		if s.sigs[i].run != nil {
			withRun++
		} else {
			s.fallback = append(s.fallback, i)
		}
	}
	if withRun == 0 {
		return s, nil
	}

	builder := ahocorasick.NewBuilder()
	for i := range s.sigs {
		if s.sigs[i].run != nil {
			builder.AddPattern(s.sigs[i].run)
			s.automated = append(s.automated, i)
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	s.auto = auto
	return s, nil
}

// Set is an immutable collection of compiled signatures sharing one
// candidate automaton. Safe for concurrent use.
type Set struct {
	sigs      []signature
	cfg       scanner.Config
	auto      *ahocorasick.Automaton
	automated []int // indices of signatures with a run in the automaton
	fallback  []int // indices scanned directly
}

// Len returns the number of signatures in the set.
func (s *Set) Len() int {
	return len(s.sigs)
}

// Name returns the name of signature i.
func (s *Set) Name(i int) string {
	return s.sigs[i].name
}

// Signature returns the compiled pattern of signature i.
func (s *Set) Signature(i int) *pattern.Pattern {
	return s.sigs[i].pat
}

// Scan returns every occurrence of every signature in data, sorted by
// offset and then by signature index. Overlap semantics match the
// single-signature engine: all occurrences are reported.
func (s *Set) Scan(data []byte) []Match {
	var out []Match

	if s.auto != nil {
		out = s.scanAutomaton(data, out)
	}
	for _, idx := range s.fallback {
		for _, off := range s.sigs[idx].engine.FindAll(data) {
			out = append(out, Match{Index: idx, Offset: off})
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Offset != out[b].Offset {
			return out[a].Offset < out[b].Offset
		}
		return out[a].Index < out[b].Index
	})
	return out
}

// scanAutomaton enumerates every run occurrence with the overlapping
// automaton search and verifies each against its owning signature. The
// non-overlapping searches would be wrong here: they keep one match per
// region, so a run overlapping another signature's run could go unreported.
// PatternID is the run's AddPattern order, which is the order of
// s.automated.
func (s *Set) scanAutomaton(data []byte, out []Match) []Match {
	for _, m := range s.auto.FindAllOverlapping(data) {
		idx := s.automated[m.PatternID]
		sig := &s.sigs[idx]
		// A run occurrence closer to the start than its token offset cannot
		// begin a signature match; MatchAt rejects the negative offset.
		i := m.Start - sig.runOff
		if s.cfg.AlignedOffsetsOnly && (i < 0 || i%sig.pat.Alignment() != 0) {
			continue
		}
		if sig.pat.MatchAt(data, i) {
			out = append(out, Match{Index: idx, Offset: i})
		}
	}
	return out
}
