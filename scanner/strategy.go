package scanner

import "github.com/coregx/sigscan/pattern"

// strategy identifies the search path an engine uses. Selected once at
// engine construction.
type strategy uint8

const (
	// strategyTrivial handles patterns with no required byte: every
	// qualifying offset matches, so results are computed arithmetically.
	strategyTrivial strategy = iota

	// strategyBlock generates anchor-byte candidates with the 64-byte SWAR
	// kernel and verifies them with masked word comparison.
	strategyBlock

	// strategyScalar verifies every candidate offset directly.
	strategyScalar
)

func (s strategy) String() string {
	switch s {
	case strategyTrivial:
		return "trivial"
	case strategyBlock:
		return "block"
	case strategyScalar:
		return "scalar"
	}
	return "unknown"
}

func selectStrategy(p *pattern.Pattern, cfg Config) strategy {
	if _, _, ok := p.Anchor(); !ok {
		return strategyTrivial
	}
	if cfg.ForceScalar {
		return strategyScalar
	}
	return strategyBlock
}
