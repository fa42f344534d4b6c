package scanner

import (
	"github.com/coregx/sigscan/pattern"
	"github.com/coregx/sigscan/simd"
)

// Engine performs searches for one compiled pattern.
//
// An Engine is built once per pattern and holds only precomputed immutable
// state (strategy, anchor position, candidate masks), so it is safe for
// concurrent use from multiple goroutines without synchronization.
type Engine struct {
	pat   *pattern.Pattern
	cfg   Config
	strat strategy

	// anchorOff/anchorByte locate the rarest required byte of the pattern;
	// candidates are positions of anchorByte in the data, shifted back by
	// anchorOff. Unset for strategyTrivial.
	anchorOff  int
	anchorByte byte

	// stride is 1 unless AlignedOffsetsOnly, in which case it equals the
	// pattern's alignment. alignedMask filters block candidate bits down to
	// stride-aligned offsets; all-ones when stride is 1.
	stride      int
	alignedMask uint64
}

// New builds an engine for p with the default configuration.
func New(p *pattern.Pattern) *Engine {
	return NewWithConfig(p, DefaultConfig())
}

// NewWithConfig builds an engine for p with the given configuration.
func NewWithConfig(p *pattern.Pattern, cfg Config) *Engine {
	e := &Engine{
		pat:         p,
		cfg:         cfg,
		strat:       selectStrategy(p, cfg),
		stride:      1,
		alignedMask: ^uint64(0),
	}
	if cfg.AlignedOffsetsOnly {
		e.stride = p.Alignment()
	}
	if off, val, ok := p.Anchor(); ok {
		e.anchorOff = off
		e.anchorByte = val
		// Block bases are multiples of 64 and stride divides 64, so the
		// aligned candidate mask is the same for every block.
		e.alignedMask = simd.AlignedMask64(e.stride, off%e.stride)
	}
	return e
}

// Pattern returns the compiled pattern this engine searches for.
func (e *Engine) Pattern() *pattern.Pattern {
	return e.pat
}
