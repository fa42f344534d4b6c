package pattern

import (
	"errors"
	"fmt"
)

// Common compilation errors
var (
	// ErrInvalidAlignment indicates the alignment is not a power of two
	// between 1 and MaxAlignment
	ErrInvalidAlignment = errors.New("alignment must be a power of two between 1 and 64")

	// ErrMalformedToken indicates a pattern unit that is neither two hex
	// digits nor a wildcard marker
	ErrMalformedToken = errors.New("malformed pattern token")

	// ErrPatternTooLong indicates the pattern exceeds MaxTokens units
	ErrPatternTooLong = errors.New("pattern exceeds maximum token count")
)

// ParseError wraps compilation errors with the offending input context
type ParseError struct {
	Text string // full pattern text
	Unit string // offending unit, if any
	Pos  int    // byte offset of Unit within Text
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("pattern compilation failed for %q: unit %q at offset %d: %v", e.Text, e.Unit, e.Pos, e.Err)
	}
	return fmt.Sprintf("pattern compilation failed for %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}
