package wave

import "errors"

// Sentinel errors for Wave operations.
var (
	// ErrCellOutOfRange indicates a cell index outside [0, CellCount()).
	ErrCellOutOfRange = errors.New("wave: cell index out of range")
	// ErrPatternOutOfRange indicates a pattern index outside [0, PatternCount()).
	ErrPatternOutOfRange = errors.New("wave: pattern index out of range")
	// ErrAlreadyEliminated indicates Eliminate was called for a (cell,pattern)
	// pair that was already impossible. Callers (propagator) are expected to
	// check IsPossible before enqueueing an elimination; seeing this error
	// signals a bug in the caller's bookkeeping, not a normal outcome.
	ErrAlreadyEliminated = errors.New("wave: pattern already eliminated at cell")
)
