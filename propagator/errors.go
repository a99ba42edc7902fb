package propagator

import "errors"

// Sentinel errors for propagator construction and operation.
var (
	// ErrDirectionSetMismatch indicates the model and topology passed to New
	// do not share the same direction.Set.
	ErrDirectionSetMismatch = errors.New("propagator: model and topology direction sets differ")
	// ErrEmptyModel indicates a PatternModel with zero patterns.
	ErrEmptyModel = errors.New("propagator: model has no patterns")
	// ErrInvalidBacktrackDepth indicates Options.BacktrackDepth < -1.
	ErrInvalidBacktrackDepth = errors.New("propagator: backtrack depth must be -1, 0, or positive")
	// ErrCellOutOfRange indicates a cell index outside [0, CellCount()).
	ErrCellOutOfRange = errors.New("propagator: cell out of range")
	// ErrContradiction is returned by Select/Ban when applying the
	// elimination collapses a cell to zero possible patterns.
	ErrContradiction = errors.New("propagator: contradiction")
)
