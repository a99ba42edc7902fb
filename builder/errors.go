package builder

import "errors"

// Sentinel errors for AdjacencyBuilder operations.
var (
	// ErrEmptyTileSet indicates AddAdjacency was called with an empty
	// source or destination tile list.
	ErrEmptyTileSet = errors.New("builder: source and destination tile sets must be non-empty")
	// ErrUnknownDirection indicates the (dx,dy,dz) offset passed to
	// AddAdjacency does not match any direction in the builder's DirectionSet.
	ErrUnknownDirection = errors.New("builder: offset does not match any direction in the direction set")
	// ErrAlreadyFinalized indicates a mutating call (AddAdjacency, AddSample,
	// SetFrequency, MultiplyFrequency, SetUniformFrequency) or a second call
	// to Build was made after Build already succeeded once.
	ErrAlreadyFinalized = errors.New("builder: model already built; builder is now read-only")
	// ErrEmptySample indicates AddSample was called with an empty sample grid.
	ErrEmptySample = errors.New("builder: sample grid must have at least one cell")
	// ErrNonRectangularSample indicates a sample grid whose rows/planes have
	// inconsistent lengths.
	ErrNonRectangularSample = errors.New("builder: sample grid rows must all have the same length")
)
