package topology

import "errors"

// Sentinel errors for topology construction and queries.
var (
	// ErrEmptyDims indicates a zero or negative Width, Height, or Depth.
	ErrEmptyDims = errors.New("topology: dimensions must all be >= 1")
	// ErrBadMaskLength indicates a mask slice whose length does not equal
	// Width*Height*Depth.
	ErrBadMaskLength = errors.New("topology: mask length must equal width*height*depth")
	// ErrIndexOutOfRange indicates a cell index outside [0, CellCount()).
	ErrIndexOutOfRange = errors.New("topology: cell index out of range")
	// ErrCoordOutOfRange indicates an (x,y,z) coordinate outside the grid.
	ErrCoordOutOfRange = errors.New("topology: coordinate out of range")
)
