package pathconstraint

import "errors"

// Sentinel errors for path constraint construction and checking.
var (
	// ErrUnsupportedTopology indicates a topology whose direction set is not
	// exactly the 4-connected 2-D Cartesian set (direction.Cartesian2D)
	// with Depth == 1. Only EdgedPathConstraint restricts itself to 2-D
	// grids (NewPathConstraint accepts any topology):
	// the derived-graph and exit-set model in SPEC_FULL.md §4.5 is defined
	// in terms of planar half-edges, and generalizing it to 3-D or
	// non-Cartesian direction sets is left as an open question rather than
	// guessed at (see DESIGN.md, Open Question 1).
	ErrUnsupportedTopology = errors.New("pathconstraint: topology must be a 2-D Cartesian grid")
	// ErrEmptyPathSet indicates a nil or empty path tile set.
	ErrEmptyPathSet = errors.New("pathconstraint: path tile set is empty")
)
