package tile

import "github.com/katalvlaran/wfc/constraint"

// Options configures a TilePropagator at construction time; it is the
// tile-level mirror of propagator.Options, passed straight through.
type Options struct {
	BacktrackDepth int
	Constraints    []constraint.Constraint
	Seed           uint64
}
