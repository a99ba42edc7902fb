package propagator

import "github.com/katalvlaran/wfc/constraint"

// Options configures a WavePropagator at construction time.
type Options struct {
	// BacktrackDepth bounds how many nested observations may be undone on
	// contradiction: -1 means unbounded, 0 disables backtracking entirely
	// (a contradiction terminates the run), a positive N keeps only the N
	// most recent observations undoable.
	BacktrackDepth int
	// Constraints are checked, in this order, after every propagation fixed
	// point. Order matters: an earlier constraint's Select/Ban narrows what
	// a later one in the same pass observes.
	Constraints []constraint.Constraint
	// Seed drives both weighted-random pattern selection and the per-cell
	// entropy tie-break noise. Identical Seed + model + topology + options
	// reproduce identical Run output (SPEC_FULL.md §8, Determinism).
	Seed uint64
}

func (o Options) validate() error {
	if o.BacktrackDepth < -1 {
		return ErrInvalidBacktrackDepth
	}
	return nil
}
