// Package constraint defines the plug-in protocol the propagator invokes
// after every propagation fixed-point, plus CountConstraint, the simplest
// concrete constraint: a cardinality bound over a tile subset.
//
// A Constraint receives a Handle — a narrow view of the propagator that
// lets it inspect possibility state and issue Select/Ban calls — rather
// than the propagator's own concrete type, so that package propagator can
// implement Handle without importing this package, breaking the import
// cycle a "constraints call back into the propagator that calls them"
// design would otherwise create.
package constraint

import (
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/tileset"
	"github.com/katalvlaran/wfc/topology"
)

// Resolution is the outcome a Constraint's Init or Check reports.
type Resolution int

const (
	// Undecided means the constraint has not detected either a final
	// decision or an impossibility; the propagator continues as normal.
	Undecided Resolution = iota
	// Decided means the constraint independently confirms nothing further
	// prevents a full decision (rare; most constraints just return
	// Undecided until every cell is decided some other way).
	Decided
	// Contradiction means the constraint has detected that the current
	// possibility state can never lead to a valid solution. The propagator
	// treats this identically to a propagation contradiction: it backtracks
	// if enabled, or terminates the run as Contradiction otherwise.
	Contradiction
)

// Handle is the view of the propagator a Constraint is allowed to use. It
// deliberately excludes observation/backtracking control — constraints
// narrow possibilities, they never choose or undo an observation directly.
type Handle interface {
	// Model returns the compiled PatternModel the propagator was built from.
	Model() *model.PatternModel
	// Topology returns the topology the propagator was built from.
	Topology() *topology.Topology
	// CellCount returns the number of cells in the wave.
	CellCount() int
	// IsPossible reports whether pattern p is still a candidate at cell.
	IsPossible(cell int, p model.PatternID) bool
	// PatternCountAt returns the number of still-possible patterns at cell.
	PatternCountAt(cell int) int
	// Select eliminates every pattern at cell that is not in allowed.
	// Returns an error only on propagation contradiction detected while
	// applying the elimination; the propagator's control loop also sees the
	// emptied cell on its own, whatever the constraint then reports.
	Select(cell int, allowed *tileset.Set) error
	// Ban eliminates every pattern at cell that is in banned.
	Ban(cell int, banned *tileset.Set) error
}

// Constraint is the plug-in protocol the propagator invokes at
// well-defined points in the observation loop.
type Constraint interface {
	// Init is called once, before the first observation. It may perform
	// initial Select/Ban calls (e.g. forcing declared endpoints to a
	// path-tile set) and reports Contradiction if the model is already
	// unsatisfiable from the constraint's point of view.
	Init(h Handle) Resolution
	// Check is called after every propagation fixed-point, in registration
	// order, repeating until a stable pass (no constraint changes anything
	// and none reports Contradiction).
	Check(h Handle) Resolution
}
