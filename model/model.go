// Package model defines PatternModel, the compiled, read-only representation
// of per-pattern frequencies and directional compatibility that builder
// produces and propagator consumes.
package model

import "github.com/katalvlaran/wfc/direction"

// PatternID is a dense, non-negative index identifying one distinct tile
// pattern, assigned by builder.
type PatternID int

// PatternModel is the compiled adjacency model: one frequency and one
// sorted compatibility list per direction for every pattern. It is
// immutable after construction — builder.Build is the only producer.
//
// Symmetry invariant (enforced by builder, assumed by propagator):
// q is in Propagator[p][d] if and only if p is in Propagator[q][dirs.Inverse(d)].
type PatternModel struct {
	// Frequencies holds one non-negative weight per pattern. A weight of
	// zero means the pattern is forbidden everywhere.
	Frequencies []float64

	// Propagator[p][d] is the sorted list of patterns allowed at the
	// neighbor reached by direction d from a cell holding pattern p.
	Propagator [][][]PatternID

	dirs *direction.Set
}

// New wraps already-compiled frequencies/propagator tables. builder.Build is
// the usual caller; direct construction is exposed for callers (e.g. the
// propagator tests) that assemble the tables some other way.
func New(dirs *direction.Set, frequencies []float64, propagator [][][]PatternID) *PatternModel {
	return &PatternModel{Frequencies: frequencies, Propagator: propagator, dirs: dirs}
}

// PatternCount returns the number of distinct patterns in the model.
func (m *PatternModel) PatternCount() int { return len(m.Frequencies) }

// Directions returns the direction.Set this model's Propagator is indexed by.
func (m *PatternModel) Directions() *direction.Set { return m.dirs }

// Compatible reports whether pattern q may sit at the neighbor reached by
// direction d from a cell holding pattern p. It does a binary search of the
// sorted Propagator[p][d] list; callers in the hot propagation loop use
// compatibleCount tables instead (see package propagator) and never call
// this directly.
func (m *PatternModel) Compatible(p PatternID, d direction.Direction, q PatternID) bool {
	list := m.Propagator[p][d]
	lo, hi := 0, len(list)
	for lo < hi {
		mid := (lo + hi) / 2
		if list[mid] < q {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(list) && list[lo] == q
}
