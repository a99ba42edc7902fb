// Package pathconstraint implements PathConstraint and EdgedPathConstraint:
// non-local constraints that keep a designated set of "path" tiles globally
// connected using articulation-point analysis over a graph derived from the
// propagator's topology, re-run to a fixed point after every propagation
// pass.
package pathconstraint

import (
	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/tileset"
	"github.com/katalvlaran/wfc/topology"
)

// PathConstraint keeps every cell forced to a tile in pathSet (or named as
// an explicit endpoint) connected through cells where a path tile is still
// possible: one derived-graph node per topology cell, edges connecting
// cells adjacent in any direction.
type PathConstraint struct {
	graph     *derivedGraph
	pathSet   *tileset.Set
	endpoints []int // cell indices; nil means auto-detect from decided path cells
}

// NewPathConstraint constructs a PathConstraint over topo's cell-adjacency
// graph. endpoints, if non-nil, fixes the set of cells that must end up
// mutually connected through path tiles; if nil, relevance is inferred at
// each Check from cells already decided to a path tile. Returns
// ErrEmptyPathSet if pathSet has no patterns.
func NewPathConstraint(topo *topology.Topology, pathSet *tileset.Set, endpoints []int) (*PathConstraint, error) {
	if pathSet == nil || len(pathSet.Patterns()) == 0 {
		return nil, ErrEmptyPathSet
	}
	return &PathConstraint{
		graph:     buildCellGraph(topo),
		pathSet:   pathSet,
		endpoints: endpoints,
	}, nil
}

func (c *PathConstraint) walkableAt(h constraint.Handle, cell int) bool {
	for _, p := range c.pathSet.Patterns() {
		if h.IsPossible(cell, p) {
			return true
		}
	}
	return false
}

func (c *PathConstraint) relevantSet(h constraint.Handle) []bool {
	relevant := make([]bool, h.CellCount())
	if c.endpoints != nil {
		for _, e := range c.endpoints {
			relevant[e] = true
		}
		return relevant
	}
	for cell := 0; cell < h.CellCount(); cell++ {
		if h.PatternCountAt(cell) != 1 {
			continue
		}
		if pat, ok := decidedPattern(h, cell); ok && c.pathSet.Contains(pat) {
			relevant[cell] = true
		}
	}
	return relevant
}

func decidedPattern(h constraint.Handle, cell int) (model.PatternID, bool) {
	for p := 0; p < h.Model().PatternCount(); p++ {
		if h.IsPossible(cell, model.PatternID(p)) {
			return model.PatternID(p), true
		}
	}
	return 0, false
}

// Init runs one Check pass immediately, before the first observation.
func (c *PathConstraint) Init(h constraint.Handle) constraint.Resolution { return c.Check(h) }

// Check implements constraint.Constraint.
func (c *PathConstraint) Check(h constraint.Handle) constraint.Resolution {
	walkable := make([]bool, h.CellCount())
	for cell := range walkable {
		walkable[cell] = c.walkableAt(h, cell)
	}
	relevant := c.relevantSet(h)

	critical, connected := articulationWalk(c.graph, walkable, relevant)
	if !connected {
		return constraint.Contradiction
	}
	for _, cell := range critical {
		if err := h.Select(cell, c.pathSet); err != nil {
			return constraint.Contradiction
		}
	}
	return constraint.Undecided
}
