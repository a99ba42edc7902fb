package pathconstraint

import (
	"errors"

	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/tileset"
	"github.com/katalvlaran/wfc/topology"
)

// ErrExitSetCount indicates exitSets does not have exactly one entry per
// direction in the topology's direction set.
var ErrExitSetCount = errors.New("pathconstraint: exitSets length must equal direction count")

// EdgedPathConstraint keeps path connectivity while additionally requiring
// that a path entering a cell from direction d is only admitted if that
// cell's tile lists d in its exit set. Its derived graph adds one half-edge
// node per direction per cell (SPEC_FULL.md §4.5); restricted to 2-D
// Cartesian topologies (see DESIGN.md, Open Question 1).
type EdgedPathConstraint struct {
	graph     *derivedGraph
	dirCount  int
	pathSet   *tileset.Set
	exitSets  []*tileset.Set // dir -> tiles admitting that exit
	endpoints []int          // cell indices; nil means auto-detect
}

// NewEdgedPathConstraint constructs an EdgedPathConstraint over topo, which
// must be a 2-D Cartesian grid (direction.Cartesian2D, Depth == 1).
// exitSets must have exactly topo.Directions().Count() entries, one tile
// set per direction.
func NewEdgedPathConstraint(topo *topology.Topology, pathSet *tileset.Set, exitSets []*tileset.Set, endpoints []int) (*EdgedPathConstraint, error) {
	if !topo.Directions().Is2DCartesian() || topo.Dims().Depth != 1 {
		return nil, ErrUnsupportedTopology
	}
	if pathSet == nil || len(pathSet.Patterns()) == 0 {
		return nil, ErrEmptyPathSet
	}
	if len(exitSets) != topo.Directions().Count() {
		return nil, ErrExitSetCount
	}
	return &EdgedPathConstraint{
		graph:     buildEdgedGraph(topo),
		dirCount:  topo.Directions().Count(),
		pathSet:   pathSet,
		exitSets:  exitSets,
		endpoints: endpoints,
	}, nil
}

func (c *EdgedPathConstraint) centralWalkable(h constraint.Handle, cell int) bool {
	for _, p := range c.pathSet.Patterns() {
		if h.IsPossible(cell, p) {
			return true
		}
	}
	return false
}

func (c *EdgedPathConstraint) halfEdgeWalkable(h constraint.Handle, cell, d int) bool {
	for _, p := range c.exitSets[d].Patterns() {
		if h.IsPossible(cell, p) {
			return true
		}
	}
	return false
}

func (c *EdgedPathConstraint) nodeCount(h constraint.Handle) int {
	return h.CellCount() * edgedNodesPerCell(c.dirCount)
}

func (c *EdgedPathConstraint) buildWalkableRelevant(h constraint.Handle) (walkable, relevant []bool) {
	n := c.nodeCount(h)
	walkable = make([]bool, n)
	relevant = make([]bool, n)

	for cell := 0; cell < h.CellCount(); cell++ {
		central := centralNode(cell, c.dirCount)
		walkable[central] = c.centralWalkable(h, cell)
		for d := 0; d < c.dirCount; d++ {
			walkable[halfEdgeNode(cell, c.dirCount, d)] = c.halfEdgeWalkable(h, cell, d)
		}
	}

	if c.endpoints != nil {
		for _, cell := range c.endpoints {
			relevant[centralNode(cell, c.dirCount)] = true
		}
		return walkable, relevant
	}
	for cell := 0; cell < h.CellCount(); cell++ {
		if h.PatternCountAt(cell) != 1 {
			continue
		}
		if pat, ok := decidedPattern(h, cell); ok && c.pathSet.Contains(pat) {
			relevant[centralNode(cell, c.dirCount)] = true
		}
	}
	return walkable, relevant
}

// Init runs one Check pass immediately, before the first observation.
func (c *EdgedPathConstraint) Init(h constraint.Handle) constraint.Resolution { return c.Check(h) }

// Check implements constraint.Constraint.
func (c *EdgedPathConstraint) Check(h constraint.Handle) constraint.Resolution {
	walkable, relevant := c.buildWalkableRelevant(h)

	critical, connected := articulationWalk(c.graph, walkable, relevant)
	if !connected {
		return constraint.Contradiction
	}
	for _, node := range critical {
		cell := node / edgedNodesPerCell(c.dirCount)
		offset := node % edgedNodesPerCell(c.dirCount)
		var err error
		if offset == 0 {
			err = h.Select(cell, c.pathSet)
		} else {
			err = h.Select(cell, c.exitSets[offset-1])
		}
		if err != nil {
			return constraint.Contradiction
		}
	}
	return constraint.Undecided
}
