package pathconstraint

import (
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/topology"
)

// edge is one endpoint of an undirected adjacency: to is the neighbor node,
// rev is the index of this edge's reverse counterpart inside adj[to]. rev
// lets the articulation-point walk skip exactly the parent edge instance it
// arrived through, rather than every edge to the parent node — necessary
// because a periodic topology can connect two nodes by more than one
// direction (e.g. a width-2 periodic axis), producing a true multigraph.
type edge struct {
	to  int
	rev int
}

// derivedGraph is the plain integer-indexed adjacency list PathConstraint
// and EdgedPathConstraint run articulation-point analysis over. It is
// built once, by the constraint's constructor, from the topology passed
// there; nothing about it
// changes across Check calls (only the walkable/relevant node sets do), so
// it is never mutated after construction.
type derivedGraph struct {
	nodeCount int
	adj       [][]edge
}

func newDerivedGraph(nodeCount int) *derivedGraph {
	return &derivedGraph{nodeCount: nodeCount, adj: make([][]edge, nodeCount)}
}

func (g *derivedGraph) addEdge(u, v int) {
	g.adj[u] = append(g.adj[u], edge{to: v, rev: len(g.adj[v])})
	g.adj[v] = append(g.adj[v], edge{to: u, rev: len(g.adj[u]) - 1})
}

// buildCellGraph implements PathConstraint's derived graph: one node per
// topology cell, one edge per cell/neighbor adjacency in any direction.
func buildCellGraph(topo *topology.Topology) *derivedGraph {
	cellCount := topo.CellCount()
	dirCount := topo.Directions().Count()
	g := newDerivedGraph(cellCount)

	for c := 0; c < cellCount; c++ {
		for d := 0; d < dirCount; d++ {
			n, ok := topo.TryMove(c, direction.Direction(d))
			if !ok || n == c || n <= c {
				continue
			}
			g.addEdge(c, n)
		}
	}
	return g
}

// edgedNodesPerCell is D+1: one central node plus one half-edge node per
// direction, per SPEC_FULL.md §4.5.
func edgedNodesPerCell(dirCount int) int { return dirCount + 1 }

func centralNode(cell, dirCount int) int { return cell * edgedNodesPerCell(dirCount) }

func halfEdgeNode(cell, dirCount, d int) int { return cell*edgedNodesPerCell(dirCount) + 1 + d }

// buildEdgedGraph implements EdgedPathConstraint's derived graph: per cell,
// a central node connected to one half-edge node per direction, and each
// half-edge node cross-connected to the opposing half-edge node at its
// neighbor.
func buildEdgedGraph(topo *topology.Topology) *derivedGraph {
	cellCount := topo.CellCount()
	dirCount := topo.Directions().Count()
	g := newDerivedGraph(cellCount * edgedNodesPerCell(dirCount))

	for c := 0; c < cellCount; c++ {
		central := centralNode(c, dirCount)
		for d := 0; d < dirCount; d++ {
			g.addEdge(central, halfEdgeNode(c, dirCount, d))
		}
	}
	for c := 0; c < cellCount; c++ {
		for d := 0; d < dirCount; d++ {
			n, ok := topo.TryMove(c, direction.Direction(d))
			if !ok {
				continue
			}
			invD, err := topo.Directions().Inverse(direction.Direction(d))
			if err != nil {
				continue
			}
			a := halfEdgeNode(c, dirCount, d)
			b := halfEdgeNode(n, dirCount, int(invD))
			if a < b {
				g.addEdge(a, b)
			}
		}
	}
	return g
}
