package pathconstraint

// childInfo records, for one DFS-tree child of a node, the child's low-link
// value and how many relevant nodes its subtree contains — the two facts
// needed to decide whether removing the parent actually separates relevant
// nodes from each other, as opposed to merely detaching an irrelevant
// walkable fringe.
type childInfo struct {
	low      int
	relevant int
}

// articulationWalk runs a modified Tarjan low-link DFS over the subgraph of
// g induced by walkable nodes, starting from an arbitrary relevant node. It
// reports (a) whether every relevant node was reached from that start node
// — false means the walkable set has already split the relevant nodes into
// unreachable pieces, an immediate contradiction — and (b), if connected,
// every node whose removal would disconnect at least two relevant nodes
// from each other (as opposed to a general articulation point, which can
// split off a component containing no relevant node at all and therefore
// doesn't matter here).
func articulationWalk(g *derivedGraph, walkable, relevant []bool) (critical []int, allRelevantConnected bool) {
	totalRelevant := 0
	start := -1
	for n := 0; n < g.nodeCount; n++ {
		if !relevant[n] {
			continue
		}
		if !walkable[n] {
			return nil, false
		}
		totalRelevant++
		if start == -1 {
			start = n
		}
	}
	if totalRelevant == 0 {
		return nil, true
	}

	disc := make([]int, g.nodeCount)
	low := make([]int, g.nodeCount)
	subtreeRelevant := make([]int, g.nodeCount)
	for i := range disc {
		disc[i] = -1
	}
	timer := 0
	criticalSet := make(map[int]bool)

	var dfs func(u, parentEdge int, isRoot bool)
	dfs = func(u, parentEdge int, isRoot bool) {
		disc[u] = timer
		low[u] = timer
		timer++
		if relevant[u] {
			subtreeRelevant[u] = 1
		}

		var children []childInfo
		for i, e := range g.adj[u] {
			if !walkable[e.to] {
				continue
			}
			if i == parentEdge {
				continue
			}
			if disc[e.to] == -1 {
				dfs(e.to, e.rev, false)
				subtreeRelevant[u] += subtreeRelevant[e.to]
				if low[e.to] < low[u] {
					low[u] = low[e.to]
				}
				children = append(children, childInfo{low: low[e.to], relevant: subtreeRelevant[e.to]})
			} else if disc[e.to] < low[u] {
				low[u] = disc[e.to]
			}
		}

		groups := make([]int, 0, len(children)+1)
		if isRoot {
			for _, c := range children {
				groups = append(groups, c.relevant)
			}
		} else {
			merged := totalRelevant - subtreeRelevant[u]
			for _, c := range children {
				if c.low >= disc[u] {
					groups = append(groups, c.relevant)
				} else {
					merged += c.relevant
				}
			}
			groups = append(groups, merged)
		}
		nonZero := 0
		for _, gcount := range groups {
			if gcount > 0 {
				nonZero++
			}
		}
		if nonZero >= 2 {
			criticalSet[u] = true
		}
	}

	dfs(start, -1, true)

	for n := 0; n < g.nodeCount; n++ {
		if relevant[n] && disc[n] == -1 {
			return nil, false
		}
	}

	critical = make([]int, 0, len(criticalSet))
	for n := range criticalSet {
		critical = append(critical, n)
	}
	return critical, true
}
