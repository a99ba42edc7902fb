// Package wfc is a Wave Function Collapse tile generator: given a finite
// set of tile kinds, a discrete topology of cells, and local compatibility
// rules between adjacent cells, it produces an assignment of exactly one
// tile to every cell such that every adjacency is legal.
//
// Collapse is probabilistic, weighted by per-tile frequencies, and
// supports backtracking when constraint propagation reaches a
// contradiction. Auxiliary non-local constraints — path connectivity,
// cardinality bounds — plug into the propagation loop alongside the core
// adjacency rules.
//
// Package layout, leaves first:
//
//	direction/      — finite direction sets and their inverse/offset tables
//	topology/       — cell index <-> (x,y,z), neighbor step under wrap/mask
//	model/          — compiled per-pattern frequencies and compatibility lists
//	builder/        — tile-level adjacency declarations compiled to a model
//	wave/           — the boolean possibility matrix and entropy summaries
//	propagator/     — the AC-3 propagation engine, observation loop, backtracking
//	tileset/        — bit-packed subsets of pattern indices
//	constraint/     — the plug-in protocol plus CountConstraint
//	pathconstraint/ — path-connectivity constraints via articulation points
//	tile/           — a tile-level façade over propagator.WavePropagator
//	ruleset/        — YAML rule-file loading
//	cmd/wfcgen/     — a console front-end
//
// A typical caller works at the tile level:
//
//	dirs := direction.Cartesian2D()
//	topo, _ := topology.New(dirs, topology.Dims{Width: w, Height: h, Depth: 1}, topology.Periodic{}, nil)
//	b := builder.New[string](dirs)
//	_, _ = ruleset.Load(yamlBytes, b)
//	m, _ := b.Build()
//	tp, _ := tile.FromBuilder(b, m, topo, tile.Options{BacktrackDepth: -1, Seed: 1})
//	status := tp.Run(0)
//	grid := tp.ToValueArray()
package wfc
