// Package builder implements AdjacencyBuilder: the write-once collector of
// tile-level adjacency declarations and/or sample arrays that compiles down
// to a model.PatternModel.
//
// What:
//   - AddAdjacency declares that, for every s in srcTiles and d in destTiles,
//     d may sit at the neighbor reached by (dx,dy,dz) from a cell holding s.
//     Both the forward pair and its direction-inverse mirror are recorded,
//     so the symmetry invariant model.PatternModel depends on always holds.
//   - AddSample scans a small sample grid and records every adjacent tile
//     pair it observes, incrementing frequency counts as it goes — the
//     "learn the rules from an example" path, as an alternative to
//     hand-written AddAdjacency calls.
//   - Build compiles the builder's internal hash-set compatibility lists
//     into the sorted arrays model.PatternModel is specified to hold, and
//     finalizes the builder: every mutating method after Build returns
//     ErrAlreadyFinalized.
//
// Tile->pattern assignment is lazy: a tile's first appearance in any method
// appends a new pattern index, grows Frequencies by one zero entry, and
// grows the per-direction compatibility sets. The pattern<->tile mapping
// itself is rebuilt fresh inside Build (preferred over invalidating it on
// every mutation, since the builder is write-then-read-once by contract).
package builder

import (
	"sort"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/topology"
)

// Builder collects adjacency declarations for a caller-defined, comparable
// Tile type and compiles them into a model.PatternModel. The zero value is
// not usable; construct with New.
type Builder[Tile comparable] struct {
	dirs *direction.Set

	tiles      []Tile               // pattern index -> tile
	patternOf  map[Tile]model.PatternID
	frequency  []float64            // pattern index -> frequency
	compat     []map[direction.Direction]map[model.PatternID]struct{} // pattern -> dir -> set of compatible patterns

	finalized bool
}

// New constructs an empty Builder over the given direction set.
func New[Tile comparable](dirs *direction.Set) *Builder[Tile] {
	return &Builder[Tile]{
		dirs:      dirs,
		patternOf: make(map[Tile]model.PatternID),
	}
}

// patternFor returns tile's pattern index, assigning a fresh one (and
// growing Frequencies/compat) on first occurrence.
func (b *Builder[Tile]) patternFor(t Tile) model.PatternID {
	if p, ok := b.patternOf[t]; ok {
		return p
	}
	p := model.PatternID(len(b.tiles))
	b.patternOf[t] = p
	b.tiles = append(b.tiles, t)
	b.frequency = append(b.frequency, 0)
	b.compat = append(b.compat, make(map[direction.Direction]map[model.PatternID]struct{}, b.dirs.Count()))

	return p
}

func (b *Builder[Tile]) addCompat(from model.PatternID, d direction.Direction, to model.PatternID) {
	set, ok := b.compat[from][d]
	if !ok {
		set = make(map[model.PatternID]struct{})
		b.compat[from][d] = set
	}
	set[to] = struct{}{}
}

// AddAdjacency declares that every destination tile may sit at the neighbor
// reached by (dx,dy,dz) from every source tile, and records the symmetric
// mirror pair automatically. Returns ErrEmptyTileSet if either list is
// empty, ErrUnknownDirection if (dx,dy,dz) matches no direction in the
// builder's DirectionSet, and ErrAlreadyFinalized after Build has run.
func (b *Builder[Tile]) AddAdjacency(srcTiles, destTiles []Tile, dx, dy, dz int) error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	if len(srcTiles) == 0 || len(destTiles) == 0 {
		return ErrEmptyTileSet
	}
	d, ok := b.dirs.Find(dx, dy, dz)
	if !ok {
		return ErrUnknownDirection
	}
	inv, err := b.dirs.Inverse(d)
	if err != nil {
		return err
	}

	for _, s := range srcTiles {
		sp := b.patternFor(s)
		for _, dest := range destTiles {
			dp := b.patternFor(dest)
			b.addCompat(sp, d, dp)
			b.addCompat(dp, inv, sp)
		}
	}

	return nil
}

// SetFrequency sets tile's absolute frequency weight. A weight of zero
// forbids the tile everywhere. Returns ErrAlreadyFinalized after Build.
func (b *Builder[Tile]) SetFrequency(t Tile, f float64) error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	b.frequency[b.patternFor(t)] = f

	return nil
}

// MultiplyFrequency scales tile's current frequency by m (first setting it
// to 1 if the tile has no frequency yet). Returns ErrAlreadyFinalized after
// Build.
func (b *Builder[Tile]) MultiplyFrequency(t Tile, m float64) error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	p := b.patternFor(t)
	if b.frequency[p] == 0 {
		b.frequency[p] = 1
	}
	b.frequency[p] *= m

	return nil
}

// SetUniformFrequency sets every tile registered so far to frequency 1.
// Returns ErrAlreadyFinalized after Build.
func (b *Builder[Tile]) SetUniformFrequency() error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	for i := range b.frequency {
		b.frequency[i] = 1
	}

	return nil
}

// AddSample scans a rectangular 3-D sample grid (sample[z][y][x]) and, for
// every cell, increments that tile's frequency by one and records an
// adjacency pair for every valid neighbor within the sample (the sample
// itself is treated as a non-periodic, unmasked topology; edges of the
// sample do not wrap). Pass a sample with len(sample)==1 for a 2-D source
// image. Returns ErrEmptySample / ErrNonRectangularSample on malformed
// input, ErrAlreadyFinalized after Build.
func (b *Builder[Tile]) AddSample(sample [][][]Tile) error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	if len(sample) == 0 || len(sample[0]) == 0 || len(sample[0][0]) == 0 {
		return ErrEmptySample
	}
	depth := len(sample)
	height := len(sample[0])
	width := len(sample[0][0])
	for _, plane := range sample {
		if len(plane) != height {
			return ErrNonRectangularSample
		}
		for _, row := range plane {
			if len(row) != width {
				return ErrNonRectangularSample
			}
		}
	}

	topo, err := topology.New(b.dirs, topology.Dims{Width: width, Height: height, Depth: depth}, topology.Periodic{}, nil)
	if err != nil {
		return err
	}

	tileAt := func(idx int) Tile {
		x, y, z, _ := topo.Coordinate(idx)
		return sample[z][y][x]
	}

	for idx := 0; idx < topo.CellCount(); idx++ {
		sp := b.patternFor(tileAt(idx))
		b.frequency[sp]++
		for d := direction.Direction(0); d < direction.Direction(b.dirs.Count()); d++ {
			n, ok := topo.TryMove(idx, d)
			if !ok {
				continue
			}
			dp := b.patternFor(tileAt(n))
			b.addCompat(sp, d, dp)
		}
	}

	return nil
}

// Build compiles the builder's hash-set compatibility lists into the sorted
// arrays model.PatternModel holds, and finalizes the builder: subsequent
// calls to any mutating method, or a second call to Build, return
// ErrAlreadyFinalized.
func (b *Builder[Tile]) Build() (*model.PatternModel, error) {
	if b.finalized {
		return nil, ErrAlreadyFinalized
	}
	b.finalized = true

	n := len(b.tiles)
	dcount := b.dirs.Count()
	propagator := make([][][]model.PatternID, n)
	for p := 0; p < n; p++ {
		propagator[p] = make([][]model.PatternID, dcount)
		for d := 0; d < dcount; d++ {
			set := b.compat[p][direction.Direction(d)]
			list := make([]model.PatternID, 0, len(set))
			for q := range set {
				list = append(list, q)
			}
			sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
			propagator[p][d] = list
		}
	}

	freq := make([]float64, n)
	copy(freq, b.frequency)

	return model.New(b.dirs, freq, propagator), nil
}

// TileForPattern returns the tile registered at pattern p, and whether p is
// a valid pattern index for this builder. Useful for adapters (e.g.
// ruleset) and tests that need to go from a compiled model's pattern back
// to the caller's own tile values.
func (b *Builder[Tile]) TileForPattern(p model.PatternID) (Tile, bool) {
	if int(p) < 0 || int(p) >= len(b.tiles) {
		var zero Tile
		return zero, false
	}
	return b.tiles[p], true
}

// PatternForTile returns the pattern index assigned to t, if t has been
// registered (by AddAdjacency, AddSample, or a frequency setter).
func (b *Builder[Tile]) PatternForTile(t Tile) (model.PatternID, bool) {
	p, ok := b.patternOf[t]
	return p, ok
}

// Tiles returns the pattern-index-ordered tile slice: Tiles()[p] is the
// Tile registered at pattern p. Callers pass this to tile.NewPropagator
// alongside the model Build returned, so the façade can translate pattern
// indices back to caller-level tile values.
func (b *Builder[Tile]) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}
