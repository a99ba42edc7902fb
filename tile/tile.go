// Package tile implements TilePropagator: the tile-level façade over
// propagator.WavePropagator. Every operation here translates a caller's
// Tile value (or set of them) and (x,y,z) coordinate into the pattern index
// and flat cell index the propagator actually works in, so calling code
// never has to know a PatternID exists.
package tile

import (
	"github.com/katalvlaran/wfc/builder"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/propagator"
	"github.com/katalvlaran/wfc/tileset"
	"github.com/katalvlaran/wfc/topology"
)

// TilePropagator wraps a propagator.WavePropagator with the Tile<->PatternID
// mapping a builder.Builder[Tile] produced, translating every operation
// between tile space and pattern space.
type TilePropagator[Tile comparable] struct {
	wp           *propagator.WavePropagator
	tiles        []Tile // pattern -> tile
	patternOf    map[Tile]model.PatternID
	patternCount int
}

// NewPropagator constructs a TilePropagator from a compiled model, a
// topology, the pattern-ordered tile slice a builder.Builder[Tile]'s
// Tiles() produced, and the usual propagator Options.
func NewPropagator[Tile comparable](m *model.PatternModel, topo *topology.Topology, tiles []Tile, opts Options) (*TilePropagator[Tile], error) {
	wp, err := propagator.New(m, topo, propagator.Options{
		BacktrackDepth: opts.BacktrackDepth,
		Constraints:    opts.Constraints,
		Seed:           opts.Seed,
	})
	if err != nil {
		return nil, err
	}

	patternOf := make(map[Tile]model.PatternID, len(tiles))
	for p, t := range tiles {
		patternOf[t] = model.PatternID(p)
	}

	return &TilePropagator[Tile]{
		wp:           wp,
		tiles:        tiles,
		patternOf:    patternOf,
		patternCount: len(tiles),
	}, nil
}

// FromBuilder is a convenience constructor that pulls the pattern-ordered
// tile slice straight from a builder.Builder[Tile] that has already called
// Build, avoiding a separate Tiles() call at every call site.
func FromBuilder[Tile comparable](b *builder.Builder[Tile], m *model.PatternModel, topo *topology.Topology, opts Options) (*TilePropagator[Tile], error) {
	return NewPropagator(m, topo, b.Tiles(), opts)
}

// NewTileSet compiles a list of Tile values into a TileSet over this
// propagator's pattern space. Returns ErrUnknownTile if any tile was never
// registered with the builder this propagator was built from.
func (tp *TilePropagator[Tile]) NewTileSet(tiles ...Tile) (TileSet[Tile], error) {
	patterns := make([]model.PatternID, 0, len(tiles))
	for _, t := range tiles {
		p, ok := tp.patternOf[t]
		if !ok {
			return TileSet[Tile]{}, ErrUnknownTile
		}
		patterns = append(patterns, p)
	}
	return TileSet[Tile]{set: tileset.New(patterns, tp.patternCount)}, nil
}

func (tp *TilePropagator[Tile]) cellAt(x, y, z int) (int, error) {
	idx, err := tp.wp.Topology().Index(x, y, z)
	if err != nil {
		return 0, ErrCoordOutOfRange
	}
	return idx, nil
}

// Select eliminates every pattern at (x,y,z) not represented by set, then
// propagates. Equivalent to propagator.Select at the pattern level.
func (tp *TilePropagator[Tile]) Select(x, y, z int, set TileSet[Tile]) error {
	cell, err := tp.cellAt(x, y, z)
	if err != nil {
		return err
	}
	return tp.wp.Select(cell, set.set)
}

// Ban eliminates every pattern at (x,y,z) represented by set, then
// propagates.
func (tp *TilePropagator[Tile]) Ban(x, y, z int, set TileSet[Tile]) error {
	cell, err := tp.cellAt(x, y, z)
	if err != nil {
		return err
	}
	return tp.wp.Ban(cell, set.set)
}

// GetBannedSelected reports, for the cell at (x,y,z): allBanned iff no
// pattern in set is still possible there, and allSelected iff every
// still-possible pattern there lies in set.
func (tp *TilePropagator[Tile]) GetBannedSelected(x, y, z int, set TileSet[Tile]) (allBanned, allSelected bool, err error) {
	cell, err := tp.cellAt(x, y, z)
	if err != nil {
		return false, false, err
	}

	anyInSet := false
	anyOutsideSet := false
	for p := 0; p < tp.patternCount; p++ {
		if !tp.wp.IsPossible(cell, model.PatternID(p)) {
			continue
		}
		if set.set.Contains(model.PatternID(p)) {
			anyInSet = true
		} else {
			anyOutsideSet = true
		}
	}

	return !anyInSet, anyInSet && !anyOutsideSet, nil
}

// ToValueArray materializes the decided tile at every cell, in topology
// index order. Undecided or contradicted cells yield the Tile zero value.
func (tp *TilePropagator[Tile]) ToValueArray() []Tile {
	out := make([]Tile, tp.wp.CellCount())
	for c := range out {
		if pat, ok := tp.wp.DecidedPattern(c); ok {
			out[c] = tp.tiles[pat]
		}
	}
	return out
}

// ToTopArray materializes one integer per cell, in topology index order:
// the decided PatternID as int for decided cells, undecidedSentinel for
// cells with more than one remaining pattern, contradictionSentinel for
// cells with zero.
func (tp *TilePropagator[Tile]) ToTopArray(undecidedSentinel, contradictionSentinel int) []int {
	out := make([]int, tp.wp.CellCount())
	for c := range out {
		switch n := tp.wp.PatternCountAt(c); {
		case n == 0:
			out[c] = contradictionSentinel
		case n == 1:
			pat, _ := tp.wp.DecidedPattern(c)
			out[c] = int(pat)
		default:
			out[c] = undecidedSentinel
		}
	}
	return out
}

// Run delegates to the underlying propagator.
func (tp *TilePropagator[Tile]) Run(maxSteps int) propagator.Status { return tp.wp.Run(maxSteps) }

// Step delegates to the underlying propagator.
func (tp *TilePropagator[Tile]) Step() propagator.Status { return tp.wp.Step() }

// Status delegates to the underlying propagator.
func (tp *TilePropagator[Tile]) Status() propagator.Status { return tp.wp.Status() }

// BacktrackCount delegates to the underlying propagator.
func (tp *TilePropagator[Tile]) BacktrackCount() int { return tp.wp.BacktrackCount() }

// Propagator exposes the underlying pattern-level propagator, for callers
// (e.g. tests that inspect decided patterns) that need it directly.
func (tp *TilePropagator[Tile]) Propagator() *propagator.WavePropagator { return tp.wp }
