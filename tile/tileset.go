package tile

import "github.com/katalvlaran/wfc/tileset"

// TileSet is a tile-level view of tileset.Set: a precomputed bitmap over
// pattern indices, built from a list of Tile values via the same
// pattern<->tile mapping the owning TilePropagator uses. Constraints that
// operate in pattern space (package constraint, pathconstraint) consume the
// underlying tileset.Set directly; TileSet exists so callers at the tile
// level never have to know a PatternID.
type TileSet[Tile comparable] struct {
	set *tileset.Set
}

// Patterns returns the underlying pattern-index set, for adapters (e.g.
// pathconstraint's exit tables) that need pattern-space rather than
// tile-space.
func (s TileSet[Tile]) Patterns() *tileset.Set { return s.set }
