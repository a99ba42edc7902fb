package tile

import "errors"

// Sentinel errors for the tile-level façade.
var (
	// ErrUnknownTile indicates a Select/Ban call naming a Tile value the
	// Builder never assigned a pattern to.
	ErrUnknownTile = errors.New("tile: unknown tile")
	// ErrCoordOutOfRange indicates an (x,y,z) coordinate outside the
	// propagator's topology.
	ErrCoordOutOfRange = errors.New("tile: coordinate out of range")
)
