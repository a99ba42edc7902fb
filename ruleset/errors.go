package ruleset

import "errors"

// Sentinel errors for rule-file parsing.
var (
	// ErrNoTiles indicates a rule document with an empty tiles list.
	ErrNoTiles = errors.New("ruleset: no tiles declared")
	// ErrUnknownTile indicates an adjacency or exit entry naming a tile
	// never declared in the tiles list.
	ErrUnknownTile = errors.New("ruleset: unknown tile name")
	// ErrUnknownDirectionName indicates an exits entry naming a direction
	// this package doesn't recognize (north/south/east/west).
	ErrUnknownDirectionName = errors.New("ruleset: unknown direction name")
	// ErrDuplicateExit indicates a tile's exits list names the same
	// direction twice.
	ErrDuplicateExit = errors.New("ruleset: duplicate direction in exits list")
	// ErrBadAdjacencyDir is returned by ExitSets when a tile's exits entry
	// names a direction whose vector matches no direction in the given
	// DirectionSet. A bad adjacency dir vector in Load surfaces instead as
	// a wrapped builder error.
	ErrBadAdjacencyDir = errors.New("ruleset: adjacency dir vector matches no direction")
)
