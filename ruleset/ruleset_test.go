package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/builder"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/ruleset"
)

func TestLoad_RegistersTilesAndAdjacency(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	doc, err := ruleset.Load([]byte(`
tiles:
  - name: grass
    weight: 3
  - name: water
    weight: 1
adjacency:
  - from: [grass]
    to: [grass, water]
    dir: [1, 0, 0]
`), b)
	require.NoError(t, err)
	require.Len(t, doc.Tiles, 2)

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, m.PatternCount())

	grass, ok := b.PatternForTile("grass")
	require.True(t, ok)
	water, ok := b.PatternForTile("water")
	require.True(t, ok)

	east, _ := dirs.Find(1, 0, 0)
	require.True(t, m.Compatible(grass, east, grass))
	require.True(t, m.Compatible(grass, east, water))
	require.False(t, m.Compatible(water, east, water))
}

func TestLoad_RegistersExitOnlyTiles(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	_, err := ruleset.Load([]byte(`
tiles:
  - name: isolated
    weight: 1
    exits: [north]
`), b)
	require.NoError(t, err)

	_, ok := b.PatternForTile("isolated")
	require.True(t, ok, "a tile with no adjacency entries must still be registered")
}

func TestLoad_EmptyTilesList(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	_, err := ruleset.Load([]byte(`tiles: []`), b)
	require.ErrorIs(t, err, ruleset.ErrNoTiles)
}

func TestLoad_UnknownTileInAdjacency(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	_, err := ruleset.Load([]byte(`
tiles:
  - name: grass
    weight: 1
adjacency:
  - from: [grass]
    to: [lava]
    dir: [1, 0, 0]
`), b)
	require.ErrorIs(t, err, ruleset.ErrUnknownTile)
}

func TestLoad_UnknownDirectionName(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	_, err := ruleset.Load([]byte(`
tiles:
  - name: grass
    weight: 1
    exits: [up]
`), b)
	require.ErrorIs(t, err, ruleset.ErrUnknownDirectionName)
}

// TestLoad_RejectsDuplicateExitDirection pins down a historical data bug: a
// four-way fork tile whose exits list named the same direction twice (west,
// west) instead of covering all four directions. Load must reject this
// rather than silently collapsing it to three exits.
func TestLoad_RejectsDuplicateExitDirection(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	_, err := ruleset.Load([]byte(`
tiles:
  - name: fork4
    weight: 1
    exits: [north, west, south, west]
`), b)
	require.ErrorIs(t, err, ruleset.ErrDuplicateExit)
}

func TestDocument_ExitSets(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	doc, err := ruleset.Load([]byte(`
tiles:
  - name: straight
    weight: 1
    exits: [east, west]
  - name: corner
    weight: 1
    exits: [east, south]
adjacency:
  - from: [straight, corner]
    to: [straight, corner]
    dir: [1, 0, 0]
`), b)
	require.NoError(t, err)

	m, err := b.Build()
	require.NoError(t, err)

	exitSets, err := doc.ExitSets(b, m, dirs)
	require.NoError(t, err)
	require.Len(t, exitSets, dirs.Count())

	straight, _ := b.PatternForTile("straight")
	corner, _ := b.PatternForTile("corner")

	east, _ := dirs.Find(1, 0, 0)
	west, _ := dirs.Find(-1, 0, 0)
	south, _ := dirs.Find(0, 1, 0)
	north, _ := dirs.Find(0, -1, 0)

	require.True(t, exitSets[east].Contains(straight))
	require.True(t, exitSets[east].Contains(corner))
	require.True(t, exitSets[west].Contains(straight))
	require.False(t, exitSets[west].Contains(corner))
	require.True(t, exitSets[south].Contains(corner))
	require.False(t, exitSets[north].Contains(straight))
	require.False(t, exitSets[north].Contains(corner))
}

func TestDocument_PathTiles(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	doc, err := ruleset.Load([]byte(`
tiles:
  - name: path
    weight: 1
    exits: [east, west]
  - name: empty
    weight: 1
`), b)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"path"}, doc.PathTiles())
}
