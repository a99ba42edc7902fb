package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/builder"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/propagator"
	"github.com/katalvlaran/wfc/tile"
	"github.com/katalvlaran/wfc/topology"
)

func buildFreeGrid(t *testing.T, w, h int) (*tile.TilePropagator[string], *builder.Builder[string]) {
	t.Helper()
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)
	tiles := []string{"grass", "water"}
	for _, dx := range []int{1, -1} {
		require.NoError(t, b.AddAdjacency(tiles, tiles, dx, 0, 0))
	}
	for _, dy := range []int{1, -1} {
		require.NoError(t, b.AddAdjacency(tiles, tiles, 0, dy, 0))
	}
	require.NoError(t, b.SetUniformFrequency())
	m, err := b.Build()
	require.NoError(t, err)

	topo, err := topology.New(dirs, topology.Dims{Width: w, Height: h, Depth: 1}, topology.Periodic{}, nil)
	require.NoError(t, err)

	tp, err := tile.FromBuilder(b, m, topo, tile.Options{BacktrackDepth: -1, Seed: 5})
	require.NoError(t, err)
	return tp, b
}

func TestTilePropagator_SelectThenRunDecides(t *testing.T) {
	tp, _ := buildFreeGrid(t, 3, 3)

	grass, err := tp.NewTileSet("grass")
	require.NoError(t, err)
	require.NoError(t, tp.Select(0, 0, 0, grass))

	status := tp.Run(0)
	require.Equal(t, propagator.Decided, status)

	values := tp.ToValueArray()
	require.Equal(t, "grass", values[0])
}

func TestTilePropagator_GetBannedSelected(t *testing.T) {
	tp, _ := buildFreeGrid(t, 2, 2)

	grass, err := tp.NewTileSet("grass")
	require.NoError(t, err)

	allBanned, allSelected, err := tp.GetBannedSelected(0, 0, 0, grass)
	require.NoError(t, err)
	require.False(t, allBanned)
	require.False(t, allSelected)

	require.NoError(t, tp.Select(0, 0, 0, grass))
	allBanned, allSelected, err = tp.GetBannedSelected(0, 0, 0, grass)
	require.NoError(t, err)
	require.False(t, allBanned)
	require.True(t, allSelected)

	water, err := tp.NewTileSet("water")
	require.NoError(t, err)
	allBanned, _, err = tp.GetBannedSelected(0, 0, 0, water)
	require.NoError(t, err)
	require.True(t, allBanned)
}

func TestTilePropagator_ToTopArraySentinels(t *testing.T) {
	tp, _ := buildFreeGrid(t, 2, 2)
	top := tp.ToTopArray(-1, -2)
	for _, v := range top {
		require.Equal(t, -1, v, "nothing decided yet")
	}
}

func TestTilePropagator_UnknownTile(t *testing.T) {
	tp, _ := buildFreeGrid(t, 2, 2)
	_, err := tp.NewTileSet("lava")
	require.ErrorIs(t, err, tile.ErrUnknownTile)
}
