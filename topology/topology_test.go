package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/topology"
)

func TestNew_Errors(t *testing.T) {
	dirs := direction.Cartesian2D()

	_, err := topology.New(dirs, topology.Dims{Width: 0, Height: 1, Depth: 1}, topology.Periodic{}, nil)
	require.ErrorIs(t, err, topology.ErrEmptyDims)

	_, err = topology.New(dirs, topology.Dims{Width: 2, Height: 2, Depth: 1}, topology.Periodic{}, make([]bool, 3))
	require.ErrorIs(t, err, topology.ErrBadMaskLength)
}

func TestIndexCoordinate_RoundTrip(t *testing.T) {
	dirs := direction.Cartesian3D()
	topo, err := topology.New(dirs, topology.Dims{Width: 4, Height: 3, Depth: 2}, topology.Periodic{}, nil)
	require.NoError(t, err)

	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				idx, err := topo.Index(x, y, z)
				require.NoError(t, err)
				gx, gy, gz, err := topo.Coordinate(idx)
				require.NoError(t, err)
				assert.Equal(t, [3]int{x, y, z}, [3]int{gx, gy, gz})
			}
		}
	}
}

func TestTryMove_NonPeriodicBoundary(t *testing.T) {
	dirs := direction.Cartesian2D()
	topo, err := topology.New(dirs, topology.Dims{Width: 3, Height: 3, Depth: 1}, topology.Periodic{}, nil)
	require.NoError(t, err)

	origin, _ := topo.Index(0, 0, 0)
	// West (index 1 in Cartesian2D) from x=0 should fail: no wrap.
	_, ok := topo.TryMove(origin, 1)
	assert.False(t, ok)

	// East should succeed, landing at (1,0).
	east, ok := topo.TryMove(origin, 0)
	require.True(t, ok)
	ex, ey, _, _ := topo.Coordinate(east)
	assert.Equal(t, 1, ex)
	assert.Equal(t, 0, ey)
}

func TestTryMove_PeriodicWrap(t *testing.T) {
	dirs := direction.Cartesian2D()
	topo, err := topology.New(dirs, topology.Dims{Width: 3, Height: 3, Depth: 1}, topology.Periodic{X: true, Y: true}, nil)
	require.NoError(t, err)

	origin, _ := topo.Index(0, 0, 0)
	west, ok := topo.TryMove(origin, 1)
	require.True(t, ok)
	wx, wy, _, _ := topo.Coordinate(west)
	assert.Equal(t, 2, wx)
	assert.Equal(t, 0, wy)
}

// TestTryMove_InverseRoundTrip verifies the invariant from SPEC_FULL.md §3:
// TryMove(TryMove(i,d), inv(d)) == i whenever both succeed.
func TestTryMove_InverseRoundTrip(t *testing.T) {
	dirs := direction.Cartesian3D()
	topo, err := topology.New(dirs, topology.Dims{Width: 5, Height: 4, Depth: 3}, topology.Periodic{X: true, Y: false, Z: true}, nil)
	require.NoError(t, err)

	for idx := 0; idx < topo.CellCount(); idx++ {
		for d := direction.Direction(0); d < direction.Direction(dirs.Count()); d++ {
			n, ok := topo.TryMove(idx, d)
			if !ok {
				continue
			}
			inv, err := dirs.Inverse(d)
			require.NoError(t, err)
			back, ok := topo.TryMove(n, inv)
			require.True(t, ok)
			assert.Equal(t, idx, back)
		}
	}
}

func TestTryMove_Masked(t *testing.T) {
	dirs := direction.Cartesian2D()
	mask := make([]bool, 9)
	mask[4] = true // center cell (1,1) of a 3x3 grid is masked off
	topo, err := topology.New(dirs, topology.Dims{Width: 3, Height: 3, Depth: 1}, topology.Periodic{}, mask)
	require.NoError(t, err)

	origin, _ := topo.Index(1, 0, 0) // north of the masked cell
	_, ok := topo.TryMove(origin, 2) // direction 2 = +Y = South in Cartesian2D
	assert.False(t, ok, "stepping onto a masked cell must fail")
}
