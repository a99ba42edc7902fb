package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/topology"
)

func TestRender_SentinelsAndZeroPattern(t *testing.T) {
	dirs := direction.Cartesian2D()
	topo, err := topology.New(dirs, topology.Dims{Width: 3, Height: 1, Depth: 1}, topology.Periodic{}, nil)
	require.NoError(t, err)

	got := render(topo, []int{0, undecidedSentinel, contradictionSentinel})
	require.Equal(t, " ?*\n", got)
}

func TestRender_PatternDigits(t *testing.T) {
	dirs := direction.Cartesian2D()
	topo, err := topology.New(dirs, topology.Dims{Width: 2, Height: 2, Depth: 1}, topology.Periodic{}, nil)
	require.NoError(t, err)

	got := render(topo, []int{1, 2, 3, 4})
	require.Equal(t, "12\n34\n", got)
}

func TestRender_MultiplaneHeader(t *testing.T) {
	dirs := direction.Cartesian3D()
	topo, err := topology.New(dirs, topology.Dims{Width: 1, Height: 1, Depth: 2}, topology.Periodic{}, nil)
	require.NoError(t, err)

	got := render(topo, []int{1, 2})
	require.Equal(t, "z=0\n1\nz=1\n2\n", got)
}
