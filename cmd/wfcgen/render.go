package main

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/wfc/topology"
)

// Rendering sentinels passed to TilePropagator.ToTopArray. Pattern indices
// are never negative, so both are safe out-of-band markers.
const (
	undecidedSentinel     = -1
	contradictionSentinel = -2
)

// render lays top (one integer per cell, topology index order) out as a
// grid of characters: '?' for undecided, '*' for contradicted, a space for
// pattern 0, and the pattern's decimal value otherwise. 3-D grids print one
// "z=N" plane at a time.
func render(topo *topology.Topology, top []int) string {
	dims := topo.Dims()
	var sb strings.Builder

	for z := 0; z < dims.Depth; z++ {
		if dims.Depth > 1 {
			sb.WriteString("z=")
			sb.WriteString(strconv.Itoa(z))
			sb.WriteByte('\n')
		}
		for y := 0; y < dims.Height; y++ {
			for x := 0; x < dims.Width; x++ {
				idx, _ := topo.Index(x, y, z)
				sb.WriteString(renderCell(top[idx]))
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func renderCell(v int) string {
	switch v {
	case contradictionSentinel:
		return "*"
	case undecidedSentinel:
		return "?"
	case 0:
		return " "
	default:
		return strconv.Itoa(v)
	}
}
