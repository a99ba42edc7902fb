package propagator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/topology"
)

func freeModel(dirs *direction.Set, patternCount int) *model.PatternModel {
	freq := make([]float64, patternCount)
	for i := range freq {
		freq[i] = 1
	}
	prop := make([][][]model.PatternID, patternCount)
	all := make([]model.PatternID, patternCount)
	for i := range all {
		all[i] = model.PatternID(i)
	}
	for p := range prop {
		prop[p] = make([][]model.PatternID, dirs.Count())
		for d := range prop[p] {
			prop[p][d] = all
		}
	}
	return model.New(dirs, freq, prop)
}

func snapshotPossible(p *WavePropagator, topo *topology.Topology, patternCount int) [][]bool {
	out := make([][]bool, topo.CellCount())
	for c := range out {
		row := make([]bool, patternCount)
		for pat := 0; pat < patternCount; pat++ {
			row[pat] = p.IsPossible(c, model.PatternID(pat))
		}
		out[c] = row
	}
	return out
}

// TestPropagate_IdempotentOnDecided exercises invariant 8: once every cell
// is decided, the elimination queue is empty and propagate() has nothing
// left to do.
func TestPropagate_IdempotentOnDecided(t *testing.T) {
	dirs := direction.Cartesian2D()
	m := freeModel(dirs, 3)
	topo, err := topology.New(dirs, topology.Dims{Width: 3, Height: 3, Depth: 1}, topology.Periodic{}, nil)
	require.NoError(t, err)

	p, err := New(m, topo, Options{BacktrackDepth: -1, Seed: 3})
	require.NoError(t, err)
	require.Equal(t, Decided, p.Run(0))

	before := snapshotPossible(p, topo, m.PatternCount())
	contradicted := p.propagate()
	after := snapshotPossible(p, topo, m.PatternCount())

	require.False(t, contradicted)
	require.Equal(t, before, after)
	require.Empty(t, p.queue)
}

// TestUndoFrame_RestoresBitIdentity exercises invariant 9: eliminating a
// frame's changes and then undoing them returns the wave to exactly the
// possibility matrix it held before the frame was applied.
func TestUndoFrame_RestoresBitIdentity(t *testing.T) {
	dirs := direction.Cartesian2D()
	m := freeModel(dirs, 4)
	topo, err := topology.New(dirs, topology.Dims{Width: 4, Height: 4, Depth: 1}, topology.Periodic{}, nil)
	require.NoError(t, err)

	p, err := New(m, topo, Options{BacktrackDepth: -1, Seed: 11})
	require.NoError(t, err)
	require.Equal(t, Undecided, p.Init())

	before := snapshotPossible(p, topo, m.PatternCount())

	cell, ok := p.lowestEntropyCell()
	require.True(t, ok)
	chosen := p.choosePattern(cell)
	f := &frame{cell: cell, chosenPattern: chosen}
	p.pushFrame(f)
	for pat := 0; pat < m.PatternCount(); pat++ {
		if pat != int(chosen) && p.w.IsPossible(cell, pat) {
			p.eliminate(cell, model.PatternID(pat))
		}
	}
	require.False(t, p.propagate())

	after := snapshotPossible(p, topo, m.PatternCount())
	require.NotEqual(t, before, after, "eliminate must actually have changed the wave")

	p.undoFrame(f)
	p.stack = p.stack[:len(p.stack)-1]
	restored := snapshotPossible(p, topo, m.PatternCount())

	require.Equal(t, before, restored)
}
