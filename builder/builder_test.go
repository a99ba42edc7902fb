package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/builder"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/model"
)

func TestAddAdjacency_SymmetryInvariant(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	require.NoError(t, b.AddAdjacency([]string{"grass"}, []string{"grass", "road"}, 1, 0, 0))
	require.NoError(t, b.SetUniformFrequency())

	pm, err := b.Build()
	require.NoError(t, err)

	for p := model.PatternID(0); int(p) < pm.PatternCount(); p++ {
		for d := direction.Direction(0); int(d) < dirs.Count(); d++ {
			inv, _ := dirs.Inverse(d)
			for _, q := range pm.Propagator[p][d] {
				assert.True(t, pm.Compatible(q, inv, p), "symmetry violated for p=%d d=%d q=%d", p, d, q)
			}
		}
	}
}

func TestAddAdjacency_Errors(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)

	err := b.AddAdjacency(nil, []string{"a"}, 1, 0, 0)
	assert.ErrorIs(t, err, builder.ErrEmptyTileSet)

	err = b.AddAdjacency([]string{"a"}, []string{"b"}, 5, 5, 5)
	assert.ErrorIs(t, err, builder.ErrUnknownDirection)
}

func TestBuild_FinalizesBuilder(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)
	require.NoError(t, b.AddAdjacency([]string{"a"}, []string{"a"}, 1, 0, 0))

	_, err := b.Build()
	require.NoError(t, err)

	err = b.AddAdjacency([]string{"a"}, []string{"a"}, 1, 0, 0)
	assert.ErrorIs(t, err, builder.ErrAlreadyFinalized)

	_, err = b.Build()
	assert.ErrorIs(t, err, builder.ErrAlreadyFinalized)
}

func TestAddSample_LearnsFrequencyAndAdjacency(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[rune](dirs)

	sample := [][][]rune{{
		{'A', 'A', 'B'},
		{'A', 'B', 'B'},
	}}
	require.NoError(t, b.AddSample(sample))

	pm, err := b.Build()
	require.NoError(t, err)

	pa, ok := b.PatternForTile('A')
	require.True(t, ok)
	pb, ok := b.PatternForTile('B')
	require.True(t, ok)

	assert.Equal(t, 3.0, pm.Frequencies[pa])
	assert.Equal(t, 3.0, pm.Frequencies[pb])
	// A and B are horizontally adjacent in the sample, so each direction of
	// "east" from A must include B as compatible (or the mirror on B).
	east, _ := dirs.Find(1, 0, 0)
	assert.True(t, pm.Compatible(pa, east, pb) || pm.Compatible(pb, east, pa))
}

func TestPatternForTile_Unknown(t *testing.T) {
	dirs := direction.Cartesian2D()
	b := builder.New[string](dirs)
	_, ok := b.PatternForTile("nope")
	assert.False(t, ok)
}
