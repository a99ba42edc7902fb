package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/model"
)

func TestCompatible(t *testing.T) {
	dirs := direction.Cartesian2D()
	// Two patterns: 0 compatible with 1 via direction 0, the mirrored pair
	// (1 with 0) via direction 1; 0 is not compatible with itself.
	propagator := [][][]model.PatternID{
		{{1}, {}, {}, {}},
		{{}, {0}, {}, {}},
	}
	m := model.New(dirs, []float64{1, 1}, propagator)

	assert.True(t, m.Compatible(0, 0, 1))
	assert.False(t, m.Compatible(0, 0, 0))
	assert.True(t, m.Compatible(1, 1, 0))
	assert.Equal(t, 2, m.PatternCount())
}
