// Package tileset provides Set, a precomputed bitmap over pattern indices.
// Constraints and the tile-level façade both compare "is this pattern in
// the subset the caller cares about" far more often than they enumerate
// it, so Set is bit-packed the same way wave.Wave packs possibility bits.
package tileset

import (
	"sort"

	"github.com/katalvlaran/wfc/model"
)

// Set is an immutable bitmap over pattern indices [0, patternCount).
type Set struct {
	patternCount int
	bits         []uint64
}

// New builds a Set containing exactly the given patterns, over a universe
// of patternCount total patterns. Patterns outside [0, patternCount) are
// ignored.
func New(patterns []model.PatternID, patternCount int) *Set {
	words := (patternCount + 63) / 64
	s := &Set{patternCount: patternCount, bits: make([]uint64, words)}
	for _, p := range patterns {
		if int(p) < 0 || int(p) >= patternCount {
			continue
		}
		s.bits[p/64] |= uint64(1) << uint(p%64)
	}

	return s
}

// Full returns a Set containing every pattern in [0, patternCount).
func Full(patternCount int) *Set {
	ids := make([]model.PatternID, patternCount)
	for i := range ids {
		ids[i] = model.PatternID(i)
	}
	return New(ids, patternCount)
}

// Contains reports whether pattern p is a member of the set.
func (s *Set) Contains(p model.PatternID) bool {
	if int(p) < 0 || int(p) >= s.patternCount {
		return false
	}
	return s.bits[p/64]&(uint64(1)<<uint(p%64)) != 0
}

// PatternCount returns the size of the universe this Set is a subset of.
func (s *Set) PatternCount() int { return s.patternCount }

// Patterns returns the set's members in ascending order.
func (s *Set) Patterns() []model.PatternID {
	out := make([]model.PatternID, 0)
	for p := 0; p < s.patternCount; p++ {
		if s.Contains(model.PatternID(p)) {
			out = append(out, model.PatternID(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Complement returns the set of all patterns in [0, patternCount) not in s.
func (s *Set) Complement() *Set {
	out := &Set{patternCount: s.patternCount, bits: make([]uint64, len(s.bits))}
	fullWords, tail := s.patternCount/64, s.patternCount%64
	for i := range out.bits {
		out.bits[i] = ^s.bits[i]
	}
	if tail > 0 && fullWords < len(out.bits) {
		out.bits[fullWords] &= (uint64(1) << uint(tail)) - 1
	}

	return out
}

// Union returns the set of patterns in s or other.
func (s *Set) Union(other *Set) *Set {
	out := &Set{patternCount: s.patternCount, bits: make([]uint64, len(s.bits))}
	for i := range out.bits {
		out.bits[i] = s.bits[i] | other.bits[i]
	}
	return out
}
