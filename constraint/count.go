package constraint

import "github.com/katalvlaran/wfc/tileset"

// Comparison selects which cardinality bound CountConstraint enforces.
type Comparison int

const (
	// AtMost requires the number of cells decided into the tile set to be <= K.
	AtMost Comparison = iota
	// AtLeast requires the number of cells decided into the tile set to be >= K.
	AtLeast
	// Exactly requires both AtMost and AtLeast K simultaneously.
	Exactly
)

// CountConstraint bounds the number of cells that may end up assigned to a
// tile subset. It maintains, on every Check: yes, the number of cells
// already forced into the set, and maybe, the number of undecided cells
// where the set is still possible but not yet forced. From those two
// counts it either detects an impossible bound (Contradiction), forces the
// remaining undecided cells one way (Select) or the other (Ban), or does
// nothing yet (Undecided).
type CountConstraint struct {
	set   *tileset.Set
	k     int
	cmp   Comparison
	eager bool
}

// NewCountConstraint constructs a CountConstraint over set, bounded by k
// under cmp. If eager is true and cmp is AtMost, the constraint forces
// exactness the moment yes+maybe == k (every remaining "maybe" cell must be
// selected into the set to hit exactly k, so waiting would only delay an
// inevitable Select).
func NewCountConstraint(set *tileset.Set, k int, cmp Comparison, eager bool) *CountConstraint {
	return &CountConstraint{set: set, k: k, cmp: cmp, eager: eager}
}

// Init performs no initial narrowing; CountConstraint only ever reacts to
// state that Check observes after propagation has run at least once.
func (c *CountConstraint) Init(h Handle) Resolution { return Undecided }

// Check implements Constraint.
func (c *CountConstraint) Check(h Handle) Resolution {
	yes := 0
	var maybeCells []int

	patterns := c.set.Patterns()
	for cell := 0; cell < h.CellCount(); cell++ {
		inSet := 0
		for _, p := range patterns {
			if h.IsPossible(cell, p) {
				inSet++
			}
		}
		if inSet == 0 {
			continue
		}
		if inSet == h.PatternCountAt(cell) {
			yes++
		} else {
			maybeCells = append(maybeCells, cell)
		}
	}
	maybe := len(maybeCells)

	if c.cmp == AtMost || c.cmp == Exactly {
		if yes > c.k {
			return Contradiction
		}
		if yes == c.k {
			for _, cell := range maybeCells {
				if err := h.Ban(cell, c.set); err != nil {
					return Contradiction
				}
			}
			maybeCells = nil
			maybe = 0
		} else if c.eager && yes+maybe == c.k {
			for _, cell := range maybeCells {
				if err := h.Select(cell, c.set); err != nil {
					return Contradiction
				}
			}
			yes += maybe
			maybeCells = nil
			maybe = 0
		}
	}

	if c.cmp == AtLeast || c.cmp == Exactly {
		if yes+maybe < c.k {
			return Contradiction
		}
		if yes+maybe == c.k && maybe > 0 {
			for _, cell := range maybeCells {
				if err := h.Select(cell, c.set); err != nil {
					return Contradiction
				}
			}
		}
	}

	return Undecided
}
