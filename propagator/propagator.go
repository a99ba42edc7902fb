// Package propagator implements WavePropagator: the AC-3-style constraint
// propagation engine that drives a wave.Wave toward a decided state.
//
// What:
//   - eliminate(cell,pattern) clears one bit and enqueues it for cascade
//     processing; propagate() drains that queue, decrementing compatibleCount
//     support tables and cascading further eliminations until the queue
//     empties, then reports whether any cell reached zero possible patterns.
//   - Step/Run drive the full cycle: pick the lowest-entropy undecided cell,
//     collapse it to one weighted-random pattern, propagate, run every
//     registered constraint to a fixed point, and backtrack on contradiction.
//
// Why:
//   - compatibleCount[cell][pattern][dir], one integer per (cell, pattern,
//     direction) triple, turns "is pattern still supported from every
//     direction" into an O(1) check instead of a neighbor rescan: it is
//     decremented exactly once per (eliminated neighbor pattern, compatible
//     pattern) pair and never needs to be recomputed from scratch.
//
// Complexity:
//   - propagate(): each eliminate() enqueues O(1) work; each dequeue fans out
//     to at most D*avg(|Propagator[p][d]|) decrements, so a full propagation
//     to fixed point is bounded by total eliminations across the run, not by
//     re-scanning the grid.
package propagator

import (
	"math/rand"

	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/tileset"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wave"
)

type event struct {
	cell    int
	pattern model.PatternID
}

type change struct {
	cell    int
	pattern model.PatternID
}

type frame struct {
	cell          int
	chosenPattern model.PatternID
	changes       []change
}

// WavePropagator is the constraint propagation engine over one wave.Wave. It
// implements constraint.Handle so registered Constraints can inspect and
// narrow it without importing this package.
type WavePropagator struct {
	model *model.PatternModel
	topo  *topology.Topology
	dirs  *direction.Set
	w     *wave.Wave

	dirCount     int
	neighborOf   []int  // cellCount*dirCount, -1 when no neighbor
	compatCount  []int  // cellCount*patternCount*dirCount

	queue []event

	backtrackDepth int // -1 unbounded, 0 disabled, N bounded
	stack          []*frame
	backtrackCount int

	constraints []constraint.Constraint
	rng         *rand.Rand

	status      Status
	initialized bool
}

// New constructs a WavePropagator over m and topo, which must share the same
// direction.Set (same pointer), with every cell and pattern initially
// possible.
func New(m *model.PatternModel, topo *topology.Topology, opts Options) (*WavePropagator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if m.PatternCount() == 0 {
		return nil, ErrEmptyModel
	}
	if m.Directions() != topo.Directions() {
		return nil, ErrDirectionSetMismatch
	}

	dirs := m.Directions()
	dirCount := dirs.Count()
	cellCount := topo.CellCount()
	patternCount := m.PatternCount()

	rng := rand.New(rand.NewSource(int64(opts.Seed)))
	noise := make([]float64, cellCount)
	for i := range noise {
		noise[i] = rng.Float64() * 1e-6
	}

	p := &WavePropagator{
		model:          m,
		topo:           topo,
		dirs:           dirs,
		w:              wave.New(cellCount, m.Frequencies, noise),
		dirCount:       dirCount,
		neighborOf:     make([]int, cellCount*dirCount),
		compatCount:    make([]int, cellCount*patternCount*dirCount),
		backtrackDepth: opts.BacktrackDepth,
		constraints:    opts.Constraints,
		rng:            rng,
	}

	for cell := 0; cell < cellCount; cell++ {
		for d := 0; d < dirCount; d++ {
			n, ok := topo.TryMove(cell, direction.Direction(d))
			if ok {
				p.neighborOf[cell*dirCount+d] = n
			} else {
				p.neighborOf[cell*dirCount+d] = -1
			}
		}
	}
	for cell := 0; cell < cellCount; cell++ {
		for pat := 0; pat < patternCount; pat++ {
			for d := 0; d < dirCount; d++ {
				p.compatCount[p.compatIndex(cell, model.PatternID(pat), d)] = len(m.Propagator[pat][d])
			}
		}
	}
	for pat := 0; pat < patternCount; pat++ {
		if m.Frequencies[pat] == 0 {
			for cell := 0; cell < cellCount; cell++ {
				p.eliminate(cell, model.PatternID(pat))
			}
		}
	}

	return p, nil
}

func (p *WavePropagator) compatIndex(cell int, pattern model.PatternID, dir int) int {
	return (cell*p.model.PatternCount()+int(pattern))*p.dirCount + dir
}

func (p *WavePropagator) neighbor(cell, dir int) (int, bool) {
	n := p.neighborOf[cell*p.dirCount+dir]
	if n < 0 {
		return 0, false
	}
	return n, true
}

func (p *WavePropagator) currentFrame() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// eliminate clears pattern at cell if still possible, records the change
// against the current backtrack frame (if any), and enqueues it for cascade
// processing. A no-op if the pattern is already impossible there.
func (p *WavePropagator) eliminate(cell int, pattern model.PatternID) {
	if !p.w.IsPossible(cell, int(pattern)) {
		return
	}
	_ = p.w.Eliminate(cell, int(pattern)) // IsPossible just confirmed this succeeds

	if f := p.currentFrame(); f != nil {
		f.changes = append(f.changes, change{cell: cell, pattern: pattern})
	}
	p.queue = append(p.queue, event{cell: cell, pattern: pattern})
}

// propagate drains the elimination queue, cascading support-count decrements
// to neighbors until the queue empties, and reports whether some cell reached
// zero possible patterns. The queue is drained even past a contradiction, so
// every recorded elimination has had its decrements applied and undoFrame
// can reverse them exactly.
func (p *WavePropagator) propagate() bool {
	for len(p.queue) > 0 {
		ev := p.queue[0]
		p.queue = p.queue[1:]

		for d := 0; d < p.dirCount; d++ {
			n, ok := p.neighbor(ev.cell, d)
			if !ok {
				continue
			}
			invD, _ := p.dirs.Inverse(direction.Direction(d))
			for _, other := range p.model.Propagator[ev.pattern][d] {
				idx := p.compatIndex(n, other, int(invD))
				p.compatCount[idx]--
				if p.compatCount[idx] == 0 && p.w.IsPossible(n, int(other)) {
					p.eliminate(n, other)
				}
			}
		}
	}
	for cell := 0; cell < p.w.CellCount(); cell++ {
		if p.w.PatternCountAt(cell) == 0 {
			return true
		}
	}
	return false
}

// undoFrame restores every (cell,pattern) change the frame recorded, in any
// order: Wave's aggregates and compatCount are both additive, so restoring
// a set of eliminations is order-independent as long as the full set is
// restored.
func (p *WavePropagator) undoFrame(f *frame) {
	for _, c := range f.changes {
		p.w.Restore(c.cell, int(c.pattern))
		for d := 0; d < p.dirCount; d++ {
			n, ok := p.neighbor(c.cell, d)
			if !ok {
				continue
			}
			invD, _ := p.dirs.Inverse(direction.Direction(d))
			for _, other := range p.model.Propagator[c.pattern][d] {
				idx := p.compatIndex(n, other, int(invD))
				p.compatCount[idx]++
			}
		}
	}
}

// Model implements constraint.Handle.
func (p *WavePropagator) Model() *model.PatternModel { return p.model }

// Topology implements constraint.Handle.
func (p *WavePropagator) Topology() *topology.Topology { return p.topo }

// CellCount implements constraint.Handle.
func (p *WavePropagator) CellCount() int { return p.w.CellCount() }

// IsPossible implements constraint.Handle.
func (p *WavePropagator) IsPossible(cell int, pat model.PatternID) bool {
	return p.w.IsPossible(cell, int(pat))
}

// PatternCountAt implements constraint.Handle.
func (p *WavePropagator) PatternCountAt(cell int) int { return p.w.PatternCountAt(cell) }

// DecidedPattern returns the sole possible pattern at cell, if decided.
func (p *WavePropagator) DecidedPattern(cell int) (model.PatternID, bool) {
	if p.w.PatternCountAt(cell) != 1 {
		return 0, false
	}
	for pat := 0; pat < p.model.PatternCount(); pat++ {
		if p.w.IsPossible(cell, pat) {
			return model.PatternID(pat), true
		}
	}
	return 0, false
}

// Select implements constraint.Handle: eliminates every pattern at cell not
// in allowed, propagates, and reports ErrContradiction if that collapses
// cell (or any cascade target) to zero possible patterns.
func (p *WavePropagator) Select(cell int, allowed *tileset.Set) error {
	for pat := 0; pat < p.model.PatternCount(); pat++ {
		if p.w.IsPossible(cell, pat) && !allowed.Contains(model.PatternID(pat)) {
			p.eliminate(cell, model.PatternID(pat))
		}
	}
	if p.propagate() {
		return ErrContradiction
	}
	return nil
}

// Ban implements constraint.Handle: eliminates every pattern at cell that is
// in banned, propagates, and reports ErrContradiction on collapse.
func (p *WavePropagator) Ban(cell int, banned *tileset.Set) error {
	for pat := 0; pat < p.model.PatternCount(); pat++ {
		if p.w.IsPossible(cell, pat) && banned.Contains(model.PatternID(pat)) {
			p.eliminate(cell, model.PatternID(pat))
		}
	}
	if p.propagate() {
		return ErrContradiction
	}
	return nil
}

// BacktrackCount returns how many times Run/Step has backtracked so far.
func (p *WavePropagator) BacktrackCount() int { return p.backtrackCount }

// Status returns the current terminal/non-terminal status.
func (p *WavePropagator) Status() Status { return p.status }
