package propagator

import (
	"math"

	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/model"
)

// Init runs every registered constraint's Init, in registration order, once
// before the first observation. A Contradiction from any constraint here is
// terminal: no observation has happened yet, so there is nothing to
// backtrack. A second call does nothing and returns the current status;
// callers normally call it exactly once, via Run/Step.
func (p *WavePropagator) Init() Status {
	if p.initialized {
		return p.status
	}
	p.initialized = true

	for _, c := range p.constraints {
		if c.Init(p) == constraint.Contradiction {
			p.status = Contradiction
			return p.status
		}
	}
	if p.propagate() {
		p.status = Contradiction
	}
	return p.status
}

// lowestEntropyCell returns the undecided cell (patternCount > 1) with the
// smallest cached entropy, or ok=false if every cell is decided,
// contradicted, or masked off. Masked cells are never chosen for
// observation, so they stay at full possibility and report as undecided
// rather than being collapsed to some arbitrary pattern.
func (p *WavePropagator) lowestEntropyCell() (cell int, ok bool) {
	best := math.Inf(1)
	found := false
	for c := 0; c < p.w.CellCount(); c++ {
		if p.topo.IsMasked(c) {
			continue
		}
		n := p.w.PatternCountAt(c)
		if n <= 1 {
			continue
		}
		e := p.w.Entropy(c)
		if !found || e < best {
			best = e
			cell = c
			found = true
		}
	}
	return cell, found
}

// choosePattern draws a weighted-random still-possible pattern at cell using
// the propagator's seeded PRNG.
func (p *WavePropagator) choosePattern(cell int) model.PatternID {
	var total float64
	for pat := 0; pat < p.model.PatternCount(); pat++ {
		if p.w.IsPossible(cell, pat) {
			total += p.model.Frequencies[pat]
		}
	}
	r := p.rng.Float64() * total
	for pat := 0; pat < p.model.PatternCount(); pat++ {
		if !p.w.IsPossible(cell, pat) {
			continue
		}
		r -= p.model.Frequencies[pat]
		if r < 0 {
			return model.PatternID(pat)
		}
	}
	// Floating-point rounding may leave r >= 0 after the last candidate;
	// fall back to it.
	for pat := p.model.PatternCount() - 1; pat >= 0; pat-- {
		if p.w.IsPossible(cell, pat) {
			return model.PatternID(pat)
		}
	}
	return 0
}

func (p *WavePropagator) backtrackEnabled() bool { return p.backtrackDepth != 0 }

func (p *WavePropagator) pushFrame(f *frame) {
	if !p.backtrackEnabled() {
		return
	}
	if p.backtrackDepth > 0 && len(p.stack) >= p.backtrackDepth {
		p.stack = p.stack[1:] // oldest frame's undo history is no longer reachable
	}
	p.stack = append(p.stack, f)
}

// checkConstraints runs every registered constraint's Check, in registration
// order, repeating full passes until one changes nothing (a version counter
// would be more precise, but re-running Check is cheap relative to
// propagation and matches the teacher's fixed-point style used by dfs/bfs
// convergence loops). Returns true on contradiction.
func (p *WavePropagator) checkConstraints() bool {
	for {
		before := p.snapshotCounts()
		for _, c := range p.constraints {
			if c.Check(p) == constraint.Contradiction {
				return true
			}
			if p.anyZero() {
				return true
			}
		}
		if p.countsEqual(before) {
			return false
		}
	}
}

func (p *WavePropagator) snapshotCounts() []int {
	counts := make([]int, p.w.CellCount())
	for c := 0; c < p.w.CellCount(); c++ {
		counts[c] = p.w.PatternCountAt(c)
	}
	return counts
}

func (p *WavePropagator) countsEqual(prev []int) bool {
	for c := 0; c < p.w.CellCount(); c++ {
		if p.w.PatternCountAt(c) != prev[c] {
			return false
		}
	}
	return true
}

func (p *WavePropagator) anyZero() bool {
	for c := 0; c < p.w.CellCount(); c++ {
		if p.w.PatternCountAt(c) == 0 {
			return true
		}
	}
	return false
}

// backtrack pops frames and re-bans each popped frame's chosen pattern at
// the level above, until either a re-ban settles without contradiction or
// the stack is exhausted. Returns the resulting status.
func (p *WavePropagator) backtrack() Status {
	for {
		if len(p.stack) == 0 {
			p.status = Contradiction
			return p.status
		}
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		p.undoFrame(top)
		p.backtrackCount++

		p.eliminate(top.cell, top.chosenPattern)
		if p.propagate() || p.checkConstraints() {
			continue
		}
		p.status = Undecided
		return p.status
	}
}

// observeOnce performs one collapse: pick the lowest-entropy undecided
// cell, weighted-randomly choose one of its possible patterns, eliminate
// every other pattern there, propagate, and run constraints to a fixed
// point. On contradiction it backtracks (if enabled) or terminates.
func (p *WavePropagator) observeOnce() Status {
	cell, ok := p.lowestEntropyCell()
	if !ok {
		p.status = Decided
		return p.status
	}

	chosen := p.choosePattern(cell)
	f := &frame{cell: cell, chosenPattern: chosen}
	p.pushFrame(f)

	for pat := 0; pat < p.model.PatternCount(); pat++ {
		if pat != int(chosen) && p.w.IsPossible(cell, pat) {
			p.eliminate(cell, model.PatternID(pat))
		}
	}

	if p.propagate() || p.checkConstraints() {
		if !p.backtrackEnabled() {
			p.status = Contradiction
			return p.status
		}
		return p.backtrack()
	}

	p.status = Undecided
	return p.status
}

// Step performs Init (if not already done) followed by exactly one
// observation, including any backtracking that observation triggers. It
// returns the resulting Status; callers loop on Undecided.
func (p *WavePropagator) Step() Status {
	if p.status == Decided || p.status == Contradiction {
		return p.status
	}
	if !p.initialized {
		if p.Init() == Contradiction {
			return p.status
		}
	}
	return p.observeOnce()
}

// Run calls Step repeatedly until it returns a terminal Status or maxSteps
// observations have run (maxSteps <= 0 means unlimited).
func (p *WavePropagator) Run(maxSteps int) Status {
	for steps := 0; maxSteps <= 0 || steps < maxSteps; steps++ {
		s := p.Step()
		if s != Undecided {
			return s
		}
	}
	return p.status
}
