// Package topology maps cell indices to (x,y,z) coordinates and resolves
// directional neighbor steps under optional per-axis periodic wrapping and
// an optional boolean mask of disabled cells.
//
// What:
//   - Topology is a rectangular W×H×D grid, one cell per integer index
//     x + y*W + z*W*H.
//   - TryMove(index, d) steps one cell in direction d: it wraps on a
//     periodic axis, fails at a non-periodic boundary, and fails if the
//     destination cell is masked off.
//
// Why:
//   - Every other core package (wave, propagator, pathconstraint) only
//     ever needs "what's my neighbor in direction d", never raw (x,y,z)
//     arithmetic — Topology is the one place that arithmetic lives.
//
// Complexity:
//   - New: O(W*H*D) to validate/copy the mask.
//   - TryMove, Index, Coordinate: O(1).
package topology

import "github.com/katalvlaran/wfc/direction"

// Dims is the grid's extent along each axis. Depth of 1 models a 2-D grid.
type Dims struct {
	Width, Height, Depth int
}

// Periodic selects, per axis, whether moving off that edge wraps around.
type Periodic struct {
	X, Y, Z bool
}

// Topology is an immutable W×H×D grid of cells, one per integer index, with
// directional neighbor resolution under periodic wrap and an optional mask.
type Topology struct {
	dirs     *direction.Set
	dims     Dims
	periodic Periodic
	mask     []bool // mask[i] == true means cell i is disabled; nil means none masked
}

// New constructs a Topology. mask, if non-nil, must have exactly
// Width*Height*Depth entries; mask[i] == true marks cell i as permanently
// unusable (TryMove never resolves to it, and callers should never collapse
// it). A nil mask means every cell is usable.
func New(dirs *direction.Set, dims Dims, periodic Periodic, mask []bool) (*Topology, error) {
	if dims.Width < 1 || dims.Height < 1 || dims.Depth < 1 {
		return nil, ErrEmptyDims
	}
	n := dims.Width * dims.Height * dims.Depth
	var m []bool
	if mask != nil {
		if len(mask) != n {
			return nil, ErrBadMaskLength
		}
		m = make([]bool, n)
		copy(m, mask)
	}

	return &Topology{dirs: dirs, dims: dims, periodic: periodic, mask: m}, nil
}

// Dims returns the grid's (Width, Height, Depth).
func (t *Topology) Dims() Dims { return t.dims }

// Directions returns the direction.Set this topology steps along.
func (t *Topology) Directions() *direction.Set { return t.dirs }

// CellCount returns Width*Height*Depth.
func (t *Topology) CellCount() int {
	return t.dims.Width * t.dims.Height * t.dims.Depth
}

// Index maps (x,y,z) to its flat cell index. Returns ErrCoordOutOfRange if
// the coordinate lies outside [0,Width)×[0,Height)×[0,Depth).
func (t *Topology) Index(x, y, z int) (int, error) {
	if x < 0 || x >= t.dims.Width || y < 0 || y >= t.dims.Height || z < 0 || z >= t.dims.Depth {
		return 0, ErrCoordOutOfRange
	}
	return x + y*t.dims.Width + z*t.dims.Width*t.dims.Height, nil
}

// Coordinate maps a flat cell index back to (x,y,z). Returns
// ErrIndexOutOfRange if idx lies outside [0, CellCount()).
func (t *Topology) Coordinate(idx int) (x, y, z int, err error) {
	if idx < 0 || idx >= t.CellCount() {
		return 0, 0, 0, ErrIndexOutOfRange
	}
	plane := t.dims.Width * t.dims.Height
	z = idx / plane
	rem := idx % plane
	y = rem / t.dims.Width
	x = rem % t.dims.Width

	return x, y, z, nil
}

// IsMasked reports whether cell idx is disabled. An out-of-range idx is
// reported as masked (conservative: never treated as a usable neighbor).
func (t *Topology) IsMasked(idx int) bool {
	if idx < 0 || idx >= t.CellCount() {
		return true
	}
	if t.mask == nil {
		return false
	}
	return t.mask[idx]
}

// TryMove resolves the neighbor of cell index reached by direction d.
// It wraps on periodic axes, fails (ok=false) when it would cross a
// non-periodic boundary, and fails when either index or the destination
// is masked off. A masked cell has no valid moves in either direction,
// so it never appears as a neighbor of, or reachable from, a real cell.
// Invariant: for any index,d where TryMove succeeds, stepping back by
// dirs.Inverse(d) from the result returns to index.
func (t *Topology) TryMove(index int, d direction.Direction) (neighbor int, ok bool) {
	if t.IsMasked(index) {
		return 0, false
	}

	x, y, z, err := t.Coordinate(index)
	if err != nil {
		return 0, false
	}
	v, err := t.dirs.Vector(d)
	if err != nil {
		return 0, false
	}

	nx, okx := t.step(x, v.DX, t.dims.Width, t.periodic.X)
	if !okx {
		return 0, false
	}
	ny, oky := t.step(y, v.DY, t.dims.Height, t.periodic.Y)
	if !oky {
		return 0, false
	}
	nz, okz := t.step(z, v.DZ, t.dims.Depth, t.periodic.Z)
	if !okz {
		return 0, false
	}

	ni, err := t.Index(nx, ny, nz)
	if err != nil {
		return 0, false
	}
	if t.IsMasked(ni) {
		return 0, false
	}

	return ni, true
}

// step advances a single coordinate by delta along an axis of the given
// extent, wrapping modulo extent when periodic is true and failing when the
// result falls outside [0,extent) otherwise.
func (t *Topology) step(coord, delta, extent int, periodic bool) (int, bool) {
	c := coord + delta
	if periodic {
		c %= extent
		if c < 0 {
			c += extent
		}
		return c, true
	}
	if c < 0 || c >= extent {
		return 0, false
	}
	return c, true
}
