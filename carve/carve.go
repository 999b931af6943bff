// Package carve generates mazes by seeded recursive backtracking over a
// maze.Grid, honoring pattern exclusions.
//
// What:
//
//   - Generate mutates a fresh all-walls-closed grid into a maze whose
//     eligible (non-excluded) cells form a spanning tree, then
//     optionally braids it with extra openings to create cycles.
//   - The backtracker runs iteratively on an explicit stack, so call
//     depth stays O(1) regardless of grid size.
//
// Determinism:
//
//   - Same grid dimensions, exclusions, entry, and seed produce the same
//     maze on the same Go version. Candidate neighbors are gathered in
//     fixed N, E, S, W order and Fisher–Yates-shuffled with the seeded
//     stream; the braid pass scans walls in row-major order. All
//     randomness flows through one *rand.Rand per Generate call, so a
//     recorded seed fully reproduces a run; concurrent generations never
//     share a stream.
//
// Complexity: O(W×H) time and memory.
//
// Errors:
//
//   - ErrNilGrid: nil grid pointer.
//   - ErrEmptyEligibleSet: the exclusion mask covers the whole grid.
//   - ErrUnreachable: entry or exit excluded or isolated after carving.
package carve

import (
	mrand "math/rand"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/amazeing/maze"
)

// pos is a 0-based cell position on the generator's stack.
type pos struct {
	col, row int
}

// walker encapsulates mutable generation state for a single run.
type walker struct {
	grid    *maze.Grid
	rng     *mrand.Rand
	visited []bool
	stack   []pos
	scratch []maze.Neighbor
	res     *Result
}

// Generate carves a maze into g, starting from entry. Exclusion flags
// must already be applied (see pattern.Apply); excluded cells are never
// entered and keep all four walls. On success the returned Result holds
// the effective seed and carve statistics.
//
// If entry sits on an excluded cell the carve still runs from the
// nearest eligible cell so the rest of the grid is fully formed, but
// Generate then reports ErrUnreachable: a maze whose entry cannot be
// entered has no valid solution.
func Generate(g *maze.Grid, entry, exit maze.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.EligibleCells() == 0 {
		return nil, ErrEmptyEligibleSet
	}
	ec, er := entry.ColRow()
	xc, xr := exit.ColRow()
	if !g.InBounds(ec, er) || !g.InBounds(xc, xr) {
		return nil, ErrUnreachable
	}

	seed := o.Seed
	if !o.HasSeed {
		seed = entropySeed()
	}

	w := &walker{
		grid:    g,
		rng:     rngFromSeed(seed),
		visited: make([]bool, g.Width()*g.Height()),
		stack:   make([]pos, 0, g.Width()*g.Height()),
		scratch: make([]maze.Neighbor, 0, 4),
		res:     &Result{Seed: seed},
	}

	start, ok := w.startCell(entry)
	if !ok {
		// Exclusions cover everything around entry as well; nothing to do.
		return nil, ErrEmptyEligibleSet
	}
	w.carve(start)

	if !o.Perfect {
		w.braid(o.BraidFactor)
	}

	if err := w.audit(entry, exit); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// startCell resolves the carve start: entry itself when eligible,
// otherwise the nearest eligible cell found by an expanding square ring
// search around it. Returns ok=false when no eligible cell exists.
func (w *walker) startCell(entry maze.Coord) (pos, bool) {
	col, row := entry.ColRow()
	if w.eligible(col, row) {
		return pos{col, row}, true
	}
	limit := max(w.grid.Width(), w.grid.Height())
	for radius := 1; radius < limit; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if w.eligible(col+dc, row+dr) {
					return pos{col + dc, row + dr}, true
				}
			}
		}
	}
	return pos{}, false
}

// eligible reports whether (col,row) is in bounds and not excluded.
func (w *walker) eligible(col, row int) bool {
	return w.grid.InBounds(col, row) && !w.grid.Excluded(col, row)
}

// carve runs the iterative backtracker from start until every eligible
// cell reachable from it has been visited.
func (w *walker) carve(start pos) {
	w.mark(start)
	w.stack = append(w.stack, start)

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		cand := w.unvisitedNeighbors(top)
		if len(cand) == 0 {
			w.stack = w.stack[:len(w.stack)-1] // backtrack
			continue
		}
		shuffleNeighbors(cand, w.rng)
		next := cand[0]
		// In-bounds by construction; the error path cannot trigger here.
		_ = w.grid.OpenWall(top.col, top.row, next.Dir)
		w.res.OpenedWalls++
		w.mark(pos{next.Col, next.Row})
		w.stack = append(w.stack, pos{next.Col, next.Row})
	}
}

// unvisitedNeighbors gathers the unvisited, non-excluded neighbors of p
// in N, E, S, W order, reusing the walker's scratch slice.
func (w *walker) unvisitedNeighbors(p pos) []maze.Neighbor {
	w.scratch = w.grid.Neighbors(p.col, p.row, w.scratch[:0])
	k := 0
	for _, nb := range w.scratch {
		if !w.visited[w.cellIndex(nb.Col, nb.Row)] && !w.grid.Excluded(nb.Col, nb.Row) {
			w.scratch[k] = nb
			k++
		}
	}
	return w.scratch[:k]
}

// mark flags p visited and counts it as carved.
func (w *walker) mark(p pos) {
	w.visited[w.cellIndex(p.col, p.row)] = true
	w.res.Carved++
}

// cellIndex maps (col,row) to the row-major index shared with the grid.
func (w *walker) cellIndex(col, row int) int { return row*w.grid.Width() + col }

// braid opens a random subset of the remaining interior walls, turning
// the spanning tree into a maze with cycles. Walls are enumerated
// row-major, North then East per cell, so each shared wall is
// considered exactly once and the pass is deterministic for a given
// RNG stream. Removing walls only adds edges, so connectivity over
// eligible cells is preserved.
func (w *walker) braid(factor float64) {
	for row := 0; row < w.grid.Height(); row++ {
		for col := 0; col < w.grid.Width(); col++ {
			if !w.eligible(col, row) {
				continue
			}
			for _, d := range [2]maze.Direction{maze.North, maze.East} {
				dc, dr := d.Delta()
				nc, nr := col+dc, row+dr
				if !w.eligible(nc, nr) || w.grid.IsOpen(col, row, d) {
					continue
				}
				if w.rng.Float64() < factor {
					_ = w.grid.OpenWall(col, row, d)
					w.res.OpenedWalls++
				}
			}
		}
	}
}

// audit verifies with a union-find pass that entry and exit are
// eligible and connected through open walls. It re-derives connectivity
// from the finished wall masks rather than trusting the carve
// bookkeeping, so any symmetry or reachability violation surfaces here
// as ErrUnreachable.
func (w *walker) audit(entry, exit maze.Coord) error {
	ec, er := entry.ColRow()
	xc, xr := exit.ColRow()
	if !w.eligible(ec, er) || !w.eligible(xc, xr) {
		return ErrUnreachable
	}

	elems := make([]*disjoint.Element, w.grid.Width()*w.grid.Height())
	for row := 0; row < w.grid.Height(); row++ {
		for col := 0; col < w.grid.Width(); col++ {
			elems[w.cellIndex(col, row)] = disjoint.NewElement()
		}
	}
	for row := 0; row < w.grid.Height(); row++ {
		for col := 0; col < w.grid.Width(); col++ {
			if w.grid.IsOpen(col, row, maze.East) && w.grid.InBounds(col+1, row) {
				disjoint.Union(elems[w.cellIndex(col, row)], elems[w.cellIndex(col+1, row)])
			}
			if w.grid.IsOpen(col, row, maze.South) && w.grid.InBounds(col, row+1) {
				disjoint.Union(elems[w.cellIndex(col, row)], elems[w.cellIndex(col, row+1)])
			}
		}
	}
	if elems[w.cellIndex(ec, er)].Find() != elems[w.cellIndex(xc, xr)].Find() {
		return ErrUnreachable
	}
	return nil
}
