// Package solve finds shortest paths through a carved maze.
//
// ShortestPath runs breadth-first search from the entry cell over open
// walls only, expanding each frontier cell's neighbors in fixed
// N, E, S, W order so ties between equal-length paths resolve the same
// way on every run. Each reached cell records the direction actually
// traveled into it; the path is rebuilt by walking predecessors back to
// the entry and reversing.
//
// In a perfect maze the returned path is the unique simple path between
// the two cells; in a braided maze it is one of the shortest.
//
// Complexity: O(W×H) time and memory.
//
// Errors:
//
//   - ErrNilGrid: nil grid pointer.
//   - ErrNoPath: exit is out of bounds, excluded, or unreachable from
//     entry. In a correctly generated maze this marks a generator
//     invariant violation and is surfaced, never recovered.
package solve

import (
	"errors"

	"github.com/katalvlaran/amazeing/maze"
)

// Sentinel errors for path search.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("solve: grid is nil")
	// ErrNoPath is returned when no open-wall route joins entry and exit.
	ErrNoPath = errors.New("solve: no path between entry and exit")
)

// queueItem is one BFS frontier entry, kept as a struct so the frontier
// can grow extra bookkeeping without touching the loop.
type queueItem struct {
	idx int
}

// ShortestPath returns the minimal direction sequence from entry to
// exit. A zero-length path is returned only when entry equals exit;
// callers that forbid that case reject it before searching.
func ShortestPath(g *maze.Grid, entry, exit maze.Coord) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	ec, er := entry.ColRow()
	xc, xr := exit.ColRow()
	if !g.InBounds(ec, er) || g.Excluded(ec, er) ||
		!g.InBounds(xc, xr) || g.Excluded(xc, xr) {
		return nil, ErrNoPath
	}

	n := g.Width() * g.Height()
	startIdx := er*g.Width() + ec
	goalIdx := xr*g.Width() + xc
	if startIdx == goalIdx {
		return Path{}, nil
	}

	visited := make([]bool, n)
	prev := make([]int, n)
	via := make([]maze.Direction, n)
	queue := make([]queueItem, 0, n)

	visited[startIdx] = true
	queue = append(queue, queueItem{idx: startIdx})

	scratch := make([]maze.Neighbor, 0, 4)
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.idx == goalIdx {
			break
		}
		col, row := item.idx%g.Width(), item.idx/g.Width()
		scratch = g.Neighbors(col, row, scratch[:0])
		for _, nb := range scratch {
			if !g.IsOpen(col, row, nb.Dir) || g.Excluded(nb.Col, nb.Row) {
				continue
			}
			nidx := nb.Row*g.Width() + nb.Col
			if visited[nidx] {
				continue
			}
			visited[nidx] = true
			prev[nidx] = item.idx
			via[nidx] = nb.Dir
			queue = append(queue, queueItem{idx: nidx})
		}
	}

	if !visited[goalIdx] {
		return nil, ErrNoPath
	}

	// Reconstruct backwards, then reverse. Each recorded direction is
	// the one actually traveled, not its opposite.
	path := Path{}
	for cur := goalIdx; cur != startIdx; cur = prev[cur] {
		path = append(path, via[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
