package maze

// cell is the per-position state: the 4-bit wall mask plus the
// exclusion flag set by a pattern mask before generation.
type cell struct {
	walls    uint8
	excluded bool
}

// allClosed is the wall mask of a cell with all four walls closed.
const allClosed uint8 = 0xF

// Grid owns a rectangular, row-major array of cells. Apart from the
// exclusion flags it is mutated only through OpenWall, which keeps the
// two-sided wall invariant: the open/closed state of a shared wall
// always agrees from both cells.
type Grid struct {
	width, height int
	cells         []cell
}

// New constructs a width×height grid with every wall closed, no cell
// excluded. Returns ErrInvalidDimension if either dimension is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimension
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i := range g.cells {
		g.cells[i].walls = allClosed
	}
	return g, nil
}

// FromMasks reconstructs a grid from a row-major wall-mask matrix, as
// produced by decoding a maze document. Returns ErrInvalidDimension if
// the matrix is empty or ragged. Mask values are stored verbatim; the
// caller is responsible for validating wall symmetry beforehand.
func FromMasks(masks [][]uint8) (*Grid, error) {
	if len(masks) == 0 || len(masks[0]) == 0 {
		return nil, ErrInvalidDimension
	}
	h, w := len(masks), len(masks[0])
	for _, row := range masks {
		if len(row) != w {
			return nil, ErrInvalidDimension
		}
	}
	g := &Grid{width: w, height: h, cells: make([]cell, w*h)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			g.cells[row*w+col].walls = masks[row][col] & allClosed
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether 0-based (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// index maps (col, row) to the row-major cell index.
func (g *Grid) index(col, row int) int { return row*g.width + col }

// Neighbors appends to dst the up-to-4 in-bounds neighbors of
// (col, row), paired with the connecting direction, in fixed
// N, E, S, W order, and returns the extended slice. The order is the
// shared tie-break rule for generation and search. Passing a reusable
// dst avoids per-call allocation in traversal loops.
func (g *Grid) Neighbors(col, row int, dst []Neighbor) []Neighbor {
	for _, d := range Directions {
		dc, dr := d.Delta()
		nc, nr := col+dc, row+dr
		if g.InBounds(nc, nr) {
			dst = append(dst, Neighbor{Col: nc, Row: nr, Dir: d})
		}
	}
	return dst
}

// OpenWall clears the wall on side d of (col, row) and the matching
// wall of the adjacent cell, atomically from the caller's perspective.
// Returns ErrOutOfBounds if (col, row) is outside the grid and
// ErrNotAdjacent if the cell on side d is.
func (g *Grid) OpenWall(col, row int, d Direction) error {
	if !g.InBounds(col, row) {
		return ErrOutOfBounds
	}
	dc, dr := d.Delta()
	nc, nr := col+dc, row+dr
	if !g.InBounds(nc, nr) {
		return ErrNotAdjacent
	}
	g.cells[g.index(col, row)].walls &^= d.Bit()
	g.cells[g.index(nc, nr)].walls &^= d.Opposite().Bit()
	return nil
}

// IsOpen reports whether the wall on side d of (col, row) is open.
// Out-of-bounds cells report false (all walls closed).
func (g *Grid) IsOpen(col, row int, d Direction) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.cells[g.index(col, row)].walls&d.Bit() == 0
}

// WallMask returns the 4-bit wall mask of (col, row); out-of-bounds
// cells report all walls closed.
func (g *Grid) WallMask(col, row int) uint8 {
	if !g.InBounds(col, row) {
		return allClosed
	}
	return g.cells[g.index(col, row)].walls
}

// Exclude marks (col, row) as reserved: permanently walled, never
// entered by generation or search. No-op outside the grid.
func (g *Grid) Exclude(col, row int) {
	if g.InBounds(col, row) {
		g.cells[g.index(col, row)].excluded = true
	}
}

// Excluded reports whether (col, row) carries the exclusion flag.
func (g *Grid) Excluded(col, row int) bool {
	return g.InBounds(col, row) && g.cells[g.index(col, row)].excluded
}

// EligibleCells counts the cells not excluded by a pattern mask.
func (g *Grid) EligibleCells() int {
	n := 0
	for i := range g.cells {
		if !g.cells[i].excluded {
			n++
		}
	}
	return n
}

// OpenWallCount returns the number of open interior walls. Each shared
// wall is counted once. Complexity: O(W×H).
func (g *Grid) OpenWallCount() int {
	n := 0
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if col+1 < g.width && g.IsOpen(col, row, East) {
				n++
			}
			if row+1 < g.height && g.IsOpen(col, row, South) {
				n++
			}
		}
	}
	return n
}
