// Package maze provides the W×H cell grid underlying maze generation,
// solving, and encoding. It supports:
//
//   - All-walls-closed construction and reconstruction from wall masks
//   - Symmetric two-sided wall opening between adjacent cells
//   - Neighbor enumeration in fixed N, E, S, W order
//   - Per-cell exclusion flags for cells reserved by a pattern mask
//
// The grid stores one byte per cell: bit0=North, bit1=East, bit2=South,
// bit3=West, a set bit meaning that wall is closed.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrInvalidDimension indicates a grid width or height below 1,
	// or a non-rectangular wall-mask matrix.
	ErrInvalidDimension = errors.New("maze: width and height must be at least 1")
	// ErrNotAdjacent indicates a wall operation between cells that are
	// not grid-adjacent (the target lies outside the grid).
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")
	// ErrOutOfBounds indicates a cell reference outside the grid.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
)

// Direction is one of the four cardinal wall directions.
// The iteration order North, East, South, West is fixed and shared by
// the generator and the solver; it determines every deterministic
// tie-break, so it must never change.
type Direction uint8

const (
	// North is toward row-1 (up).
	North Direction = iota
	// East is toward col+1 (right).
	East
	// South is toward row+1 (down).
	South
	// West is toward col-1 (left).
	West
)

// Directions lists all four directions in canonical N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// deltas is indexed by Direction: column and row offsets of one step.
var deltas = [4][2]int{
	{0, -1}, // North
	{1, 0},  // East
	{0, 1},  // South
	{-1, 0}, // West
}

// Bit returns the wall-mask bit for d: North=1, East=2, South=4, West=8.
// A set bit means the wall is closed.
func (d Direction) Bit() uint8 { return 1 << d }

// Delta returns the (col, row) offset of one step in direction d.
func (d Direction) Delta() (dc, dr int) { return deltas[d][0], deltas[d][1] }

// Opposite returns the reverse direction (North↔South, East↔West).
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// String returns the single-letter token used in path strings.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}

// ParseDirection maps a path token byte (N/E/S/W) to a Direction.
func ParseDirection(b byte) (Direction, error) {
	switch b {
	case 'N':
		return North, nil
	case 'E':
		return East, nil
	case 'S':
		return South, nil
	case 'W':
		return West, nil
	default:
		return 0, fmt.Errorf("maze: invalid direction token %q", string(b))
	}
}

// Coord is an external, 1-based coordinate: X indexes columns
// left-to-right, Y indexes rows top-to-bottom. All file formats (config
// and maze documents) use this form; the grid itself is 0-based.
type Coord struct {
	X, Y int
}

// ColRow converts c to 0-based (col, row) grid indices.
func (c Coord) ColRow() (col, row int) { return c.X - 1, c.Y - 1 }

// CoordAt builds the 1-based Coord for 0-based (col, row).
func CoordAt(col, row int) Coord { return Coord{X: col + 1, Y: row + 1} }

// Step returns the coordinate one cell away from c in direction d.
func (c Coord) Step(d Direction) Coord {
	dc, dr := d.Delta()
	return Coord{X: c.X + dc, Y: c.Y + dr}
}

// String renders c in the "x,y" document form.
func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Neighbor pairs an adjacent cell's 0-based position with the direction
// that leads to it from the cell it was enumerated for.
type Neighbor struct {
	Col, Row int
	Dir      Direction
}
