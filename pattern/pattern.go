// Package pattern computes the fixed "42" decoration carved into the
// center of a maze grid.
//
// What:
//
//   - A hardcoded 5×7 glyph bitmap, centered on the grid.
//   - Mask(width, height) returns the set of reserved cell positions.
//   - Apply marks those positions as excluded on a maze.Grid, so the
//     generator and solver treat them as permanently walled.
//
// Why:
//
//   - Keeping the glyph as a precomputed exclusion set keeps the carver
//     a pure graph algorithm over eligible cells; no glyph logic leaks
//     into the backtracking loop.
//
// Sizing policy:
//
//   - Grids narrower than 7 columns or shorter than 5 rows omit the
//     glyph entirely. There is no partial clipping: a truncated glyph
//     would not read as "42", so small grids simply carry no decoration.
//
// Complexity: Mask is O(1) (bounded by the 5×7 bitmap); Apply is
// O(|mask|).
package pattern

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/amazeing/maze"
)

// Glyph dimensions in cells.
const (
	GlyphWidth  = 7
	GlyphHeight = 5
)

// glyph42 is the "42" bitmap, row-major, top row first. A 1 marks a
// reserved cell. Data only; placement lives in Mask.
var glyph42 = [GlyphHeight][GlyphWidth]uint8{
	{1, 0, 1, 0, 1, 1, 1},
	{1, 0, 1, 0, 0, 0, 1},
	{1, 1, 1, 0, 1, 1, 1},
	{0, 0, 1, 0, 1, 0, 0},
	{0, 0, 1, 0, 1, 1, 1},
}

// Point is a 0-based (col, row) cell position inside the grid.
type Point struct {
	Col, Row int
}

// Mask returns the set of cells reserved for the glyph on a
// width×height grid. The glyph's top-left corner sits at
// ((width-7)/2, (height-5)/2); grids too small for the full glyph
// yield an empty set.
func Mask(width, height int) mapset.Set[Point] {
	set := mapset.New[Point]()
	if width < GlyphWidth || height < GlyphHeight {
		return set
	}
	startCol := (width - GlyphWidth) / 2
	startRow := (height - GlyphHeight) / 2
	for r := 0; r < GlyphHeight; r++ {
		for c := 0; c < GlyphWidth; c++ {
			if glyph42[r][c] == 1 {
				set.Put(Point{Col: startCol + c, Row: startRow + r})
			}
		}
	}
	return set
}

// Apply marks every masked cell as excluded on g. Walls of excluded
// cells are already closed on a fresh grid and stay closed because the
// generator never enters them.
func Apply(g *maze.Grid, mask mapset.Set[Point]) {
	mask.Each(func(p Point) {
		g.Exclude(p.Col, p.Row)
	})
}

// Contains reports whether the 1-based coordinate c falls inside mask.
// Used by parameter validation to reject entries and exits placed on
// the decoration.
func Contains(mask mapset.Set[Point], c maze.Coord) bool {
	col, row := c.ColRow()
	return mask.Has(Point{Col: col, Row: row})
}
