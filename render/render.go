// Package render produces read-only views of a decoded maze document:
// an ASCII rendering for terminals and a PNG raster mirroring the
// original visualizer's drawing rules (entry red, exit green, center
// decoration yellow, solution blue, walls in a cycling palette).
//
// The package only consumes Document data; it never mutates a grid and
// the core never depends on it.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/katalvlaran/amazeing/maze"
	"github.com/katalvlaran/amazeing/mazefile"
)

// DefaultCellSize is the raster cell edge in pixels.
const DefaultCellSize = 20

// WallPalette holds the selectable wall colors, in cycling order.
var WallPalette = []color.NRGBA{
	argb(0xFFFFFFFF), // white
	argb(0xFFFF00FF), // magenta
	argb(0xFF00FFFF), // cyan
	argb(0xFFFFFF00), // yellow
	argb(0xFFFF8800), // orange
}

var (
	backgroundColor = argb(0xFF000000)
	entryColor      = argb(0xFFFF0000)
	exitColor       = argb(0xFF00FF00)
	pathColor       = argb(0xFF0000FF)
	patternColor    = argb(0xFFFFFF00)
	closedFillColor = argb(0xAAFFFFFF)
)

// Options selects raster parameters. The zero value is usable:
// DefaultCellSize cells, first palette color, no path overlay.
type Options struct {
	// CellSize is the cell edge in pixels; values < 1 fall back to
	// DefaultCellSize.
	CellSize int
	// Palette indexes WallPalette (modulo its length).
	Palette int
	// ShowPath overlays the solution cells in the path color.
	ShowPath bool
}

// argb converts a packed 0xAARRGGBB value.
func argb(v uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Image rasterizes doc into an NRGBA image of
// (W×CellSize)×(H×CellSize) pixels.
func Image(doc *mazefile.Document, opts Options) *image.NRGBA {
	cell := opts.CellSize
	if cell < 1 {
		cell = DefaultCellSize
	}
	wallColor := WallPalette[((opts.Palette%len(WallPalette))+len(WallPalette))%len(WallPalette)]

	g := doc.Grid
	img := image.NewNRGBA(image.Rect(0, 0, g.Width()*cell, g.Height()*cell))

	onPath := pathCells(doc, opts.ShowPath)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			x0, y0 := col*cell, row*cell
			mask := g.WallMask(col, row)
			closed := mask == 0xF

			fillRect(img, x0, y0, x0+cell, y0+cell, cellBackground(doc, col, row, closed, onPath))

			if mask&maze.North.Bit() != 0 {
				fillRect(img, x0, y0, x0+cell, y0+1, wallColor)
			}
			if mask&maze.South.Bit() != 0 {
				fillRect(img, x0, y0+cell-1, x0+cell, y0+cell, wallColor)
			}
			if mask&maze.East.Bit() != 0 {
				fillRect(img, x0+cell-1, y0, x0+cell, y0+cell, wallColor)
			}
			if mask&maze.West.Bit() != 0 {
				fillRect(img, x0, y0, x0+1, y0+cell, wallColor)
			}
			if closed {
				fillRect(img, x0+1, y0+1, x0+cell-1, y0+cell-1, closedFillColor)
			}
		}
	}
	return img
}

// WritePNG rasterizes doc and PNG-encodes it to w.
func WritePNG(w io.Writer, doc *mazefile.Document, opts Options) error {
	return png.Encode(w, Image(doc, opts))
}

// cellBackground applies the original precedence: entry, exit,
// decoration, path, plain background.
func cellBackground(doc *mazefile.Document, col, row int, closed bool, onPath map[maze.Coord]bool) color.NRGBA {
	c := maze.CoordAt(col, row)
	switch {
	case c == doc.Entry:
		return entryColor
	case c == doc.Exit:
		return exitColor
	case closed:
		return patternColor
	case onPath[c]:
		return pathColor
	default:
		return backgroundColor
	}
}

// pathCells collects the solution's coordinates when the overlay is on.
func pathCells(doc *mazefile.Document, show bool) map[maze.Coord]bool {
	if !show {
		return nil
	}
	cells := make(map[maze.Coord]bool, len(doc.Path)+1)
	for _, c := range doc.Path.Walk(doc.Entry) {
		cells[c] = true
	}
	return cells
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// ASCII renders doc as box-drawing text, one "+---+" band per row.
// Cell interiors mark the entry (E), exit (X), decoration (#), and,
// when showPath is set, the solution (*).
func ASCII(doc *mazefile.Document, showPath bool) string {
	g := doc.Grid
	onPath := pathCells(doc, showPath)

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("---+", g.Width()) + "\n")
	for row := 0; row < g.Height(); row++ {
		b.WriteString("|")
		for col := 0; col < g.Width(); col++ {
			b.WriteString(" " + cellRune(doc, col, row, onPath) + " ")
			if g.IsOpen(col, row, maze.East) && col+1 < g.Width() {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < g.Width(); col++ {
			if g.IsOpen(col, row, maze.South) && row+1 < g.Height() {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cellRune(doc *mazefile.Document, col, row int, onPath map[maze.Coord]bool) string {
	c := maze.CoordAt(col, row)
	switch {
	case c == doc.Entry:
		return "E"
	case c == doc.Exit:
		return "X"
	case doc.Grid.WallMask(col, row) == 0xF:
		return "#"
	case onPath[c]:
		return "*"
	default:
		return " "
	}
}
