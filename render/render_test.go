package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amazeing/maze"
	"github.com/katalvlaran/amazeing/mazefile"
	"github.com/katalvlaran/amazeing/render"
	"github.com/katalvlaran/amazeing/solve"
)

// corridorDoc is a 3×1 maze with both interior walls open and the
// solution running straight through: E...*...X.
func corridorDoc(t *testing.T) *mazefile.Document {
	t.Helper()
	g, err := maze.New(3, 1)
	require.NoError(t, err)
	require.NoError(t, g.OpenWall(0, 0, maze.East))
	require.NoError(t, g.OpenWall(1, 0, maze.East))
	return &mazefile.Document{
		Grid:  g,
		Entry: maze.Coord{X: 1, Y: 1},
		Exit:  maze.Coord{X: 3, Y: 1},
		Path:  solve.Path{maze.East, maze.East},
	}
}

// TestASCII_Markers: entry, exit, and path cells carry their markers.
func TestASCII_Markers(t *testing.T) {
	doc := corridorDoc(t)

	plain := render.ASCII(doc, false)
	assert.Contains(t, plain, "E")
	assert.Contains(t, plain, "X")
	assert.NotContains(t, plain, "*", "path hidden by default")

	withPath := render.ASCII(doc, true)
	assert.Contains(t, withPath, "*", "middle cell marked when the overlay is on")
}

// TestASCII_Walls: open walls leave gaps, closed walls draw bars.
func TestASCII_Walls(t *testing.T) {
	doc := corridorDoc(t)
	out := render.ASCII(doc, false)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3, "top border, cell row, bottom border")

	assert.Equal(t, "+---+---+---+", lines[0])
	assert.Equal(t, "| E       X |", lines[1], "open interior walls leave gaps")
	assert.Equal(t, "+---+---+---+", lines[2])
}

// TestASCII_ClosedCellMarker: fully walled cells read as decoration.
func TestASCII_ClosedCellMarker(t *testing.T) {
	g, err := maze.New(2, 1)
	require.NoError(t, err)
	doc := &mazefile.Document{Grid: g, Entry: maze.Coord{X: 1, Y: 1}, Exit: maze.Coord{X: 1, Y: 1}}
	// (1,0) was never opened: mask 0xF renders as '#'... unless it is
	// the entry or exit, which take precedence.
	out := render.ASCII(doc, false)
	assert.Contains(t, out, "#")
}

// TestImage_Dimensions: the raster is CellSize pixels per cell.
func TestImage_Dimensions(t *testing.T) {
	doc := corridorDoc(t)

	img := render.Image(doc, render.Options{})
	assert.Equal(t, 3*render.DefaultCellSize, img.Bounds().Dx())
	assert.Equal(t, render.DefaultCellSize, img.Bounds().Dy())

	small := render.Image(doc, render.Options{CellSize: 4})
	assert.Equal(t, 12, small.Bounds().Dx())
	assert.Equal(t, 4, small.Bounds().Dy())
}

// TestImage_Colors spots the entry fill and a wall pixel.
func TestImage_Colors(t *testing.T) {
	doc := corridorDoc(t)
	img := render.Image(doc, render.Options{CellSize: 8})

	// Center of the entry cell is the entry fill.
	assert.Equal(t, render.WallPalette[0], img.NRGBAAt(0, 0), "top-left pixel sits on the north wall")
	entry := img.NRGBAAt(4, 4)
	assert.Equal(t, uint8(0xFF), entry.R)
	assert.Equal(t, uint8(0x00), entry.G)
}

// TestImage_PaletteCycles: any index maps into the palette.
func TestImage_PaletteCycles(t *testing.T) {
	doc := corridorDoc(t)
	a := render.Image(doc, render.Options{Palette: 1})
	b := render.Image(doc, render.Options{Palette: 1 + len(render.WallPalette)})
	assert.Equal(t, a.Pix, b.Pix)
}

// TestWritePNG produces a decodable PNG.
func TestWritePNG(t *testing.T) {
	doc := corridorDoc(t)
	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, doc, render.Options{ShowPath: true}))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3*render.DefaultCellSize, cfg.Width)
	assert.Equal(t, render.DefaultCellSize, cfg.Height)
}
