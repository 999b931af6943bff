package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amazeing/maze"
)

// TestNew_InvalidDimensions verifies that sub-1 dimensions are rejected.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"NegativeWidth", -1, 5},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.width, tc.height)
			assert.ErrorIs(t, err, maze.ErrInvalidDimension)
		})
	}
}

// TestNew_AllWallsClosed verifies the initial state: every mask 0xF,
// nothing excluded, no open walls.
func TestNew_AllWallsClosed(t *testing.T) {
	g, err := maze.New(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.EligibleCells())
	assert.Zero(t, g.OpenWallCount())
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, uint8(0xF), g.WallMask(col, row))
			assert.False(t, g.Excluded(col, row))
		}
	}
}

// TestNeighbors_Order checks the fixed N, E, S, W enumeration order,
// which both the generator and the solver rely on for tie-breaking.
func TestNeighbors_Order(t *testing.T) {
	g, err := maze.New(3, 3)
	require.NoError(t, err)

	center := g.Neighbors(1, 1, nil)
	require.Len(t, center, 4)
	want := []maze.Neighbor{
		{Col: 1, Row: 0, Dir: maze.North},
		{Col: 2, Row: 1, Dir: maze.East},
		{Col: 1, Row: 2, Dir: maze.South},
		{Col: 0, Row: 1, Dir: maze.West},
	}
	assert.Equal(t, want, center)

	corner := g.Neighbors(0, 0, nil)
	require.Len(t, corner, 2)
	assert.Equal(t, maze.East, corner[0].Dir)
	assert.Equal(t, maze.South, corner[1].Dir)
}

// TestOpenWall_Symmetry verifies that opening a wall clears the
// matching bit on both sides.
func TestOpenWall_Symmetry(t *testing.T) {
	g, err := maze.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.OpenWall(0, 0, maze.East))
	assert.Equal(t, uint8(0xD), g.WallMask(0, 0), "east bit cleared on (0,0)")
	assert.Equal(t, uint8(0x7), g.WallMask(1, 0), "west bit cleared on (1,0)")
	assert.True(t, g.IsOpen(0, 0, maze.East))
	assert.True(t, g.IsOpen(1, 0, maze.West))
	assert.Equal(t, 1, g.OpenWallCount())

	require.NoError(t, g.OpenWall(1, 1, maze.North))
	assert.True(t, g.IsOpen(1, 0, maze.South))
	assert.Equal(t, 2, g.OpenWallCount())
}

// TestOpenWall_Errors covers the out-of-bounds and non-adjacent cases.
func TestOpenWall_Errors(t *testing.T) {
	g, err := maze.New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.OpenWall(5, 5, maze.North), maze.ErrOutOfBounds)
	assert.ErrorIs(t, g.OpenWall(0, 0, maze.North), maze.ErrNotAdjacent, "border wall has no neighbor")
	assert.ErrorIs(t, g.OpenWall(1, 1, maze.East), maze.ErrNotAdjacent)
}

// TestIsOpen_OutOfBounds: cells outside the grid report closed walls.
func TestIsOpen_OutOfBounds(t *testing.T) {
	g, err := maze.New(2, 2)
	require.NoError(t, err)
	assert.False(t, g.IsOpen(-1, 0, maze.East))
	assert.Equal(t, uint8(0xF), g.WallMask(9, 9))
}

// TestExclude marks cells and keeps them out of the eligible count.
func TestExclude(t *testing.T) {
	g, err := maze.New(3, 3)
	require.NoError(t, err)

	g.Exclude(1, 1)
	g.Exclude(-1, 7) // out of bounds: no-op
	assert.True(t, g.Excluded(1, 1))
	assert.False(t, g.Excluded(0, 0))
	assert.Equal(t, 8, g.EligibleCells())
}

// TestFromMasks rebuilds a grid and rejects empty or ragged input.
func TestFromMasks(t *testing.T) {
	g, err := maze.FromMasks([][]uint8{{0xD, 0x7}, {0xF, 0xF}})
	require.NoError(t, err)
	assert.Equal(t, uint8(0xD), g.WallMask(0, 0))
	assert.True(t, g.IsOpen(0, 0, maze.East))

	_, err = maze.FromMasks(nil)
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	_, err = maze.FromMasks([][]uint8{{}})
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	_, err = maze.FromMasks([][]uint8{{1, 2}, {3}})
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

// TestDirection covers bits, deltas, opposites, and token parsing.
func TestDirection(t *testing.T) {
	assert.Equal(t, uint8(1), maze.North.Bit())
	assert.Equal(t, uint8(2), maze.East.Bit())
	assert.Equal(t, uint8(4), maze.South.Bit())
	assert.Equal(t, uint8(8), maze.West.Bit())

	assert.Equal(t, maze.South, maze.North.Opposite())
	assert.Equal(t, maze.West, maze.East.Opposite())
	assert.Equal(t, maze.North, maze.South.Opposite())
	assert.Equal(t, maze.East, maze.West.Opposite())

	for _, d := range maze.Directions {
		got, err := maze.ParseDirection(d.String()[0])
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := maze.ParseDirection('Q')
	assert.Error(t, err)
}

// TestCoord covers the 1-based/0-based boundary conversions.
func TestCoord(t *testing.T) {
	c := maze.Coord{X: 3, Y: 2}
	col, row := c.ColRow()
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, row)
	assert.Equal(t, c, maze.CoordAt(2, 1))
	assert.Equal(t, "3,2", c.String())
	assert.Equal(t, maze.Coord{X: 3, Y: 1}, c.Step(maze.North))
	assert.Equal(t, maze.Coord{X: 4, Y: 2}, c.Step(maze.East))
}
