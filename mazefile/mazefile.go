// Package mazefile encodes and decodes the textual maze document.
//
// Document layout (one maze per document):
//
//	<H lines of W hex digits, one line per row, top row first>
//	<blank line>
//	<entry as x,y, 1-based>
//	<exit as x,y, 1-based>
//	<solution path as concatenated N/S/E/W tokens>
//
// Each hex digit is a cell's 4-bit wall mask: bit0=North(1),
// bit1=East(2), bit2=South(4), bit3=West(8); a set bit means that wall
// is closed. Digit A = binary 1010 = East and West closed, North and
// South open.
//
// Decoding is strict: structural problems, non-hex digits, wall masks
// that disagree between neighboring cells, out-of-range coordinates,
// and bad path tokens all fail with ErrMalformedDocument, wrapped with
// the offending line. Nothing is silently repaired.
package mazefile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/amazeing/maze"
	"github.com/katalvlaran/amazeing/solve"
)

// ErrMalformedDocument is returned for any structural or semantic
// defect found while decoding. Inspect the wrapped message for the
// line and field that failed.
var ErrMalformedDocument = errors.New("mazefile: malformed document")

const hexDigits = "0123456789ABCDEF"

// Document bundles everything a maze document carries.
type Document struct {
	Grid        *maze.Grid
	Entry, Exit maze.Coord
	Path        solve.Path
}

// EncodeMatrix renders g as H lines of W uppercase hex digits.
// Complexity: O(W×H).
func EncodeMatrix(g *maze.Grid) []string {
	lines := make([]string, g.Height())
	var b strings.Builder
	for row := 0; row < g.Height(); row++ {
		b.Reset()
		b.Grow(g.Width())
		for col := 0; col < g.Width(); col++ {
			b.WriteByte(hexDigits[g.WallMask(col, row)])
		}
		lines[row] = b.String()
	}
	return lines
}

// EncodeDocument assembles the full output document, trailing newline
// included.
func EncodeDocument(g *maze.Grid, entry, exit maze.Coord, path solve.Path) string {
	parts := []string{
		strings.Join(EncodeMatrix(g), "\n"),
		"",
		entry.String(),
		exit.String(),
		path.String(),
		"",
	}
	return strings.Join(parts, "\n")
}

// Encode is the Document-level convenience for EncodeDocument.
func (d *Document) Encode() string {
	return EncodeDocument(d.Grid, d.Entry, d.Exit, d.Path)
}

// DecodeDocument parses text back into a Document. The inverse of
// EncodeDocument up to hex-digit case.
func DecodeDocument(text string) (*Document, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	blank := -1
	for i, line := range lines {
		if line == "" {
			blank = i
			break
		}
	}
	if blank < 1 {
		return nil, fmt.Errorf("%w: missing matrix or blank separator line", ErrMalformedDocument)
	}
	tail := lines[blank+1:]
	if len(tail) != 3 {
		return nil, fmt.Errorf("%w: expected entry, exit, and path after line %d, got %d lines",
			ErrMalformedDocument, blank+1, len(tail))
	}

	masks, err := parseMatrix(lines[:blank])
	if err != nil {
		return nil, err
	}
	grid, err := maze.FromMasks(masks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	entry, err := parseCoord(tail[0], blank+2, grid)
	if err != nil {
		return nil, err
	}
	exit, err := parseCoord(tail[1], blank+3, grid)
	if err != nil {
		return nil, err
	}
	path, err := solve.Parse(tail[2])
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedDocument, blank+4, err)
	}

	return &Document{Grid: grid, Entry: entry, Exit: exit, Path: path}, nil
}

// parseMatrix converts the hex rows to wall masks and verifies the
// two-sided wall invariant between every pair of adjacent cells.
func parseMatrix(rows []string) ([][]uint8, error) {
	width := len(rows[0])
	masks := make([][]uint8, len(rows))
	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d: row width %d, expected %d",
				ErrMalformedDocument, r+1, len(line), width)
		}
		masks[r] = make([]uint8, width)
		for c := 0; c < width; c++ {
			v, err := strconv.ParseUint(string(line[c]), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: column %d: invalid hex digit %q",
					ErrMalformedDocument, r+1, c+1, string(line[c]))
			}
			masks[r][c] = uint8(v)
		}
	}

	// A wall shared by two cells must be open or closed from both sides.
	for r := range masks {
		for c := range masks[r] {
			if c+1 < width {
				east := masks[r][c]&maze.East.Bit() != 0
				west := masks[r][c+1]&maze.West.Bit() != 0
				if east != west {
					return nil, fmt.Errorf("%w: line %d: column %d: east wall disagrees with its neighbor",
						ErrMalformedDocument, r+1, c+1)
				}
			}
			if r+1 < len(masks) {
				south := masks[r][c]&maze.South.Bit() != 0
				north := masks[r+1][c]&maze.North.Bit() != 0
				if south != north {
					return nil, fmt.Errorf("%w: line %d: column %d: south wall disagrees with its neighbor",
						ErrMalformedDocument, r+1, c+1)
				}
			}
		}
	}
	return masks, nil
}

// parseCoord parses a 1-based "x,y" line and bounds-checks it against
// the decoded grid.
func parseCoord(line string, lineNo int, g *maze.Grid) (maze.Coord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return maze.Coord{}, fmt.Errorf("%w: line %d: expected \"x,y\", got %q",
			ErrMalformedDocument, lineNo, line)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil || x < 1 || y < 1 {
		return maze.Coord{}, fmt.Errorf("%w: line %d: coordinates must be two positive integers, got %q",
			ErrMalformedDocument, lineNo, line)
	}
	if x > g.Width() || y > g.Height() {
		return maze.Coord{}, fmt.Errorf("%w: line %d: coordinate %d,%d outside %dx%d grid",
			ErrMalformedDocument, lineNo, x, y, g.Width(), g.Height())
	}
	return maze.Coord{X: x, Y: y}, nil
}
