package solve

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/amazeing/maze"
)

// Path is an ordered sequence of unit steps from entry toward exit.
// It is immutable once returned by ShortestPath.
type Path []maze.Direction

// String concatenates the single-letter direction tokens with no
// separator, the form used on the last line of a maze document.
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, d := range p {
		b.WriteString(d.String())
	}
	return b.String()
}

// Walk replays p from entry and returns every visited coordinate,
// entry included, exit last. Used by renderers to overlay the solution
// and by tests to validate each step against the grid's walls.
func (p Path) Walk(entry maze.Coord) []maze.Coord {
	out := make([]maze.Coord, 0, len(p)+1)
	cur := entry
	out = append(out, cur)
	for _, d := range p {
		cur = cur.Step(d)
		out = append(out, cur)
	}
	return out
}

// Parse converts a token string such as "SSEEN" back into a Path.
// Fails on any byte outside N, E, S, W.
func Parse(s string) (Path, error) {
	p := make(Path, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, err := maze.ParseDirection(s[i])
		if err != nil {
			return nil, fmt.Errorf("solve: position %d: %w", i+1, err)
		}
		p = append(p, d)
	}
	return p, nil
}
