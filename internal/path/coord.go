// Package path implements movement rules on a board: 8-directional adjacency,
// path validation, word assembly along a path, and the inverse search that
// finds a path spelling a given word.
package path

import "github.com/robalobadob/wordgrid/internal/board"

// Coord is a (row, col) cell address. It encodes as a JSON [row, col] pair.
type Coord [2]int

// Path is an ordered sequence of cells.
type Path []Coord

// Row returns the row index.
func (c Coord) Row() int { return c[0] }

// Col returns the column index.
func (c Coord) Col() int { return c[1] }

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool { return board.InBounds(c[0], c[1]) }

// compass lists neighbour offsets as N, NE, E, SE, S, SW, W, NW.
var compass = [8]Coord{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// Adjacent reports whether a and b are king-move neighbours (Chebyshev
// distance exactly 1). A cell is never adjacent to itself.
func Adjacent(a, b Coord) bool {
	dr, dc := abs(a[0]-b[0]), abs(a[1]-b[1])
	if dr == 0 && dc == 0 {
		return false
	}
	return dr <= 1 && dc <= 1
}

// Neighbors returns the in-bounds neighbours of c in compass order.
func Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(compass))
	for _, d := range compass {
		n := Coord{c[0] + d[0], c[1] + d[1]}
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
