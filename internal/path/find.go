package path

import (
	"strings"

	"github.com/robalobadob/wordgrid/internal/board"
)

// Find searches b for a path spelling word (case-insensitive). Start cells are
// tried in row-major order and neighbours in compass order, so the first
// match is stable. A tile matches when it is a prefix of the letters still
// needed, which lets "QU" consume two letters. ok is false when no path exists.
func Find(b board.Board, word string) (p Path, ok bool) {
	target := strings.ToUpper(strings.TrimSpace(word))
	if target == "" {
		return nil, false
	}
	f := finder{b: &b, target: target}
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if f.walk(Coord{r, c}, 0) {
				return f.path, true
			}
		}
	}
	return nil, false
}

// finder owns the visited set for a single search.
type finder struct {
	b       *board.Board
	target  string
	visited [board.Size][board.Size]bool
	path    Path
}

// walk tries to match the tile at c against target[pos:], then recurses.
// On failure the cell is un-visited and the path trimmed before returning.
func (f *finder) walk(c Coord, pos int) bool {
	if f.visited[c[0]][c[1]] {
		return false
	}
	tile := f.b[c[0]][c[1]]
	if tile == "" || !strings.HasPrefix(f.target[pos:], strings.ToUpper(tile)) {
		return false
	}
	next := pos + len(tile)

	f.visited[c[0]][c[1]] = true
	f.path = append(f.path, c)
	if next == len(f.target) {
		return true
	}
	for _, n := range Neighbors(c) {
		if f.walk(n, next) {
			return true
		}
	}
	f.visited[c[0]][c[1]] = false
	f.path = f.path[:len(f.path)-1]
	return false
}
