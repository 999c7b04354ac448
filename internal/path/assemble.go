package path

import (
	"strings"

	"github.com/robalobadob/wordgrid/internal/board"
)

// Assemble concatenates the tiles along p, uppercased. Multi-letter tiles
// contribute every letter. Out-of-bounds cells are skipped; callers are
// expected to check Valid first.
func Assemble(b board.Board, p Path) string {
	var sb strings.Builder
	sb.Grow(len(p) + 1)
	for _, c := range p {
		if tile, ok := b.Tile(c[0], c[1]); ok {
			sb.WriteString(tile)
		}
	}
	return strings.ToUpper(sb.String())
}
