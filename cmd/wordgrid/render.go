package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/path"
)

var (
	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Bold(true)

	pathTileStyle = tileStyle.
			BorderForeground(lipgloss.Color("10")).
			Foreground(lipgloss.Color("10"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderBoard draws b as a grid of tiles, highlighting the tiles on p.
// plain output is one row of letters per line, with path tiles lowercased.
func renderBoard(b board.Board, p path.Path, plain bool) string {
	onPath := make(map[path.Coord]bool, len(p))
	for _, c := range p {
		onPath[c] = true
	}

	rows := make([]string, 0, board.Size)
	for r := 0; r < board.Size; r++ {
		cells := make([]string, 0, board.Size)
		for c := 0; c < board.Size; c++ {
			tile := b[r][c]
			hit := onPath[path.Coord{r, c}]
			switch {
			case plain && hit:
				cells = append(cells, strings.ToLower(tile))
			case plain:
				cells = append(cells, tile)
			case hit:
				cells = append(cells, pathTileStyle.Render(padTile(tile)))
			default:
				cells = append(cells, tileStyle.Render(padTile(tile)))
			}
		}
		if plain {
			rows = append(rows, strings.Join(cells, " "))
		} else {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// padTile keeps single-letter and "QU" tiles the same width.
func padTile(t string) string {
	if len(t) == 1 {
		return t + " "
	}
	return t
}

func style(s lipgloss.Style, plain bool, text string) string {
	if plain {
		return text
	}
	return s.Render(text)
}
