// internal/board/board.go
//
// Core board type for the daily word grid.
// Defines:
//   - Board: a fixed 5x5 matrix of tiles (value type, so copies are independent).
//   - Flatten/Parse: the canonical 25-letter row-major wire form.
//   - Validate: shape checks for boards arriving from outside the generator.

package board

import (
	"errors"
	"strings"
)

// Size is the number of rows and columns on a board.
const Size = 5

// Cells is the number of tiles on a board.
const Cells = Size * Size

var (
	// ErrInvalidLetters indicates a flat board string is not exactly 25 letters A–Z.
	ErrInvalidLetters = errors.New("board: letters must be exactly 25 uppercase A-Z characters")
	// ErrEmptyTile indicates a board with a blank or non-letter tile.
	ErrEmptyTile = errors.New("board: every tile must be one or more uppercase letters")
)

// Board holds one tile per cell. A tile is usually one letter but may hold
// more (e.g. "QU"), in which case it contributes every letter to a word.
type Board [Size][Size]string

// Tile returns the tile at (row, col).
// ok is false when the coordinate lies outside the board.
func (b Board) Tile(row, col int) (tile string, ok bool) {
	if !InBounds(row, col) {
		return "", false
	}
	return b[row][col], true
}

// InBounds reports whether (row, col) lies within the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Rows returns the board as nested slices, the shape used in JSON payloads.
func (b Board) Rows() [][]string {
	out := make([][]string, Size)
	for r := range b {
		out[r] = append([]string(nil), b[r][:]...)
	}
	return out
}

// Validate checks that every tile is a non-empty run of uppercase letters.
func (b Board) Validate() error {
	for r := range b {
		for c := range b[r] {
			if !isUpperAlpha(b[r][c]) {
				return ErrEmptyTile
			}
		}
	}
	return nil
}

// Flatten concatenates tiles in row-major order.
// Boards produced by Generate always flatten to exactly 25 characters.
func Flatten(b Board) string {
	var sb strings.Builder
	sb.Grow(Cells)
	for r := range b {
		for c := range b[r] {
			sb.WriteString(b[r][c])
		}
	}
	return sb.String()
}

// Parse rebuilds a board from its flat 25-letter form.
func Parse(letters string) (Board, error) {
	var b Board
	if len(letters) != Cells || !isUpperAlpha(letters) {
		return b, ErrInvalidLetters
	}
	for i := 0; i < Cells; i++ {
		b[i/Size][i%Size] = letters[i : i+1]
	}
	return b, nil
}

// FromRows converts nested slices into a Board, rejecting ragged or blank input.
func FromRows(rows [][]string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, ErrEmptyTile
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, ErrEmptyTile
		}
		for c, tile := range row {
			b[r][c] = strings.ToUpper(strings.TrimSpace(tile))
		}
	}
	return b, b.Validate()
}

// isUpperAlpha reports whether s is non-empty and all ASCII A–Z.
func isUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
