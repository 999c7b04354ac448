package path

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/robalobadob/wordgrid/internal/board"
)

// MinWordLength is the shortest word that scores.
const MinWordLength = 4

// MinTiles is the shortest path accepted by Valid. One tile may carry two
// letters ("QU"), so a three-tile path can still spell a four-letter word.
const MinTiles = MinWordLength - 1

// ErrMalformedPath indicates a wire path that is not a list of integer pairs.
var ErrMalformedPath = errors.New("path: expected an array of [row, col] integer pairs")

// Valid reports whether p is a legal path on b: long enough, in bounds,
// no cell reused, and every step to an adjacent cell. Runs in O(len(p)).
func Valid(b board.Board, p Path) bool {
	if len(p) < MinTiles {
		return false
	}
	var visited [board.Size][board.Size]bool
	for i, c := range p {
		if !c.InBounds() {
			return false
		}
		if visited[c[0]][c[1]] {
			return false
		}
		visited[c[0]][c[1]] = true
		if i > 0 && !Adjacent(p[i-1], c) {
			return false
		}
	}
	return true
}

// Decode parses a JSON path. Anything other than an array of two-element
// integer arrays fails with ErrMalformedPath; values are never coerced.
func Decode(data []byte) (Path, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, ErrMalformedPath
	}
	p := make(Path, 0, len(raw))
	for _, item := range raw {
		var pair []float64
		if err := json.Unmarshal(item, &pair); err != nil || len(pair) != 2 {
			return nil, ErrMalformedPath
		}
		var c Coord
		for i, v := range pair {
			if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
				return nil, ErrMalformedPath
			}
			c[i] = int(v)
		}
		p = append(p, c)
	}
	return p, nil
}

// ValidJSON decodes and validates in one step; malformed input is simply invalid.
func ValidJSON(b board.Board, data []byte) bool {
	p, err := Decode(data)
	return err == nil && Valid(b, p)
}
