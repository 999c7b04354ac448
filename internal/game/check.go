package game

import (
	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/path"
	"github.com/robalobadob/wordgrid/internal/words"
)

// Check validates p on b and looks the assembled word up in dict.
// Failures are reported in order of cost: length, path shape, dictionary.
func Check(b board.Board, p path.Path, dict words.Dictionary) WordCheck {
	if len(p) < path.MinWordLength {
		return WordCheck{Reason: ReasonTooShort}
	}
	if !path.Valid(b, p) {
		return WordCheck{Reason: ReasonInvalidPath}
	}
	w := path.Assemble(b, p)
	if !dict.Contains(w) {
		return WordCheck{Reason: ReasonNotInDictionary, Word: w}
	}
	return WordCheck{OK: true, Word: w}
}
