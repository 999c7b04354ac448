// internal/game/types.go
//
// Core type definitions for word checks and play sessions.
// Defines:
//   - Reason: why a submitted path was rejected.
//   - WordCheck: the outcome of checking one path.
//   - FoundWord: an accepted word with its score.

package game

// Reason explains a failed word check. The set is closed.
type Reason string

const (
	ReasonTooShort        Reason = "too-short"
	ReasonInvalidPath     Reason = "invalid-path"
	ReasonNotInDictionary Reason = "not-in-dictionary"
)

// WordCheck is the result of checking a path.
// Word is set on success and on ReasonNotInDictionary, so callers can show it.
type WordCheck struct {
	OK     bool   `json:"ok"`
	Reason Reason `json:"reason,omitempty"`
	Word   string `json:"word,omitempty"`
}

// FoundWord is an accepted word and its points.
type FoundWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}
