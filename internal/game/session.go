// internal/game/session.go
//
// A play session: one player working through one board.
// Responsibilities:
//   - Check submitted paths (or typed words) against the board and dictionary.
//   - Reject words already found in this session.
//   - Keep the running word list and total score.
//   - Lock the session once play ends.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/path"
	"github.com/robalobadob/wordgrid/internal/words"
)

var (
	// ErrFinished is returned for submissions after Finish.
	ErrFinished = errors.New("game: session finished")
	// ErrAlreadyFound is returned when a word was already accepted in this session.
	ErrAlreadyFound = errors.New("game: word already found")
	// ErrNotOnBoard is returned by SubmitWord when no path spells the word.
	ErrNotOnBoard = errors.New("game: word not found on board")
)

// Session holds the state of a single play-through.
type Session struct {
	ID    string      // Unique session identifier (random hex string).
	Date  string      // Board date key, empty for practice boards.
	Board board.Board // The board being played.

	mu       sync.Mutex
	dict     words.Dictionary
	found    []FoundWord
	seen     map[string]struct{}
	total    int
	finished bool
}

// NewSession starts a session on b for date, checking words against dict.
func NewSession(date string, b board.Board, dict words.Dictionary) *Session {
	return &Session{
		ID:    randomID(),
		Date:  date,
		Board: b,
		dict:  dict,
		seen:  make(map[string]struct{}),
	}
}

// Submit checks p and, when accepted, records the word.
// Rule failures come back in the WordCheck; errors are reserved for
// session-level refusals (finished, duplicate).
func (s *Session) Submit(p path.Path) (WordCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return WordCheck{}, ErrFinished
	}
	res := Check(s.Board, p, s.dict)
	if !res.OK {
		return res, nil
	}
	if _, dup := s.seen[res.Word]; dup {
		return res, ErrAlreadyFound
	}
	s.seen[res.Word] = struct{}{}
	fw := FoundWord{Word: res.Word, Score: ScoreWord(res.Word)}
	s.found = append(s.found, fw)
	s.total += fw.Score
	return res, nil
}

// SubmitWord finds a path for a typed word, then submits it.
// A word shorter than MinWordLength is reported too-short before the board is searched.
func (s *Session) SubmitWord(word string) (WordCheck, path.Path, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) < path.MinWordLength {
		s.mu.Lock()
		finished := s.finished
		s.mu.Unlock()
		if finished {
			return WordCheck{}, nil, ErrFinished
		}
		return WordCheck{Reason: ReasonTooShort}, nil, nil
	}
	p, ok := path.Find(s.Board, word)
	if !ok {
		return WordCheck{}, nil, ErrNotOnBoard
	}
	res, err := s.Submit(p)
	return res, p, err
}

// Finish locks the session against further submissions.
func (s *Session) Finish() {
	s.mu.Lock()
	s.finished = true
	s.mu.Unlock()
}

// Snapshot returns a copy of the found words, the total, and whether play ended.
func (s *Session) Snapshot() (found []FoundWord, total int, finished bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]FoundWord(nil), s.found...), s.total, s.finished
}

// Words returns the accepted words in submission order.
func (s *Session) Words() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.found))
	for i, fw := range s.found {
		out[i] = fw.Word
	}
	return out
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
