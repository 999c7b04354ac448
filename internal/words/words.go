// internal/words/words.go
//
// Dictionary membership for validated words.
//
// Responsibilities:
//   - Load a word list from a file (WORDS_FILE) or fall back to the embedded default.
//   - Normalize entries to uppercase A–Z, dropping blanks, comments and anything else.
//   - Answer case-insensitive membership queries.
//
// Word lists:
//   - One word per line; '#' starts a comment line.
//   - The production list is SOWPODS, prepared offline.
//
// Constraints:
//   • A Set is read-only once built and safe for concurrent lookups.
//   • The package-level default is initialized once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/robalobadob/wordgrid/assets"
)

// ErrEmpty is returned when a word source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary answers membership queries.
type Dictionary interface {
	Contains(word string) bool
}

// Lister is a Dictionary that can also enumerate its words (uppercase, sorted).
type Lister interface {
	Dictionary
	Words() []string
}

// Set is an immutable uppercase word set.
type Set struct {
	index map[string]struct{}
	list  []string
}

// NewSet builds a Set from raw words, normalizing and de-duplicating them.
func NewSet(raw []string) *Set {
	s := &Set{index: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w, ok := normalize(w)
		if !ok {
			continue
		}
		if _, dup := s.index[w]; dup {
			continue
		}
		s.index[w] = struct{}{}
		s.list = append(s.list, w)
	}
	sort.Strings(s.list)
	return s
}

// Contains reports whether word is in the set, ignoring case and surrounding space.
func (s *Set) Contains(word string) bool {
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" {
		return false
	}
	_, ok := s.index[w]
	return ok
}

// Words returns the sorted word list. Callers must not modify it.
func (s *Set) Words() []string { return s.list }

// Len returns the number of words.
func (s *Set) Len() int { return len(s.list) }

// Read builds a Set from one-word-per-line text.
func Read(r io.Reader) (*Set, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	s := NewSet(raw)
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// Load reads path, or the embedded default list when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		list, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("embedded word list: %w", err)
		}
		s := NewSet(list)
		if s.Len() == 0 {
			return nil, ErrEmpty
		}
		return s, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}

var (
	initOnce   sync.Once
	defaultSet *Set
	initialErr error
)

// Init loads the process-wide dictionary exactly once from path (see Load).
// Later calls return the first result regardless of path.
func Init(path string) error {
	initOnce.Do(func() {
		defaultSet, initialErr = Load(path)
	})
	return initialErr
}

// Default returns the process-wide dictionary, loading the embedded list if
// Init has not been called.
func Default() *Set {
	_ = Init("")
	if defaultSet == nil {
		return NewSet(nil)
	}
	return defaultSet
}

// IsWord reports whether w is in the default dictionary.
func IsWord(w string) bool {
	return Default().Contains(w)
}

// normalize trims and uppercases w; ok is false unless the result is all A–Z.
func normalize(w string) (string, bool) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if w == "" {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", false
		}
	}
	return w, true
}
