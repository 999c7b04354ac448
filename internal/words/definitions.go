// internal/words/definitions.go
//
// Word definitions for found words.
//
// File format (tab-separated, '#' starts a comment line):
//
//	word<TAB>part of speech<TAB>gloss
//
// A word may span several lines. Only the text before the first ';' of a
// gloss is kept (the rest is usually an example sentence), duplicates are
// dropped, and at most MaxDefinitions glosses are returned per word.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordgrid/assets"
)

// MaxDefinitions caps the glosses returned for one word.
const MaxDefinitions = 3

// Definition is what a lookup returns for one word.
type Definition struct {
	Word         string   `json:"word"`
	Definitions  []string `json:"definitions"`
	PartOfSpeech string   `json:"partOfSpeech,omitempty"`
}

type defEntry struct {
	glosses []string
	pos     []string
}

// Definitions is a read-only word -> glosses index, safe for concurrent lookups.
type Definitions struct {
	entries map[string]*defEntry
}

// ReadDefinitions parses the tab-separated format described above.
func ReadDefinitions(r io.Reader) (*Definitions, error) {
	d := &Definitions{entries: make(map[string]*defEntry)}
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("definitions line %d: want word<TAB>pos<TAB>gloss", n)
		}
		w, ok := normalize(fields[0])
		if !ok {
			return nil, fmt.Errorf("definitions line %d: bad word %q", n, fields[0])
		}
		d.add(strings.ToLower(w), strings.TrimSpace(fields[1]), fields[2])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Definitions) add(word, pos, gloss string) {
	e := d.entries[word]
	if e == nil {
		e = &defEntry{}
		d.entries[word] = e
	}
	gloss, _, _ = strings.Cut(gloss, ";")
	if gloss = strings.TrimSpace(gloss); gloss != "" && !contains(e.glosses, gloss) {
		e.glosses = append(e.glosses, gloss)
	}
	if pos != "" && !contains(e.pos, pos) {
		e.pos = append(e.pos, pos)
	}
}

// LoadDefinitions reads path, or the embedded definitions when path is empty.
func LoadDefinitions(path string) (*Definitions, error) {
	var r io.ReadCloser
	var err error
	if path == "" {
		r, err = assets.Definitions()
	} else {
		r, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := ReadDefinitions(r)
	if err != nil {
		if path == "" {
			path = "embedded definitions"
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return d, nil
}

// Lookup returns the definition for word, ignoring case and surrounding space.
// ok is false when the word has no usable glosses. A nil index knows no words.
func (d *Definitions) Lookup(word string) (def Definition, ok bool) {
	if d == nil {
		return Definition{}, false
	}
	w, valid := normalize(word)
	if !valid {
		return Definition{}, false
	}
	w = strings.ToLower(w)
	e := d.entries[w]
	if e == nil || len(e.glosses) == 0 {
		return Definition{}, false
	}
	glosses := e.glosses
	if len(glosses) > MaxDefinitions {
		glosses = glosses[:MaxDefinitions]
	}
	return Definition{
		Word:         w,
		Definitions:  append([]string(nil), glosses...),
		PartOfSpeech: strings.Join(e.pos, ", "),
	}, true
}

// Len returns the number of words with at least one entry.
func (d *Definitions) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
