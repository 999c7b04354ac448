// Package assets bundles static data shipped inside the binary.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt definitions.tsv
var FS embed.FS

// readLines returns trimmed, uppercased, non-comment lines of an embedded file.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// WordList returns the bundled default dictionary.
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// Definitions opens the bundled tab-separated definitions file.
func Definitions() (fs.File, error) {
	return FS.Open("definitions.tsv")
}
