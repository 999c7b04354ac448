package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Contains(t *testing.T) {
	s := NewSet([]string{"banana", " Apple ", "CHERRY", "it's", "", "x-ray"})
	for _, w := range []string{"BANANA", "banana", "Banana", " banana\n", "APPLE", "cherry"} {
		assert.True(t, s.Contains(w), w)
	}
	for _, w := range []string{"", "   ", "BANAN", "ITS", "IT'S", "X-RAY", "XRAY"} {
		assert.False(t, s.Contains(w), w)
	}
	assert.Equal(t, []string{"APPLE", "BANANA", "CHERRY"}, s.Words())
	assert.Equal(t, 3, s.Len())
}

func TestSet_Dedupes(t *testing.T) {
	s := NewSet([]string{"tree", "TREE", "Tree"})
	assert.Equal(t, []string{"TREE"}, s.Words())
}

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader("# comment\nzebra\n\n  quilt \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"QUILT", "ZEBRA"}, s.Words())

	_, err = Read(strings.NewReader("# nothing\n\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(p, []byte("grid\nword\n"), 0o644))
	s, err := Load(p)
	require.NoError(t, err)
	assert.True(t, s.Contains("grid"))
	assert.False(t, s.Contains("banana"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoad_Embedded(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, s.Len(), 1000)
	assert.True(t, s.Contains("banana"))
	assert.False(t, s.Contains("zzzz"))
}

func TestDefault(t *testing.T) {
	assert.True(t, IsWord("Banana"))
	assert.NotNil(t, Default())
}

func TestReadDefinitions(t *testing.T) {
	src := "# header\n" +
		"grid\tnoun\ta pattern of lines; the city grid\n" +
		"GRID\tnoun\ta network of lines\n" +
		"grid\tnoun\ta pattern of lines; repeated gloss\n" +
		"grid\tverb\tfourth gloss\n" +
		"grid\tverb\tfifth gloss\n" +
		"tile\t\t; only an example\n"
	d, err := ReadDefinitions(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	def, ok := d.Lookup(" Grid ")
	require.True(t, ok)
	assert.Equal(t, "grid", def.Word)
	assert.Equal(t, []string{"a pattern of lines", "a network of lines", "fourth gloss"}, def.Definitions)
	assert.Equal(t, "noun, verb", def.PartOfSpeech)

	_, ok = d.Lookup("tile")
	assert.False(t, ok, "entry with no usable gloss")
	_, ok = d.Lookup("zebra")
	assert.False(t, ok)
	_, ok = d.Lookup("x-ray")
	assert.False(t, ok)
}

func TestReadDefinitions_Malformed(t *testing.T) {
	for _, src := range []string{"grid noun no tabs\n", "gr1d\tnoun\tgloss\n"} {
		_, err := ReadDefinitions(strings.NewReader(src))
		assert.Error(t, err, src)
	}
}

func TestLoadDefinitions(t *testing.T) {
	embedded, err := LoadDefinitions("")
	require.NoError(t, err)
	def, ok := embedded.Lookup("TALE")
	require.True(t, ok)
	assert.NotEmpty(t, def.Definitions)
	assert.LessOrEqual(t, len(def.Definitions), MaxDefinitions)

	p := filepath.Join(t.TempDir(), "defs.tsv")
	require.NoError(t, os.WriteFile(p, []byte("word\tnoun\ta unit of language\n"), 0o644))
	fromFile, err := LoadDefinitions(p)
	require.NoError(t, err)
	_, ok = fromFile.Lookup("word")
	assert.True(t, ok)
	_, ok = fromFile.Lookup("tale")
	assert.False(t, ok)

	_, err = LoadDefinitions(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)

	var none *Definitions
	_, ok = none.Lookup("tale")
	assert.False(t, ok)
	assert.Zero(t, none.Len())
}
