package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgrid/internal/path"
)

func testGlobals() (*Globals, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Globals{
		Salt:  "dev-salt",
		Plain: true,
		out:   &buf,
		now:   func() time.Time { return time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC) },
	}, &buf
}

func TestParseCoords(t *testing.T) {
	p, err := parseCoords(" 0,3 1,3  0,4 1,4 ")
	require.NoError(t, err)
	assert.Equal(t, path.Path{{0, 3}, {1, 3}, {0, 4}, {1, 4}}, p)

	for _, bad := range []string{"", "0", "a,1", "1,b", "0;1"} {
		_, err := parseCoords(bad)
		assert.Error(t, err, bad)
	}
}

func TestBoardCmd_Flat(t *testing.T) {
	g, out := testGlobals()
	require.NoError(t, (&BoardCmd{Flat: true}).Run(g))
	assert.Equal(t, "ALATLAPIAEDEGNIATCHDNKPEE\n", out.String())
}

func TestBoardCmd_Grid(t *testing.T) {
	g, out := testGlobals()
	require.NoError(t, (&BoardCmd{Date: "2025-01-02"}).Run(g))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Board for 2025-01-02", lines[0])
	assert.Equal(t, "H C H I M", lines[1])
}

func TestBoardCmd_BadDate(t *testing.T) {
	g, _ := testGlobals()
	assert.Error(t, (&BoardCmd{Date: "01/02/2025"}).Run(g))
}

func TestCheckCmd(t *testing.T) {
	g, out := testGlobals()
	require.NoError(t, (&CheckCmd{Path: "0,3 1,3 0,4 1,4"}).Run(g))
	assert.Contains(t, out.String(), "TALE: ok (1 points)")
	assert.Contains(t, out.String(), "A L A t l")

	g, out = testGlobals()
	require.NoError(t, (&CheckCmd{Path: "0,0 0,1 0,2"}).Run(g))
	assert.Contains(t, out.String(), "too-short")
}

func TestFindCmd(t *testing.T) {
	g, out := testGlobals()
	require.NoError(t, (&FindCmd{Word: "tale"}).Run(g))
	assert.Contains(t, out.String(), "TALE: 0,3 1,3 0,4 1,4")

	g, out = testGlobals()
	require.NoError(t, (&FindCmd{Word: "zebra"}).Run(g))
	assert.Contains(t, out.String(), "ZEBRA: not on board")
}

func TestSolveCmd(t *testing.T) {
	g, out := testGlobals()
	require.NoError(t, (&SolveCmd{}).Run(g))
	assert.Contains(t, out.String(), "2025-01-01: ")
	assert.Contains(t, out.String(), "TALE")
	assert.Contains(t, out.String(), "LATE")

	g, out = testGlobals()
	require.NoError(t, (&SolveCmd{Limit: 1}).Run(g))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestScoreCmd(t *testing.T) {
	for in, want := range map[float64]string{3: "0", 4: "1", 7.9: "5", 12: "11"} {
		g, out := testGlobals()
		require.NoError(t, (&ScoreCmd{Length: in}).Run(g))
		assert.Equal(t, want+"\n", out.String())
	}
}

func TestDefineCmd(t *testing.T) {
	g, out := testGlobals()
	require.NoError(t, (&DefineCmd{Word: "Tale"}).Run(g))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "tale (noun)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  1. "), lines[1])

	out.Reset()
	require.NoError(t, (&DefineCmd{Word: "qwxz"}).Run(g))
	assert.Equal(t, "qwxz: no definition found\n", out.String())

	g.Definitions = "/nonexistent/defs.tsv"
	assert.Error(t, (&DefineCmd{Word: "tale"}).Run(g))
}
