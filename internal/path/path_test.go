package path

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgrid/internal/board"
)

func bananaBoard(t *testing.T) board.Board {
	t.Helper()
	b, err := board.FromRows([][]string{
		{"B", "A", "N", "A", "N"},
		{"A", "N", "A", "N", "A"},
		{"B", "A", "N", "A", "N"},
		{"A", "N", "A", "N", "A"},
		{"B", "A", "N", "A", "N"},
	})
	require.NoError(t, err)
	return b
}

func allCoords() []Coord {
	out := make([]Coord, 0, board.Cells+20)
	for r := -2; r < board.Size+2; r++ {
		for c := -2; c < board.Size+2; c++ {
			out = append(out, Coord{r, c})
		}
	}
	return out
}

func TestAdjacent_SymmetricAndIrreflexive(t *testing.T) {
	coords := allCoords()
	for _, a := range coords {
		assert.Falsef(t, Adjacent(a, a), "%v adjacent to itself", a)
		for _, b := range coords {
			require.Equalf(t, Adjacent(a, b), Adjacent(b, a), "%v vs %v", a, b)
		}
	}
}

func TestAdjacent_KingMoves(t *testing.T) {
	center := Coord{2, 2}
	cases := []struct {
		to   Coord
		want bool
	}{
		{Coord{1, 1}, true},
		{Coord{1, 2}, true},
		{Coord{1, 3}, true},
		{Coord{2, 1}, true},
		{Coord{2, 3}, true},
		{Coord{3, 1}, true},
		{Coord{3, 2}, true},
		{Coord{3, 3}, true},
		{Coord{0, 2}, false},
		{Coord{2, 4}, false},
		{Coord{4, 4}, false},
		{Coord{0, 0}, false},
		{Coord{2, 2}, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Adjacent(center, tc.to), "%v", tc.to)
	}
}

func TestNeighbors(t *testing.T) {
	assert.Equal(t, []Coord{{0, 1}, {1, 1}, {1, 0}}, Neighbors(Coord{0, 0}))
	assert.Len(t, Neighbors(Coord{2, 2}), 8)
	assert.Len(t, Neighbors(Coord{4, 2}), 5)
}

func TestValid(t *testing.T) {
	b := bananaBoard(t)
	cases := []struct {
		name string
		p    Path
		want bool
	}{
		{"banana", Path{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {1, 1}, {1, 0}}, true},
		{"exactly min tiles", Path{{0, 0}, {0, 1}, {0, 2}}, true},
		{"one below min tiles", Path{{0, 0}, {0, 1}}, false},
		{"empty", Path{}, false},
		{"nil", nil, false},
		{"diagonal", Path{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, true},
		{"reuse", Path{{0, 0}, {0, 1}, {0, 2}, {0, 1}}, false},
		{"reuse non-adjacent", Path{{0, 0}, {0, 1}, {1, 1}, {0, 0}}, false},
		{"gap", Path{{0, 0}, {0, 1}, {0, 3}, {0, 4}}, false},
		{"row out of bounds", Path{{4, 0}, {5, 0}, {4, 1}}, false},
		{"negative", Path{{0, 0}, {-1, 0}, {0, 1}}, false},
		{"first out of bounds", Path{{0, 5}, {0, 4}, {0, 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Valid(b, tc.p))
		})
	}
}

func TestValid_MinTilesBoundary(t *testing.T) {
	b := bananaBoard(t)
	short := Path{{0, 0}, {0, 1}, {0, 2}}[:MinTiles-1]
	assert.False(t, Valid(b, short))
}

func TestDecode(t *testing.T) {
	p, err := Decode([]byte(`[[0,0],[0,1],[1,1]]`))
	require.NoError(t, err)
	assert.Equal(t, Path{{0, 0}, {0, 1}, {1, 1}}, p)

	p, err = Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, p)

	for _, in := range []string{
		`null`,
		`{}`,
		`"0,0"`,
		`[[0]]`,
		`[[0,1,2]]`,
		`[[0,0.5]]`,
		`[["0",1]]`,
		`[null]`,
		`[[0,0],5]`,
		`[[1e20,0]]`,
		`not json`,
	} {
		_, err := Decode([]byte(in))
		assert.ErrorIs(t, err, ErrMalformedPath, in)
	}
}

func TestValidJSON(t *testing.T) {
	b := bananaBoard(t)
	assert.True(t, ValidJSON(b, []byte(`[[0,0],[0,1],[0,2],[1,2]]`)))
	assert.False(t, ValidJSON(b, []byte(`[[0,0],[0,1],[0,2],[1,2,3]]`)))
	assert.False(t, ValidJSON(b, []byte(`[[0,0],[0,1],[0,2.5]]`)))
}

func TestAssemble(t *testing.T) {
	b := bananaBoard(t)
	assert.Equal(t, "BANANA", Assemble(b, Path{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {1, 1}, {1, 0}}))
	assert.Equal(t, "", Assemble(b, nil))
	assert.Equal(t, "BA", Assemble(b, Path{{0, 0}, {9, 9}, {0, 1}}))
}

func TestAssemble_MultiLetterTile(t *testing.T) {
	b := bananaBoard(t)
	b[2][2] = "QU"
	assert.Equal(t, "AQUA", Assemble(b, Path{{1, 2}, {2, 2}, {2, 3}}))
}

func TestFind_Banana(t *testing.T) {
	b := bananaBoard(t)
	p, ok := Find(b, "banana")
	require.True(t, ok)
	assert.Equal(t, "BANANA", Assemble(b, p))
	assert.True(t, Valid(b, p))
	// Row-major start, compass-order neighbours: B(0,0) → E A(0,1) → E N(0,2) → ...
	assert.Equal(t, Path{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 4}}, p)
}

func TestFind_NotFound(t *testing.T) {
	b := bananaBoard(t)
	for _, w := range []string{"", "  ", "ZEBRA", "BB", "BANANAS"} {
		_, ok := Find(b, w)
		assert.False(t, ok, w)
	}
}

func TestFind_NoReuse(t *testing.T) {
	b, err := board.Parse("ABCDEFGHIJKLMNOPQRSTUVWXY")
	require.NoError(t, err)
	_, ok := Find(b, "ABA")
	assert.False(t, ok)
	p, ok := Find(b, "ABGF")
	require.True(t, ok)
	assert.Equal(t, Path{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, p)
}

func TestFind_MultiLetterTile(t *testing.T) {
	b, err := board.Parse("QUITEXXXXXXXXXXXXXXXXXXXX")
	require.NoError(t, err)
	b[0][0] = "QU"
	b[0][1] = "I"
	b[0][2] = "T"
	b[0][3] = "E"
	p, ok := Find(b, "quite")
	require.True(t, ok)
	assert.Equal(t, Path{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, p)
	assert.Equal(t, "QUITE", Assemble(b, p))
	assert.True(t, Valid(b, p))

	_, ok = Find(b, "QITE")
	assert.False(t, ok)
}

func TestFind_BacktracksFromDeadEnd(t *testing.T) {
	// The first C reachable from A is a dead end; the search must back out.
	b, err := board.Parse("ACXXXCXXXXDXXXXXXXXXXXXXX")
	require.NoError(t, err)
	p, ok := Find(b, "ACD")
	require.True(t, ok)
	assert.Equal(t, Path{{0, 0}, {1, 0}, {2, 0}}, p)
}

// Random walks on generated boards give words that must be found again.
func TestFind_InverseOfAssemble(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		b := board.Generate("2025-03-01", string(rune('a'+i%26))+"salt")
		walk := randomWalk(rng, 4+rng.IntN(5))
		if walk == nil {
			continue
		}
		word := Assemble(b, walk)
		p, ok := Find(b, word)
		require.Truef(t, ok, "word %s from %v not found", word, walk)
		assert.Equal(t, word, Assemble(b, p))
		assert.True(t, Valid(b, p))
	}
}

func randomWalk(rng *rand.Rand, n int) Path {
	var seen [board.Size][board.Size]bool
	c := Coord{rng.IntN(board.Size), rng.IntN(board.Size)}
	p := Path{c}
	seen[c[0]][c[1]] = true
	for len(p) < n {
		var opts []Coord
		for _, nb := range Neighbors(c) {
			if !seen[nb[0]][nb[1]] {
				opts = append(opts, nb)
			}
		}
		if len(opts) == 0 {
			return nil
		}
		c = opts[rng.IntN(len(opts))]
		seen[c[0]][c[1]] = true
		p = append(p, c)
	}
	return p
}
