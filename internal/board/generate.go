package board

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/robalobadob/wordgrid/internal/daily"
	"github.com/robalobadob/wordgrid/internal/prng"
)

// Generate builds the board for a canonical YYYY-MM-DD date and salt.
// The same (date, salt) always yields the same board.
func Generate(date, salt string) Board {
	return fromSeed(daily.Seed(date, salt))
}

// GenerateAt normalizes t to its UTC date key before generating.
func GenerateAt(t time.Time, salt string) Board {
	return Generate(daily.DateKey(t), salt)
}

// Random builds a practice board from a crypto-random seed.
func Random() Board {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return fromSeed(hex.EncodeToString(b[:]))
}

// fromSeed draws 25 letters in row-major order.
func fromSeed(seed string) Board {
	r := prng.New(seed)
	var b Board
	for i := 0; i < Cells; i++ {
		b[i/Size][i%Size] = PickLetter(r)
	}
	return b
}
