package board

import (
	"sort"

	"github.com/robalobadob/wordgrid/internal/prng"
)

// letterWeights approximates English letter frequency, per mille.
var letterWeights = [26]int{
	82, 15, 28, 43, 127, 22, 20, 61, 70, 2, 8, 40, 24, // A–M
	67, 75, 19, 1, 60, 63, 91, 28, 10, 24, 2, 20, 1, // N–Z
}

// cumulative[i] is the summed weight of letters A..i; built once.
var cumulative, totalWeight = buildCumulative()

func buildCumulative() ([26]int, int) {
	var cum [26]int
	total := 0
	for i, w := range letterWeights {
		total += w
		cum[i] = total
	}
	return cum, total
}

// PickLetter draws one uppercase letter, weighted by English frequency.
func PickLetter(r *prng.Rand) string {
	x := int(r.Float64() * float64(totalWeight))
	i := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > x })
	return string(rune('A' + i))
}

// Weight returns the relative weight of letter (A–Z), or 0 for anything else.
func Weight(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return letterWeights[letter-'A']
}
