package game

import "math"

// ScoreLength maps a word length to points:
// <4 → 0, 4 → 1, 5 → 2, 6 → 3, 7 → 5, 8+ → 11.
func ScoreLength(n int) int {
	switch {
	case n < 4:
		return 0
	case n == 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// ScoreFloat floors x before scoring; NaN, infinities and negatives score 0.
func ScoreFloat(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return ScoreLength(int(math.Floor(x)))
}

// ScoreWord scores w by its letter count.
func ScoreWord(w string) int { return ScoreLength(len(w)) }
