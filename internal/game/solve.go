package game

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/path"
	"github.com/robalobadob/wordgrid/internal/words"
)

// Solve lists every dictionary word of at least MinWordLength letters that
// can be traced on b, best-scoring first, then alphabetically.
// The word list is split across workers; ctx cancels the search.
func Solve(ctx context.Context, b board.Board, dict words.Lister) ([]FoundWord, error) {
	list := dict.Words()
	workers := runtime.GOMAXPROCS(0)
	if workers > len(list) {
		workers = len(list)
	}
	if workers == 0 {
		return nil, nil
	}

	avail := tileLetters(b)
	shards := make([][]FoundWord, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for n, j := 0, i; j < len(list); n, j = n+1, j+workers {
				if n%256 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				w := list[j]
				if len(w) < path.MinWordLength || !possible(w, avail) {
					continue
				}
				if _, ok := path.Find(b, w); ok {
					shards[i] = append(shards[i], FoundWord{Word: w, Score: ScoreWord(w)})
				}
			}
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []FoundWord
	for _, s := range shards {
		out = append(out, s...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out, nil
}

// tileLetters marks every letter that appears on some tile.
func tileLetters(b board.Board) (avail [26]bool) {
	for r := range b {
		for c := range b[r] {
			for i := 0; i < len(b[r][c]); i++ {
				if ch := b[r][c][i]; ch >= 'A' && ch <= 'Z' {
					avail[ch-'A'] = true
				}
			}
		}
	}
	return avail
}

// possible is a cheap pre-filter: every letter of w must be on the board.
func possible(w string, avail [26]bool) bool {
	for i := 0; i < len(w); i++ {
		ch := w[i]
		if ch < 'A' || ch > 'Z' || !avail[ch-'A'] {
			return false
		}
	}
	return true
}
