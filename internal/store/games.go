package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Game is a persisted daily board.
type Game struct {
	ID        int64
	Date      string // "YYYY-MM-DD"
	Letters   string // 25-letter row-major board
	Seed      string // keyed digest of the generator seed
	CreatedAt time.Time
}

// Games persists generated boards keyed by date.
type Games struct{ db *sql.DB }

// NewGames wraps db.
func NewGames(db *sql.DB) *Games { return &Games{db: db} }

// FindByDate returns the stored board for date, or ErrNotFound.
func (g *Games) FindByDate(ctx context.Context, date string) (*Game, error) {
	var out Game
	var created string
	err := g.db.QueryRowContext(ctx,
		`SELECT id, date, letters, seed, created_at FROM games WHERE date=?`, date,
	).Scan(&out.ID, &out.Date, &out.Letters, &out.Seed, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out.CreatedAt = parseTime(created)
	return &out, nil
}

// Save stores a board for its date. The first board saved for a date wins;
// later saves for the same date are ignored.
func (g *Games) Save(ctx context.Context, game Game) error {
	_, err := g.db.ExecContext(ctx, `
        INSERT INTO games (date, letters, seed)
        VALUES (?, ?, ?)
        ON CONFLICT(date) DO NOTHING`,
		game.Date, game.Letters, game.Seed,
	)
	return err
}

// parseTime parses RFC3339 timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
