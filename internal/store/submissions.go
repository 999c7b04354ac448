package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Submission is one user's word list and score for a date.
type Submission struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Words     []string  `json:"words"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// LeaderboardEntry is a ranked row. Equal scores share a rank.
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      string    `json:"userId"`
	Score       int       `json:"score"`
	Words       []string  `json:"words"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Leaderboard is one page of ranked entries for a date.
type Leaderboard struct {
	Date         string             `json:"date"`
	Limit        int                `json:"limit"`
	TotalPlayers int                `json:"totalPlayers"`
	Entries      []LeaderboardEntry `json:"entries"`
}

// DefaultLeaderboardLimit is used when no positive limit is given.
const DefaultLeaderboardLimit = 25

// Submissions persists daily submissions.
type Submissions struct{ db *sql.DB }

// NewSubmissions wraps db.
func NewSubmissions(db *sql.DB) *Submissions { return &Submissions{db: db} }

// Upsert inserts or replaces the submission for (UserID, Date) and returns the stored row.
func (s *Submissions) Upsert(ctx context.Context, sub Submission) (Submission, error) {
	if sub.Words == nil {
		sub.Words = []string{}
	}
	encoded, err := json.Marshal(sub.Words)
	if err != nil {
		return Submission{}, err
	}
	var created string
	err = s.db.QueryRowContext(ctx, `
        INSERT INTO submissions (user_id, date, words, score)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(user_id, date) DO UPDATE SET
            words = excluded.words,
            score = excluded.score
        RETURNING id, created_at`,
		sub.UserID, sub.Date, string(encoded), sub.Score,
	).Scan(&sub.ID, &created)
	if err != nil {
		return Submission{}, err
	}
	sub.CreatedAt = parseTime(created)
	return sub, nil
}

// Get returns the submission for a user and date, or ErrNotFound.
func (s *Submissions) Get(ctx context.Context, userID, date string) (Submission, error) {
	sub := Submission{UserID: userID, Date: date}
	var words, created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, words, score, created_at FROM submissions WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&sub.ID, &words, &sub.Score, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, ErrNotFound
	}
	if err != nil {
		return Submission{}, err
	}
	sub.Words = parseWords(words)
	sub.CreatedAt = parseTime(created)
	return sub, nil
}

// Leaderboard fetches the top submissions for a date.
//
//   - Ordered by score DESC, then created_at ASC, then id ASC.
//   - A row with the same score as the row above it shares that row's rank;
//     otherwise its rank is its 1-based position.
//   - Default limit is DefaultLeaderboardLimit if not positive.
func (s *Submissions) Leaderboard(ctx context.Context, date string, limit int) (Leaderboard, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	lb := Leaderboard{Date: date, Limit: limit, Entries: []LeaderboardEntry{}}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM submissions WHERE date=?`, date,
	).Scan(&lb.TotalPlayers); err != nil {
		return Leaderboard{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT user_id, score, words, created_at
        FROM submissions
        WHERE date=?
        ORDER BY score DESC, created_at ASC, id ASC
        LIMIT ?`, date, limit,
	)
	if err != nil {
		return Leaderboard{}, err
	}
	defer rows.Close()

	lastRank, lastScore := 0, -1
	for i := 0; rows.Next(); i++ {
		var e LeaderboardEntry
		var words, created string
		if err := rows.Scan(&e.UserID, &e.Score, &words, &created); err != nil {
			return Leaderboard{}, err
		}
		if e.Score < 0 {
			e.Score = 0
		}
		if i > 0 && e.Score == lastScore {
			e.Rank = lastRank
		} else {
			e.Rank = i + 1
		}
		lastRank, lastScore = e.Rank, e.Score
		e.Words = parseWords(words)
		e.SubmittedAt = parseTime(created)
		lb.Entries = append(lb.Entries, e)
	}
	return lb, rows.Err()
}

// parseWords decodes a stored JSON word list, dropping blanks and non-strings.
func parseWords(raw string) []string {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
