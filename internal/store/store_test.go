package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/words"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestGames_FirstSaveWins(t *testing.T) {
	ctx := context.Background()
	g := NewGames(openTestDB(t))

	_, err := g.FindByDate(ctx, "2025-01-01")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, g.Save(ctx, Game{Date: "2025-01-01", Letters: "ALATLAPIAEDEGNIATCHDNKPEE", Seed: "abc"}))
	require.NoError(t, g.Save(ctx, Game{Date: "2025-01-01", Letters: "HCHIMEONLDGASEOWDOIPEIWEE", Seed: "def"}))

	got, err := g.FindByDate(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, "ALATLAPIAEDEGNIATCHDNKPEE", got.Letters)
	assert.Equal(t, "abc", got.Seed)
	assert.NotZero(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSubmissions_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissions(openTestDB(t))

	first, err := s.Upsert(ctx, Submission{UserID: "u1", Date: "2025-01-01", Words: []string{"TALE"}, Score: 1})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := s.Upsert(ctx, Submission{UserID: "u1", Date: "2025-01-01", Words: []string{"TALE", "PLATE"}, Score: 3})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := s.Get(ctx, "u1", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"TALE", "PLATE"}, got.Words)
	assert.Equal(t, 3, got.Score)

	_, err = s.Get(ctx, "u2", "2025-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissions_LeaderboardRanksTies(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissions(openTestDB(t))

	for _, sub := range []Submission{
		{UserID: "a", Date: "2025-01-01", Score: 5},
		{UserID: "b", Date: "2025-01-01", Score: 9},
		{UserID: "c", Date: "2025-01-01", Score: 5},
		{UserID: "d", Date: "2025-01-01", Score: 2},
		{UserID: "e", Date: "2025-01-02", Score: 99},
	} {
		_, err := s.Upsert(ctx, sub)
		require.NoError(t, err)
	}

	lb, err := s.Leaderboard(ctx, "2025-01-01", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultLeaderboardLimit, lb.Limit)
	assert.Equal(t, 4, lb.TotalPlayers)
	require.Len(t, lb.Entries, 4)

	var users []string
	var ranks []int
	for _, e := range lb.Entries {
		users = append(users, e.UserID)
		ranks = append(ranks, e.Rank)
		assert.NotNil(t, e.Words)
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, users)
	assert.Equal(t, []int{1, 2, 2, 4}, ranks)

	top, err := s.Leaderboard(ctx, "2025-01-01", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, top.TotalPlayers)
	assert.Len(t, top.Entries, 2)

	empty, err := s.Leaderboard(ctx, "1999-01-01", 10)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalPlayers)
	assert.Empty(t, empty.Entries)
}

func TestParseWords(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, parseWords(`[" A ", 3, "", "B", null]`))
	assert.Empty(t, parseWords(`not json`))
	assert.Empty(t, parseWords(`{"a":1}`))
}

func TestUsers_CreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	u := NewUsers(openTestDB(t))

	created, err := u.Create(ctx, "  Alice_1 ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "Alice_1", created.Username)
	assert.Len(t, created.ID, 22)
	assert.NotEqual(t, "correct horse", created.PasswordHash)

	_, err = u.Create(ctx, "alice_1", "another password")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	byName, err := u.FindByUsername(ctx, "ALICE_1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := u.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice_1", byID.Username)

	_, err = u.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	authed, err := u.Authenticate(ctx, "alice_1", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)

	_, err = u.Authenticate(ctx, "alice_1", "wrong password")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_CreateRejectsLongPassword(t *testing.T) {
	u := NewUsers(openTestDB(t))
	_, err := u.Create(context.Background(), "longpw", strings.Repeat("a", 80))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestUsers_DuplicateInsertMapsToTaken(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	u := NewUsers(db)
	_, err := u.Create(ctx, "racer", "correct horse")
	require.NoError(t, err)

	// The insert a losing concurrent signup would run after passing the existence check.
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		genID(), "RACER", "x", "2025-01-01T00:00:00Z")
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
	assert.False(t, isUniqueViolation(sql.ErrNoRows))
}

func TestValidateSignup(t *testing.T) {
	cases := []struct {
		name, user, pw string
		want           error
	}{
		{"ok", "bob", "12345678", nil},
		{"short name", "bo", "12345678", ErrInvalidUsername},
		{"long name", "abcdefghijklmnopqrstuvwxy", "12345678", ErrInvalidUsername},
		{"bad char", "bob!", "12345678", ErrInvalidUsername},
		{"short password", "bob", "1234567", ErrInvalidPassword},
		{"bcrypt limit", "bob", strings.Repeat("a", 72), nil},
		{"over bcrypt limit", "bob", strings.Repeat("a", 73), ErrInvalidPassword},
		{"multibyte over limit", "bob", strings.Repeat("é", 37), ErrInvalidPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSignup(tc.user, tc.pw)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySessions()
	b, err := board.Parse("ALATLAPIAEDEGNIATCHDNKPEE")
	require.NoError(t, err)
	sess := game.NewSession("2025-01-01", b, words.NewSet(nil))

	_, err = m.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save(ctx, sess))
	got, err := m.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, m.Delete(ctx, sess.ID))
	require.NoError(t, m.Delete(ctx, sess.ID))
	_, err = m.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
