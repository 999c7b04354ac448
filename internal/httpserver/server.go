// internal/httpserver/server.go
//
// HTTP server wiring for the wordgrid backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Board endpoints: GET /board, POST /validate, POST /find.
//   - Word definitions: GET /definition.
//   - Daily results: POST /submit (requires auth), GET /leaderboard.
//   - Play sessions: mounted under /play (see routes_play.go).
//   - Auth endpoints: /auth/* (see auth.go).
//
// Notes:
//   - "Today" always comes from the injected clock, in UTC.
//   - Boards are read from the games table when present, otherwise generated
//     and stored so every later request for that date sees the same letters.
//   - Errors are JSON envelopes: {"status":"error","error":"<code>"}.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/config"
	"github.com/robalobadob/wordgrid/internal/daily"
	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/path"
	"github.com/robalobadob/wordgrid/internal/store"
	"github.com/robalobadob/wordgrid/internal/words"
)

// Error codes returned in the "error" field of failed responses.
const (
	errInvalidJSON  = "invalid-json"
	errInvalidPath  = "invalid-path"
	errInvalidLimit = "invalid-limit"
	errInvalidWords = "invalid-words"
	errInvalidScore = "invalid-score"
	errDatabase     = "database-error"
	errUnauthorized = "unauthorized"
	errNotFound     = "not-found"
	errInvalidWord  = "invalid-word"

	errUsernameTaken   = "username-taken"
	errInvalidUsername = "invalid-username"
	errInvalidPassword = "invalid-password"
	errBadCredentials  = "invalid-credentials"
	errSignFailed      = "sign-failed"

	errSessionFinished = "session-finished"
	errAlreadyFound    = "already-found"
)

// Leaderboard limits accepted on GET /leaderboard.
const maxLeaderboardLimit = 50

// Server bundles router, configuration, clock, dictionary and persistence.
type Server struct {
	r        *chi.Mux
	cfg      *config.Config
	clock    quartz.Clock
	dict     words.Dictionary
	defs     *words.Definitions
	games    *store.Games
	subs     *store.Submissions
	users    *store.Users
	sessions store.Sessions
}

// New constructs a Server, installs middleware, and registers routes.
// defs may be nil, in which case every definition lookup is not-found.
func New(cfg *config.Config, db *sql.DB, sessions store.Sessions, dict words.Dictionary, defs *words.Definitions, clock quartz.Clock) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		clock:    clock,
		dict:     dict,
		defs:     defs,
		games:    store.NewGames(db),
		subs:     store.NewSubmissions(db),
		users:    store.NewUsers(db),
		sessions: sessions,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordgrid","endpoints":["/health","/board","POST /validate","POST /find","/definition","/play/*","POST /submit","/leaderboard","/auth/*"]}`))
	})
	s.r.Get("/health", s.handleHealth)

	// --- board ---
	s.r.Get("/board", s.handleBoard)
	s.r.Post("/validate", s.handleValidate)
	s.r.Post("/find", s.handleFind)
	s.r.Get("/definition", s.handleDefinition)

	// --- results ---
	s.r.With(s.requireAuth()).Post("/submit", s.handleSubmit)
	s.r.Get("/leaderboard", s.handleLeaderboard)

	// Play sessions — OPTIONAL AUTH (guests can play; signed-in players can record)
	s.mountPlay(s.r.With(s.withOptionalAuth()))

	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ helpers ------------------------------------

type envInfo struct {
	HasDailySalt bool `json:"hasDailySalt"`
}

type errorRes struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorRes{Status: "error", Error: code})
}

// resolveDate accepts only string dates; anything else means today.
func (s *Server) resolveDate(v any) string {
	str, _ := v.(string)
	return daily.ResolveDate(str, s.clock.Now())
}

// boardFor returns the stored board for date, generating and storing it if missing.
// A stored row whose letters no longer parse is ignored in favour of a fresh generation.
func (s *Server) boardFor(ctx context.Context, date string) (board.Board, error) {
	g, err := s.games.FindByDate(ctx, date)
	switch {
	case err == nil:
		if b, perr := board.Parse(g.Letters); perr == nil {
			return b, nil
		}
		log.Warn().Str("date", date).Msg("stored board unreadable; regenerating")
	case !errors.Is(err, store.ErrNotFound):
		return board.Board{}, err
	}

	b := board.Generate(date, s.cfg.Salt)
	if err := s.games.Save(ctx, store.Game{
		Date:    date,
		Letters: board.Flatten(b),
		Seed:    daily.SeedDigest(date, s.cfg.Salt),
	}); err != nil {
		return board.Board{}, err
	}
	return b, nil
}

// ------------------------------ health -------------------------------------

type healthRes struct {
	Status string `json:"status"`
	Env    struct {
		HasDailySalt bool `json:"hasDailySalt"`
		Words        int  `json:"words"`
	} `json:"env"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	res := healthRes{Status: "ok"}
	res.Env.HasDailySalt = s.cfg.HasDailySalt
	if l, ok := s.dict.(interface{ Len() int }); ok {
		res.Env.Words = l.Len()
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------ board --------------------------------------

type boardRes struct {
	Status  string     `json:"status"`
	Date    string     `json:"date"`
	Board   [][]string `json:"board"`
	Letters string     `json:"letters"`
	Env     envInfo    `json:"env"`
}

// handleBoard serves the board for ?date= (today when missing or malformed).
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	date := daily.ResolveDate(r.URL.Query().Get("date"), s.clock.Now())
	b, err := s.boardFor(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("load board")
		writeError(w, http.StatusInternalServerError, errDatabase)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, boardRes{
		Status:  "ok",
		Date:    date,
		Board:   b.Rows(),
		Letters: board.Flatten(b),
		Env:     envInfo{HasDailySalt: s.cfg.HasDailySalt},
	})
}

// ----------------------------- validate ------------------------------------

type validateReq struct {
	Date any             `json:"date"`
	Path json.RawMessage `json:"path"`
}

type validateRes struct {
	Status  string         `json:"status"`
	Date    string         `json:"date"`
	Env     envInfo        `json:"env"`
	Letters string         `json:"letters"`
	Result  game.WordCheck `json:"result"`
}

// handleValidate checks a coordinate path against the day's board.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}
	p, err := path.Decode(req.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, errInvalidPath)
		return
	}
	date := s.resolveDate(req.Date)
	b, err := s.boardFor(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("load board")
		writeError(w, http.StatusInternalServerError, errDatabase)
		return
	}
	writeJSON(w, http.StatusOK, validateRes{
		Status:  "ok",
		Date:    date,
		Env:     envInfo{HasDailySalt: s.cfg.HasDailySalt},
		Letters: board.Flatten(b),
		Result:  game.Check(b, p, s.dict),
	})
}

// ------------------------------- find --------------------------------------

type findReq struct {
	Date any    `json:"date"`
	Word string `json:"word"`
}

type findRes struct {
	Status string    `json:"status"`
	Date   string    `json:"date"`
	Word   string    `json:"word"`
	Path   path.Path `json:"path"`
}

// handleFind locates a typed word on the day's board; path is null when absent.
func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	var req findReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}
	date := s.resolveDate(req.Date)
	b, err := s.boardFor(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("load board")
		writeError(w, http.StatusInternalServerError, errDatabase)
		return
	}
	word := strings.ToUpper(strings.TrimSpace(req.Word))
	p, _ := path.Find(b, word)
	writeJSON(w, http.StatusOK, findRes{Status: "ok", Date: date, Word: word, Path: p})
}

// ----------------------------- definition ----------------------------------

type definitionRes struct {
	Status string `json:"status"`
	words.Definition
}

type definitionMissRes struct {
	Status string `json:"status"`
	Word   string `json:"word"`
}

// handleDefinition looks up ?word=. A word with no entry is a 200 "not-found".
func (s *Server) handleDefinition(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, errInvalidWord)
		return
	}
	def, ok := s.defs.Lookup(word)
	if !ok {
		writeJSON(w, http.StatusOK, definitionMissRes{Status: "not-found", Word: word})
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, definitionRes{Status: "ok", Definition: def})
}

// ------------------------------ submit -------------------------------------

type submitReq struct {
	Date  any `json:"date"`
	Words any `json:"words"`
	Score any `json:"score"`
}

type submitRes struct {
	Status     string           `json:"status"`
	Date       string           `json:"date"`
	Submission store.Submission `json:"submission"`
}

// handleSubmit records the signed-in player's words and score for a date.
// Resubmitting for the same date replaces the earlier entry.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		writeError(w, http.StatusUnauthorized, errUnauthorized)
		return
	}
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}
	list, ok := normalizeWords(req.Words)
	if !ok {
		writeError(w, http.StatusBadRequest, errInvalidWords)
		return
	}
	score, ok := normalizeScore(req.Score)
	if !ok {
		writeError(w, http.StatusBadRequest, errInvalidScore)
		return
	}
	date := s.resolveDate(req.Date)

	sub, err := s.subs.Upsert(r.Context(), store.Submission{
		UserID: me.ID,
		Date:   date,
		Words:  list,
		Score:  score,
	})
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Str("date", date).Msg("record submission")
		writeError(w, http.StatusInternalServerError, errDatabase)
		return
	}
	writeJSON(w, http.StatusOK, submitRes{Status: "ok", Date: date, Submission: sub})
}

// normalizeWords accepts an array of non-blank strings, returned trimmed.
func normalizeWords(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		str, ok := it.(string)
		if !ok {
			return nil, false
		}
		if str = strings.TrimSpace(str); str == "" {
			return nil, false
		}
		out = append(out, str)
	}
	return out, true
}

// normalizeScore accepts a finite JSON number, floored, that is not negative.
func normalizeScore(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Floor(f)
	if f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// ---------------------------- leaderboard ----------------------------------

type leaderboardRes struct {
	Status string `json:"status"`
	store.Leaderboard
}

var digits = regexp.MustCompile(`^\d+$`)

// resolveLimit maps ?limit= to 1..maxLeaderboardLimit; blank means the default.
func resolveLimit(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return store.DefaultLeaderboardLimit, true
	}
	if !digits.MatchString(raw) {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLeaderboardLimit {
		return 0, false
	}
	return n, true
}

// handleLeaderboard lists the top submissions for ?date= (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := daily.ResolveDate(q.Get("date"), s.clock.Now())
	limit, ok := resolveLimit(q.Get("limit"))
	if !ok {
		writeError(w, http.StatusBadRequest, errInvalidLimit)
		return
	}
	lb, err := s.subs.Leaderboard(r.Context(), date, limit)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("fetch leaderboard")
		writeError(w, http.StatusInternalServerError, errDatabase)
		return
	}
	writeJSON(w, http.StatusOK, leaderboardRes{Status: "ok", Leaderboard: lb})
}
