// internal/httpserver/routes_play.go
//
// HTTP routes for interactive play on a day's board.
// Exposes three endpoints under /play:
//   - POST /play/new    → start a session on the board for a date (default today)
//   - POST /play/word   → submit a path or a typed word to a session
//   - POST /play/finish → end the session; signed-in players get a submission recorded
//
// Sessions live in the in-memory Sessions store; only finished results are
// persisted, through the submissions table.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/path"
	"github.com/robalobadob/wordgrid/internal/store"
)

// mountPlay registers all /play routes.
func (s *Server) mountPlay(r chi.Router) {
	r.Route("/play", func(r chi.Router) {
		r.Post("/new", s.handlePlayNew)
		r.Post("/word", s.handlePlayWord)
		r.Post("/finish", s.handlePlayFinish)
	})
}

// -----------------------------------------------------------------------------
// /play/new

type playNewReq struct {
	Date any `json:"date"`
}

type playNewRes struct {
	Status    string     `json:"status"`
	SessionID string     `json:"sessionId"`
	Date      string     `json:"date"`
	Board     [][]string `json:"board"`
	Letters   string     `json:"letters"`
}

// handlePlayNew starts a session. An empty body means today's board.
func (s *Server) handlePlayNew(w http.ResponseWriter, r *http.Request) {
	var req playNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
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
	sess := game.NewSession(date, b, s.dict)
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, errDatabase)
		return
	}
	writeJSON(w, http.StatusOK, playNewRes{
		Status:    "ok",
		SessionID: sess.ID,
		Date:      date,
		Board:     b.Rows(),
		Letters:   board.Flatten(b),
	})
}

// -----------------------------------------------------------------------------
// /play/word

// playWordReq carries either a coordinate path or a typed word; path wins.
type playWordReq struct {
	SessionID string          `json:"sessionId"`
	Path      json.RawMessage `json:"path"`
	Word      string          `json:"word"`
}

type playWordRes struct {
	Status string           `json:"status"`
	Result game.WordCheck   `json:"result"`
	Path   path.Path        `json:"path"`
	Found  []game.FoundWord `json:"found"`
	Total  int              `json:"total"`
}

// handlePlayWord checks one word for a session and returns the running tally.
//   - Rule failures (too short, bad path, unknown word) are 200s with ok=false.
//   - Words already found and finished sessions are 409s.
func (s *Server) handlePlayWord(w http.ResponseWriter, r *http.Request) {
	var req playWordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, errNotFound)
		return
	}

	var (
		res game.WordCheck
		p   path.Path
	)
	if len(req.Path) > 0 && string(req.Path) != "null" {
		if p, err = path.Decode(req.Path); err != nil {
			writeError(w, http.StatusBadRequest, errInvalidPath)
			return
		}
		res, err = sess.Submit(p)
	} else {
		res, p, err = sess.SubmitWord(req.Word)
		if errors.Is(err, game.ErrNotOnBoard) {
			res, err = game.WordCheck{Reason: game.ReasonInvalidPath}, nil
		}
	}

	switch {
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, errSessionFinished)
		return
	case errors.Is(err, game.ErrAlreadyFound):
		writeError(w, http.StatusConflict, errAlreadyFound)
		return
	case err != nil:
		log.Error().Err(err).Str("session", sess.ID).Msg("submit word")
		writeError(w, http.StatusInternalServerError, errDatabase)
		return
	}

	found, total, _ := sess.Snapshot()
	if found == nil {
		found = []game.FoundWord{}
	}
	writeJSON(w, http.StatusOK, playWordRes{
		Status: "ok",
		Result: res,
		Path:   p,
		Found:  found,
		Total:  total,
	})
}

// -----------------------------------------------------------------------------
// /play/finish

type playFinishReq struct {
	SessionID string `json:"sessionId"`
}

type playFinishRes struct {
	Status    string           `json:"status"`
	Date      string           `json:"date"`
	Found     []game.FoundWord `json:"found"`
	Total     int              `json:"total"`
	Submitted bool             `json:"submitted"`
}

// handlePlayFinish locks the session and, for signed-in players, records
// the found words and total as the day's submission.
func (s *Server) handlePlayFinish(w http.ResponseWriter, r *http.Request) {
	var req playFinishReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, errNotFound)
		return
	}
	sess.Finish()
	found, total, _ := sess.Snapshot()
	if found == nil {
		found = []game.FoundWord{}
	}

	submitted := false
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		if _, err := s.subs.Upsert(r.Context(), store.Submission{
			UserID: me.ID,
			Date:   sess.Date,
			Words:  sess.Words(),
			Score:  total,
		}); err != nil {
			log.Error().Err(err).Str("user", me.ID).Str("date", sess.Date).Msg("record submission")
			writeError(w, http.StatusInternalServerError, errDatabase)
			return
		}
		submitted = true
	}
	if err := s.sessions.Delete(r.Context(), sess.ID); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("drop session")
	}

	writeJSON(w, http.StatusOK, playFinishRes{
		Status:    "ok",
		Date:      sess.Date,
		Found:     found,
		Total:     total,
		Submitted: submitted,
	})
}
