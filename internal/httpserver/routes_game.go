// internal/httpserver/routes_game.go
//
// HTTP routes for playing a match against the computer.
// Exposes three endpoints under /game:
//   - POST /game/new   → start a match (difficulty + optional seed)
//   - POST /game/move  → play one full exchange (human move + computer reply)
//   - GET  /game/{id}  → poll the current match state
//
// Live match state is held in the in-memory store for the lifetime of the
// process; only metadata (owner, difficulty, status, move count) is
// persisted through internal/records. Guests play under an anonymous
// cookie and their rows are claimed on signup/login.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/checkers-server/internal/ai"
	"github.com/robalobadob/checkers-server/internal/game"
	"github.com/robalobadob/checkers-server/internal/match"
	"github.com/robalobadob/checkers-server/internal/random"
	"github.com/robalobadob/checkers-server/internal/records"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewMatch)
		r.Post("/move", s.handleMove)
		r.Get("/{id}", s.handleMatchState)
	})
}

// matchView is the state snapshot every game endpoint returns: the board
// as an 8x8 array of piece tokens ("" / "t" / "T" / "p" / "P"), whose
// turn it is, the result so far, and the piece counts the client shows.
type matchView struct {
	GameID      string        `json:"gameId"`
	Board       game.Board    `json:"board"`
	Turn        game.Side     `json:"turn"`
	Status      match.Status  `json:"status"`
	Difficulty  ai.Difficulty `json:"difficulty"`
	Moves       int           `json:"moves"`
	TealCount   int           `json:"tealCount"`
	PurpleCount int           `json:"purpleCount"`
}

// viewOf builds the wire snapshot for a match.
func viewOf(m *match.Match) matchView {
	teal, purple := m.State.Board.Count()
	return matchView{
		GameID:      m.ID,
		Board:       m.State.Board,
		Turn:        m.State.Turn,
		Status:      m.Status,
		Difficulty:  m.Difficulty,
		Moves:       m.Moves,
		TealCount:   teal,
		PurpleCount: purple,
	}
}

// -----------------------------------------------------------------------------
// POST /game/new

// newMatchReq is the request payload for /game/new. Both fields are
// optional: difficulty defaults to medium, and without a seed the
// computer's play is seeded from crypto/rand.
type newMatchReq struct {
	Difficulty string `json:"difficulty"`
	Seed       *int64 `json:"seed"`
}

// handleNewMatch creates a match in the starting position, keeps it in
// the in-memory store, and persists a metadata row for history/stats
// (owned by the user, or by the anonymous cookie for guests).
func (s *Server) handleNewMatch(w http.ResponseWriter, r *http.Request) {
	var req newMatchReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	d := ai.DefaultDifficulty
	if req.Difficulty != "" {
		var ok bool
		if d, ok = ai.ParseDifficulty(req.Difficulty); !ok {
			http.Error(w, `{"error":"invalid_difficulty"}`, http.StatusBadRequest)
			return
		}
	}

	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			log.Error().Err(err).Msg("draw match seed")
			http.Error(w, `{"error":"seed_failed"}`, http.StatusInternalServerError)
			return
		}
	}

	m := match.New(d, seed)
	if err := s.store.Save(r.Context(), m); err != nil {
		log.Error().Err(err).Msg("save match")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist owner row; board positions never reach the database.
	row := records.Match{
		ID:         m.ID,
		Difficulty: m.Difficulty.String(),
		Status:     m.Status.String(),
		StartedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		row.UserID = me.ID
	} else {
		row.AnonymousID = s.ensureAnonID(w, r)
	}
	if err := s.records.Insert(r.Context(), row); err != nil {
		log.Warn().Err(err).Str("gameId", m.ID).Msg("insert match row")
	}

	log.Info().Str("gameId", m.ID).Str("difficulty", m.Difficulty.String()).Msg("match started")
	_ = json.NewEncoder(w).Encode(viewOf(m))
}

// -----------------------------------------------------------------------------
// POST /game/move

// moveReq is the request payload for /game/move.
type moveReq struct {
	GameID string     `json:"gameId"`
	From   game.Coord `json:"from"`
	To     game.Coord `json:"to"`
}

// moveRes reports one full exchange: whether the human move captured,
// the computer's reply (absent when the match ended first), and the
// resulting state. Clients key their capture/win/lose feedback off it.
type moveRes struct {
	Capture bool       `json:"capture"`
	Reply   *game.Move `json:"reply,omitempty"`
	State   matchView  `json:"state"`
}

// handleMove plays one turn through the match orchestration, persists
// progress (best effort, non-fatal if it fails), and bumps user stats
// when the match ends.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	m, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	// One exchange at a time: PlayTurn mutates the shared match, so two
	// concurrent moves on the same game must not interleave.
	s.mu.Lock()
	res, err := m.PlayTurn(req.From, req.To)
	switch {
	case errors.Is(err, match.ErrFinished):
		s.mu.Unlock()
		http.Error(w, `{"error":"match_finished"}`, http.StatusConflict)
		return
	case errors.Is(err, match.ErrIllegalMove):
		s.mu.Unlock()
		http.Error(w, `{"error":"illegal_move"}`, http.StatusBadRequest)
		return
	case err != nil:
		s.mu.Unlock()
		http.Error(w, `{"error":"move_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), m); err != nil {
		s.mu.Unlock()
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	view := viewOf(m)
	s.mu.Unlock()

	// Persist counters/history (best effort, non-fatal if it fails).
	// Row updates are scoped to the match owner, so holding a gameId is
	// not enough to touch someone else's history.
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	by := records.Owner{AnonymousID: s.ensureAnonID(w, r)}
	if me != nil {
		by = records.Owner{UserID: me.ID}
	}
	if view.Status.Finished() {
		now := time.Now().UTC().Format(time.RFC3339)
		if err := s.records.Finish(r.Context(), m.ID, by, view.Status.String(), view.Moves, now); err != nil {
			log.Warn().Err(err).Str("gameId", m.ID).Msg("finish match row")
		}
		if me != nil {
			if tx, err := s.db.Begin(); err == nil {
				if err := s.bumpStats(tx, me.ID, view.Status == match.StatusTealWon); err != nil {
					log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
					_ = tx.Rollback()
				} else {
					_ = tx.Commit()
				}
			}
		}
		log.Info().Str("gameId", m.ID).Str("status", view.Status.String()).Msg("match finished")
	} else {
		if err := s.records.Progress(r.Context(), m.ID, by, view.Moves); err != nil {
			log.Warn().Err(err).Str("gameId", m.ID).Msg("update match row")
		}
	}

	_ = json.NewEncoder(w).Encode(moveRes{Capture: res.Capture, Reply: res.Reply, State: view})
}

// -----------------------------------------------------------------------------
// GET /game/{id}

// handleMatchState returns the current snapshot of a live match, for
// board polling and client reconnects.
func (s *Server) handleMatchState(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	s.mu.Lock()
	view := viewOf(m)
	s.mu.Unlock()
	_ = json.NewEncoder(w).Encode(view)
}
