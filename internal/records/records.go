// Package records persists match metadata: who played, at what
// difficulty, how many half-turns, and how it ended. Board positions and
// move lists are deliberately never stored.
package records

import (
	"context"
	"database/sql"
)

// Match is the metadata written for one match. Exactly one of UserID or
// AnonymousID is set; the other stays empty and lands as NULL.
type Match struct {
	ID          string
	UserID      string
	AnonymousID string
	Difficulty  string
	Status      string
	StartedAt   string
}

// HistoryRow is one entry of a user's recent-match listing.
type HistoryRow struct {
	ID         string `json:"id"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
	Moves      int    `json:"moves"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// Owner scopes row updates to the match's creator: the authenticated
// user when set, otherwise the anonymous cookie id. A caller holding
// only the match ID cannot touch another owner's row.
type Owner struct {
	UserID      string
	AnonymousID string
}

// clause returns the SQL owner guard and its argument. An id that was
// never written to a row (including a freshly minted anonymous id)
// matches nothing, so the update silently no-ops.
func (o Owner) clause() (string, any) {
	if o.UserID != "" {
		return `user_id=?`, o.UserID
	}
	return `anonymous_id=?`, o.AnonymousID
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, m Match) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games(id, user_id, anonymous_id, difficulty, status, moves, started_at)
		 VALUES(?, NULLIF(?,''), NULLIF(?,''), ?, ?, 0, ?)`,
		m.ID, m.UserID, m.AnonymousID, m.Difficulty, m.Status, m.StartedAt,
	)
	return err
}

// Progress updates the half-turn counter of an ongoing match.
func (s *Store) Progress(ctx context.Context, id string, by Owner, moves int) error {
	ownerClause, ownerArg := by.clause()
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET moves=? WHERE id=? AND `+ownerClause, moves, id, ownerArg,
	)
	return err
}

// Finish stamps the final status, counter, and end time on a match row.
func (s *Store) Finish(ctx context.Context, id string, by Owner, status string, moves int, finishedAt string) error {
	ownerClause, ownerArg := by.clause()
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET status=?, moves=?, finished_at=? WHERE id=? AND `+ownerClause,
		status, moves, finishedAt, id, ownerArg,
	)
	return err
}

// ClaimAnonymous reassigns guest matches to a user account after auth.
func (s *Store) ClaimAnonymous(ctx context.Context, anonID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`,
		userID, anonID,
	)
	return err
}

// RecentByUser returns a user's matches, newest first.
func (s *Store) RecentByUser(ctx context.Context, userID string, limit int) ([]HistoryRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, difficulty, status, moves, started_at, COALESCE(finished_at,'')
		 FROM games
		 WHERE user_id=?
		 ORDER BY started_at DESC
		 LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []HistoryRow{}
	for rows.Next() {
		var r HistoryRow
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Status, &r.Moves, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
