// internal/store/memory.go
//
// In-memory implementation of the match Store interface.
// Live matches only exist in process memory: nothing about a board
// position is ever written to disk, and every match is gone when the
// server restarts. Durable data (accounts, per-user aggregates) lives in
// SQLite instead, keyed by the match ID stored here.
//
// Characteristics:
//   - Stores *match.Match objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Get returns ErrNotFound for unknown match IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/checkers-server/internal/match"
)

// ErrNotFound is returned by Get for match IDs that were never saved or
// belong to a previous process run.
var ErrNotFound = errors.New("match not found")

// Store defines the persistence interface for live match sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a match.
	Save(ctx context.Context, m *match.Match) error

	// Get retrieves a match by ID.
	// Returns ErrNotFound if the match is unknown.
	Get(ctx context.Context, id string) (*match.Match, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex            // guards matches map
	matches map[string]*match.Match // keyed by Match.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{matches: make(map[string]*match.Match)}
}

// Save adds or updates the match in the map.
func (s *memory) Save(ctx context.Context, m *match.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = m
	return nil
}

// Get looks up a match by ID.
func (s *memory) Get(ctx context.Context, id string) (*match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.matches[id]; ok {
		return m, nil
	}
	return nil, ErrNotFound
}
