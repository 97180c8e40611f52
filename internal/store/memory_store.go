// Package store holds the latest aggregated scoreboard in memory for
// request serving.
package store

import (
	"sync"
	"time"

	"courtside/internal/domain/games"
)

// MemoryStore is a thread-safe holder for the most recent board.
type MemoryStore struct {
	mu        sync.RWMutex
	games     []games.ScoreboardGame
	fetchedAt time.Time
	loaded    bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetBoard replaces the stored board.
func (s *MemoryStore) SetBoard(list []games.ScoreboardGame, fetchedAt time.Time) {
	copied := make([]games.ScoreboardGame, len(list))
	copy(copied, list)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = copied
	s.fetchedAt = fetchedAt
	s.loaded = true
}

// Board returns the stored board and whether anything has been stored
// yet. The returned slice is a copy.
func (s *MemoryStore) Board() (games.BoardResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]games.ScoreboardGame, len(s.games))
	copy(copied, s.games)
	return games.BoardResponse{FetchedAt: s.fetchedAt, Games: copied}, s.loaded
}

// GameByID looks up one game on the stored board.
func (s *MemoryStore) GameByID(id string) (games.ScoreboardGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, game := range s.games {
		if game.ID == id {
			return game, true
		}
	}
	return games.ScoreboardGame{}, false
}
