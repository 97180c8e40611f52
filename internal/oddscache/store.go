package oddscache

import (
	"context"
	"errors"
	"sync"

	"courtside/internal/domain/odds"
)

// ErrNoSnapshot reports that no persisted board exists yet.
var ErrNoSnapshot = errors.New("oddscache: no snapshot persisted")

// Store persists the single odds cache entry.
type Store interface {
	Load(ctx context.Context) (odds.Snapshot, error)
	Save(ctx context.Context, snap odds.Snapshot) error
}

// MemoryStore keeps the snapshot in process memory. It is the fallback
// when neither redis nor a cache file is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	snap odds.Snapshot
	set  bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (odds.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return odds.Snapshot{}, ErrNoSnapshot
	}
	return s.snap, nil
}

func (s *MemoryStore) Save(ctx context.Context, snap odds.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.set = true
	return nil
}
