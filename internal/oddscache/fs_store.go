package oddscache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"courtside/internal/domain/odds"
)

const snapshotFile = "board.json"

// FSStore persists the odds snapshot as a JSON file. Writes go through a
// temp file and rename so readers never observe a partial snapshot.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a filesystem-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

func (s *FSStore) path() string {
	return filepath.Join(s.basePath, snapshotFile)
}

func (s *FSStore) Load(ctx context.Context) (odds.Snapshot, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return odds.Snapshot{}, ErrNoSnapshot
		}
		return odds.Snapshot{}, err
	}

	var snap odds.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return odds.Snapshot{}, err
	}
	return snap, nil
}

func (s *FSStore) Save(ctx context.Context, snap odds.Snapshot) error {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	target := s.path()
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
