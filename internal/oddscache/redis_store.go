package oddscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"courtside/internal/domain/odds"
)

const redisKey = "courtside:odds:board"

// RedisStore persists the odds snapshot under a single redis key.
type RedisStore struct {
	client *redis.Client
	// Keys expire well after the cache TTL so a stale entry can still
	// serve as the base for staleness detection across restarts.
	expiry time.Duration
}

// NewRedisStore constructs a redis-backed store.
func NewRedisStore(client *redis.Client, expiry time.Duration) *RedisStore {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &RedisStore{client: client, expiry: expiry}
}

func (s *RedisStore) Load(ctx context.Context) (odds.Snapshot, error) {
	data, err := s.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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

func (s *RedisStore) Save(ctx context.Context, snap odds.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey, data, s.expiry).Err()
}
