package oddscache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/domain/odds"
	"courtside/internal/logging"
	"courtside/internal/metrics"
	"courtside/internal/providers"
	"courtside/internal/providers/oddsapi"
)

const defaultTTL = time.Hour

// BoardClient fetches the full upstream odds board.
type BoardClient interface {
	Board(ctx context.Context) ([]oddsapi.Game, error)
}

// Cache is a time-boxed, single-entry cache in front of the odds
// provider. Reads within the TTL serve the persisted board without a
// network call; a miss or expiry triggers exactly one refresh, with
// concurrent callers serialized behind the refresh lock.
type Cache struct {
	client   BoardClient
	store    Store
	ttl      time.Duration
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	refreshMu sync.Mutex
}

// New constructs a Cache. A nil store falls back to process memory.
func New(client BoardClient, store Store, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		client:   client,
		store:    store,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// BoardFor returns odds for the given games. A fresh persisted board is
// returned verbatim; otherwise the upstream board is fetched once,
// reduced against the games, persisted and returned. Every failure mode
// degrades to an empty board.
func (c *Cache) BoardFor(ctx context.Context, games []domaingames.ScoreboardGame) odds.Board {
	if len(games) == 0 {
		return odds.Board{}
	}

	if board, ok := c.loadFresh(ctx); ok {
		c.recorder.RecordCacheHit()
		return board
	}
	c.recorder.RecordCacheMiss()

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have refreshed while we waited on the lock.
	if board, ok := c.loadFresh(ctx); ok {
		return board
	}

	return c.refresh(ctx, games)
}

func (c *Cache) loadFresh(ctx context.Context) (odds.Board, bool) {
	snap, err := c.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			logging.Warn(c.logger, "odds cache read failed", "error", err)
		}
		return nil, false
	}
	if c.now().Sub(snap.FetchedAt) >= c.ttl {
		return nil, false
	}
	if snap.Board == nil {
		return odds.Board{}, true
	}
	return snap.Board, true
}

func (c *Cache) refresh(ctx context.Context, games []domaingames.ScoreboardGame) odds.Board {
	start := c.now()
	upstream, err := providers.Retry(ctx, c.logger, oddsapi.ProviderName, func() ([]oddsapi.Game, error) {
		return c.client.Board(ctx)
	})
	providers.Observe(c.logger, c.recorder, oddsapi.ProviderName, start, err)

	if err != nil {
		switch {
		case errors.Is(err, providers.ErrDisabled):
			logging.Info(c.logger, "odds lookups disabled, no api key configured")
		default:
			if _, ok := providers.AsQuotaError(err); ok {
				logging.Warn(c.logger, "odds provider quota reached, serving empty board")
			} else {
				logging.Error(c.logger, "odds board fetch failed", err)
			}
		}
		return odds.Board{}
	}

	board := BuildBoard(upstream, games)
	snap := odds.Snapshot{Board: board, FetchedAt: c.now()}
	if err := c.store.Save(ctx, snap); err != nil {
		logging.Warn(c.logger, "odds cache write failed", "error", err)
	}

	logging.Info(c.logger, "odds board refreshed",
		logging.FieldProvider, oddsapi.ProviderName,
		logging.FieldCount, len(board),
	)
	return board
}
