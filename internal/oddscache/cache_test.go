package oddscache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/domain/odds"
	"courtside/internal/metrics"
	"courtside/internal/providers"
	"courtside/internal/providers/oddsapi"
)

type fakeBoardClient struct {
	mu    sync.Mutex
	games []oddsapi.Game
	err   error
	calls int
}

func (f *fakeBoardClient) Board(ctx context.Context) ([]oddsapi.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.games, f.err
}

func (f *fakeBoardClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func upstreamGame(id, home, away string, homePrice, awayPrice float64) oddsapi.Game {
	return oddsapi.Game{
		ID:       id,
		HomeTeam: home,
		AwayTeam: away,
		Bookmakers: []oddsapi.Bookmaker{{
			Key: "fanduel",
			Markets: []oddsapi.Market{{
				Key: "h2h",
				Outcomes: []oddsapi.Outcome{
					{Name: home, Price: homePrice},
					{Name: away, Price: awayPrice},
				},
			}},
		}},
	}
}

func knownGames() []domaingames.ScoreboardGame {
	return []domaingames.ScoreboardGame{{
		ID:       "game-1",
		Type:     domaingames.TypeUpcoming,
		HomeTeam: domaingames.Side{Name: "Warriors"},
		AwayTeam: domaingames.Side{Name: "Lakers"},
	}}
}

func newTestCache(client BoardClient, ttl time.Duration, now func() time.Time) *Cache {
	c := New(client, NewMemoryStore(), ttl, nil, metrics.NewRecorder())
	if now != nil {
		c.now = now
	}
	return c
}

func TestBoardForFetchesOnceWithinTTL(t *testing.T) {
	client := &fakeBoardClient{games: []oddsapi.Game{
		upstreamGame("u1", "Golden State Warriors", "Los Angeles Lakers", -150, 130),
	}}
	cache := newTestCache(client, time.Hour, nil)

	board := cache.BoardFor(context.Background(), knownGames())
	require.Len(t, board, 1)
	require.Equal(t, -150, board["game-1"].Home.Price)
	require.Equal(t, 1, client.callCount())

	// Second read within the TTL serves the persisted board.
	board = cache.BoardFor(context.Background(), knownGames())
	require.Len(t, board, 1)
	require.Equal(t, 1, client.callCount())
}

func TestBoardForRefreshesAfterExpiry(t *testing.T) {
	client := &fakeBoardClient{games: []oddsapi.Game{
		upstreamGame("u1", "Golden State Warriors", "Los Angeles Lakers", -150, 130),
	}}

	current := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	cache := newTestCache(client, time.Hour, func() time.Time { return current })

	cache.BoardFor(context.Background(), knownGames())
	require.Equal(t, 1, client.callCount())

	current = current.Add(2 * time.Hour)
	cache.BoardFor(context.Background(), knownGames())
	require.Equal(t, 2, client.callCount())
}

func TestBoardForEmptyGamesSkipsLookup(t *testing.T) {
	client := &fakeBoardClient{}
	cache := newTestCache(client, time.Hour, nil)

	board := cache.BoardFor(context.Background(), nil)
	require.Empty(t, board)
	require.Equal(t, 0, client.callCount())
}

func TestBoardForDegradesWhenDisabled(t *testing.T) {
	client := &fakeBoardClient{err: providers.ErrDisabled}
	cache := newTestCache(client, time.Hour, nil)

	board := cache.BoardFor(context.Background(), knownGames())
	require.Empty(t, board)
	require.Equal(t, 1, client.callCount())
}

func TestBoardForDegradesOnQuotaExhaustion(t *testing.T) {
	client := &fakeBoardClient{err: &providers.QuotaError{Provider: "oddsapi", StatusCode: 401}}
	cache := newTestCache(client, time.Hour, nil)

	board := cache.BoardFor(context.Background(), knownGames())
	require.Empty(t, board)
	// Quota exhaustion must not trigger retries.
	require.Equal(t, 1, client.callCount())
}

func TestBoardForRecordsHitsAndMisses(t *testing.T) {
	client := &fakeBoardClient{games: []oddsapi.Game{
		upstreamGame("u1", "Golden State Warriors", "Los Angeles Lakers", -150, 130),
	}}
	recorder := metrics.NewRecorder()
	cache := New(client, NewMemoryStore(), time.Hour, nil, recorder)

	cache.BoardFor(context.Background(), knownGames())
	cache.BoardFor(context.Background(), knownGames())

	require.Equal(t, 1, recorder.CacheMisses())
	require.Equal(t, 1, recorder.CacheHits())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoSnapshot)

	snap := odds.Snapshot{
		Board:     odds.Board{"game-1": {Home: odds.Price{Price: -120}}},
		FetchedAt: time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(context.Background(), snap))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, snap, loaded)
}
