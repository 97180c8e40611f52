package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domaingames "courtside/internal/domain/games"
)

type fakeSource struct {
	mu    sync.Mutex
	games []domaingames.ScoreboardGame
	err   error
	calls int
}

func (f *fakeSource) Aggregate(ctx context.Context) ([]domaingames.ScoreboardGame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.games, f.err
}

type fakeSink struct {
	mu    sync.Mutex
	games []domaingames.ScoreboardGame
	sets  int
}

func (f *fakeSink) SetBoard(list []domaingames.ScoreboardGame, fetchedAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.games = list
	f.sets++
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	boards []domaingames.BoardResponse
}

func (f *fakeBroadcaster) Broadcast(board domaingames.BoardResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.boards = append(f.boards, board)
}

func TestFetchOncePublishesBoard(t *testing.T) {
	source := &fakeSource{games: []domaingames.ScoreboardGame{{ID: "g1"}}}
	sink := &fakeSink{}
	broadcaster := &fakeBroadcaster{}
	p := New(Config{Source: source, Sink: sink, Broadcaster: broadcaster, Interval: time.Hour})

	p.fetchOnce(context.Background())

	if sink.sets != 1 || len(sink.games) != 1 {
		t.Fatalf("sink sets=%d games=%d", sink.sets, len(sink.games))
	}
	if len(broadcaster.boards) != 1 || len(broadcaster.boards[0].Games) != 1 {
		t.Fatalf("broadcast boards = %+v", broadcaster.boards)
	}

	status := p.Status()
	if status.LastSuccess.IsZero() || status.ConsecutiveFailures != 0 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestFetchOnceRecordsFailures(t *testing.T) {
	source := &fakeSource{err: errors.New("upstream down")}
	sink := &fakeSink{}
	p := New(Config{Source: source, Sink: sink, Interval: time.Hour})

	for i := 0; i < 3; i++ {
		p.fetchOnce(context.Background())
	}

	if sink.sets != 0 {
		t.Fatalf("failed cycles must not publish, got %d sets", sink.sets)
	}
	status := p.Status()
	if status.ConsecutiveFailures != 3 {
		t.Fatalf("ConsecutiveFailures = %d, want 3", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready without a success")
	}
}

func TestStatusRecoversAfterSuccess(t *testing.T) {
	source := &fakeSource{err: errors.New("flaky")}
	p := New(Config{Source: source, Interval: time.Hour})

	p.fetchOnce(context.Background())
	source.mu.Lock()
	source.err = nil
	source.mu.Unlock()
	p.fetchOnce(context.Background())

	status := p.Status()
	if status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("unexpected status after recovery: %+v", status)
	}
}

func TestStartPollsUntilStopped(t *testing.T) {
	source := &fakeSource{}
	p := New(Config{Source: source, Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	deadline := time.After(time.Second)
	for {
		source.mu.Lock()
		calls := source.calls
		source.mu.Unlock()
		if calls >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("poller never cycled, calls=%d", calls)
		case <-time.After(5 * time.Millisecond):
		}
	}

	p.Stop()
	// Second Stop is a no-op.
	p.Stop()
}

func TestIsReadyThreshold(t *testing.T) {
	status := Status{LastSuccess: time.Now(), ConsecutiveFailures: 2}
	if !status.IsReady() {
		t.Fatalf("two failures should still be ready")
	}
	status.ConsecutiveFailures = 3
	if status.IsReady() {
		t.Fatalf("three failures must not be ready")
	}
}
