// Package poller refreshes the aggregated scoreboard on an interval and
// publishes each new board to the store and any subscribers.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/logging"
	"courtside/internal/metrics"
)

const defaultInterval = 30 * time.Second

// Source produces a fully classified, sorted scoreboard.
type Source interface {
	Aggregate(ctx context.Context) ([]domaingames.ScoreboardGame, error)
}

// Sink receives each refreshed board.
type Sink interface {
	SetBoard(list []domaingames.ScoreboardGame, fetchedAt time.Time)
}

// Broadcaster pushes each refreshed board to connected subscribers.
type Broadcaster interface {
	Broadcast(board domaingames.BoardResponse)
}

// Poller drives periodic scoreboard refreshes.
type Poller struct {
	source      Source
	sink        Sink
	broadcaster Broadcaster
	logger      *slog.Logger
	metrics     *metrics.Recorder
	interval    time.Duration
	now         func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Config wires a Poller.
type Config struct {
	Source      Source
	Sink        Sink
	Broadcaster Broadcaster
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
	Interval    time.Duration
}

// New constructs a Poller with sane defaults.
func New(cfg Config) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		source:      cfg.Source,
		sink:        cfg.Sink,
		broadcaster: cfg.Broadcaster,
		logger:      cfg.Logger,
		metrics:     cfg.Recorder,
		interval:    interval,
		now:         time.Now,
		done:        make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	games, err := p.source.Aggregate(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, start)
		return
	}

	fetchedAt := p.now().UTC()
	if p.sink != nil {
		p.sink.SetBoard(games, fetchedAt)
	}
	if p.broadcaster != nil {
		p.broadcaster.Broadcast(domaingames.BoardResponse{FetchedAt: fetchedAt, Games: games})
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed scoreboard",
		logging.FieldCount, len(games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
