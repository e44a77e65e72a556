package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/logging"
	"nba-chat-service/internal/metrics"
	"nba-chat-service/internal/providers"
)

const defaultInterval = time.Hour

// IndexBuilder rebuilds the resolver vocabulary from a roster snapshot and
// installs it. The built index must be immutable.
type IndexBuilder func(roster []domain.Player) error

// Poller refreshes the player roster on an interval and rebuilds the
// resolver index when a refresh succeeds.
type Poller struct {
	provider providers.RosterProvider
	rebuild  IndexBuilder
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the roster refresh loop.
type Status struct {
	Seeded              bool
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether queries can be answered: the built-in vocabulary
// must be installed, and the refresh loop must not be failing repeatedly
// without ever having succeeded.
func (s Status) IsReady() bool {
	if !s.Seeded {
		return false
	}
	if s.LastSuccess.IsZero() {
		return s.ConsecutiveFailures < 3
	}
	return true
}

// New constructs a Poller with sane defaults.
func New(provider providers.RosterProvider, rebuild IndexBuilder, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		rebuild:  rebuild,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// MarkSeeded records that the built-in vocabulary has been installed, so the
// service is answerable even before the first upstream refresh.
func (p *Poller) MarkSeeded() {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Seeded = true
}

// Start begins refreshing until the context is cancelled or Stop is called.
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
		p.logInfo("roster poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial refresh to enrich the built-in roster on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("roster poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("roster poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// ForceRefresh runs one refresh immediately (admin path).
func (p *Poller) ForceRefresh(ctx context.Context) error {
	return p.refreshOnce(ctx)
}

func (p *Poller) refreshOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	roster, err := p.provider.FetchRoster(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("roster refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	if err := p.rebuild(roster); err != nil {
		p.logError("resolver rebuild failed", err)
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start)
	p.logInfo("roster refreshed",
		logging.FieldCount, len(roster),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
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

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.RosterProvider {
	return p.provider
}
