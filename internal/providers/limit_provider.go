package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-chat-service/internal/domain"
)

// rateLimitedProvider enforces a minimum interval between roster fetches.
// Stat lookups pass through untouched; they are user-facing and the roster
// sweep is the quota-heavy path.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider whose roster fetches block
// until the interval elapses, to stay under upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) GetPlayerStat(ctx context.Context, player string, metric string) (float64, error) {
	if p == nil || p.next == nil {
		return 0, ErrProviderUnavailable
	}
	return p.next.GetPlayerStat(ctx, player, metric)
}

func (p *rateLimitedProvider) FetchRoster(ctx context.Context) ([]domain.Player, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "roster fetch canceled")
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "roster fetch allowed")
	return p.next.FetchRoster(ctx)
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
