package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/logging"
	"nba-chat-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior.
// Retries live here so the chat core keeps its at-most-once call contract.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) GetPlayerStat(ctx context.Context, player string, metric string) (float64, error) {
	var value float64
	err := r.retry(ctx, "stat fetch", func() error {
		start := time.Now()
		v, callErr := r.inner.GetPlayerStat(ctx, player, metric)
		r.record(start, callErr)
		value = v
		return callErr
	})
	return value, err
}

func (r *retryingProvider) FetchRoster(ctx context.Context) ([]domain.Player, error) {
	var roster []domain.Player
	err := r.retry(ctx, "roster fetch", func() error {
		start := time.Now()
		players, callErr := r.inner.FetchRoster(ctx)
		r.record(start, callErr)
		roster = players
		return callErr
	})
	return roster, err
}

func (r *retryingProvider) retry(ctx context.Context, op string, call func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		// A missing stat is a definitive answer, not a transient fault.
		if errors.Is(err, ErrStatNotFound) {
			return err
		}

		if rl, ok := AsRateLimitError(err); ok && r.metrics != nil {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, op+" retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, op+" failed", "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingProvider) record(start time.Time, err error) {
	if r.metrics != nil {
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, append(args, slog.String(logging.FieldProvider, r.name))...)
	}
}
