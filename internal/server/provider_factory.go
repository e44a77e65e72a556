package server

import (
	"log/slog"
	"strings"
	"time"

	"nba-chat-service/internal/config"
	"nba-chat-service/internal/metrics"
	"nba-chat-service/internal/providers"
	"nba-chat-service/internal/providers/balldontlie"
	"nba-chat-service/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider)
	base := selectProvider(name, cfg)
	if name == "balldontlie" {
		// Roster sweeps share the upstream quota with stat lookups; gate them.
		base = providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	}
	return providers.NewRetryingProvider(base, f.logger, f.metrics, name, 0, 0)
}

func selectProvider(name string, cfg config.Config) providers.DataProvider {
	switch name {
	case "balldontlie":
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL:  cfg.Balldontlie.BaseURL,
			APIKey:   cfg.Balldontlie.APIKey,
			MaxPages: cfg.Balldontlie.MaxPages,
			Season:   cfg.Balldontlie.Season,
		})
	default:
		return fixture.New()
	}
}

func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "fixture"
	}
	return name
}
