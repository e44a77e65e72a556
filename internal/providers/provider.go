package providers

import (
	"context"

	"nba-chat-service/internal/domain"
)

// StatProvider supplies numeric stat values for (player, metric) pairs.
// Both arguments are canonical names; resolution happens before the call.
type StatProvider interface {
	GetPlayerStat(ctx context.Context, player string, metric string) (float64, error)
}

// RosterProvider fetches the current set of players.
type RosterProvider interface {
	FetchRoster(ctx context.Context) ([]domain.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	StatProvider
	RosterProvider
}
