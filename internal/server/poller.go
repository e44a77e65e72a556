package server

import (
	"context"

	"nba-chat-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
	ForceRefresh(ctx context.Context) error
	MarkSeeded()
}
