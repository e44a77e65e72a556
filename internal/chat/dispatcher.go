// Package chat turns raw user text into conversational replies. The
// dispatcher classifies each query and routes it to a single-use handler;
// handlers degrade to clarification replies instead of failing, so the only
// errors that escape this package are infrastructure faults.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/logging"
	"nba-chat-service/internal/metrics"
	"nba-chat-service/internal/nlq"
	"nba-chat-service/internal/providers"
	"nba-chat-service/internal/store"
)

// Dispatcher routes classified queries to handlers built over the current
// resolver snapshot.
type Dispatcher struct {
	store    *store.ResolverStore
	provider providers.StatProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(st *store.ResolverStore, provider providers.StatProvider, logger *slog.Logger, recorder *metrics.Recorder) *Dispatcher {
	return &Dispatcher{
		store:    st,
		provider: provider,
		logger:   logger,
		metrics:  recorder,
	}
}

// Handle classifies raw text and produces a reply. Every in-domain failure
// mode becomes a conversational reply; a non-nil error means the service
// itself could not attempt an answer.
func (d *Dispatcher) Handle(ctx context.Context, raw string) (domain.ChatResponse, error) {
	snap := d.store.Snapshot()
	if snap == nil {
		return domain.ChatResponse{}, fmt.Errorf("resolver index not installed: %w", providers.ErrProviderUnavailable)
	}

	class := snap.Classifier.Classify(raw)
	d.metrics.RecordClassification(classLabel(class))

	logger := logging.FromContext(ctx, d.logger)
	logging.Info(logger, "query classified",
		logging.FieldQuery, raw,
		logging.FieldClassification, int(class),
	)

	switch class {
	case domain.ClassOutcome:
		d.metrics.RecordChatReply(outcomeDeclined)
		return domain.ChatResponse{Reply: outcomeReply(), Classification: class}, nil
	case domain.ClassOutOfDomain:
		d.metrics.RecordChatReply(outcomeDeclined)
		return domain.ChatResponse{Reply: declineReply(), Classification: class}, nil
	}

	var handler Handler
	if nlq.IsComparison(raw) {
		handler = NewRankHandler(snap.Resolvers, d.provider, logger, d.metrics)
	} else {
		handler = NewStatHandler(snap.Resolvers, d.provider, logger, d.metrics)
	}

	handler.LoadQuery(raw)
	reply, err := handler.Respond(ctx)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	return domain.ChatResponse{Reply: reply, Classification: class}, nil
}

func classLabel(c domain.Classification) string {
	switch c {
	case domain.ClassOutcome:
		return "outcome"
	case domain.ClassPlayerStat:
		return "player_stat"
	default:
		return "out_of_domain"
	}
}
