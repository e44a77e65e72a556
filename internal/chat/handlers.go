package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"nba-chat-service/internal/domain"
	"nba-chat-service/internal/logging"
	"nba-chat-service/internal/metrics"
	"nba-chat-service/internal/nlq"
	"nba-chat-service/internal/providers"
	"nba-chat-service/internal/resolve"
)

// Handler answers one loaded query. Implementations are single-use: load a
// query, call Respond once, discard.
type Handler interface {
	LoadQuery(raw string)
	Respond(ctx context.Context) (string, error)
}

// handlerState tracks how far a query has progressed through the pipeline.
// Extraction or resolution failures land in stateUnresolved, which is
// terminal and always carries a clarification reply.
type handlerState int

const (
	stateLoaded handlerState = iota
	stateExtracted
	stateResolved
	stateAnswered
	stateUnresolved
)

// StatHandler answers single-player stat questions such as
// "What is Kobe Bryant's true shooting percentage?".
type StatHandler struct {
	resolvers *resolve.Resolvers
	provider  providers.StatProvider
	logger    *slog.Logger
	metrics   *metrics.Recorder

	state handlerState
	raw   string
	reply string

	nameFragment   string
	metricFragment string
	player         string
	metric         domain.Metric
}

// NewStatHandler builds a single-use handler over one resolver snapshot.
func NewStatHandler(resolvers *resolve.Resolvers, provider providers.StatProvider, logger *slog.Logger, recorder *metrics.Recorder) *StatHandler {
	return &StatHandler{
		resolvers: resolvers,
		provider:  provider,
		logger:    logger,
		metrics:   recorder,
	}
}

// LoadQuery stages the raw query text.
func (h *StatHandler) LoadQuery(raw string) {
	h.raw = raw
	h.state = stateLoaded
}

// Respond walks the query through extraction, resolution, and lookup.
// Extraction and resolution misses, and missing upstream data, degrade to
// a conversational reply with a nil error. Only infrastructure faults
// return a non-nil error.
func (h *StatHandler) Respond(ctx context.Context) (string, error) {
	h.extract()
	if h.state == stateExtracted {
		h.resolve()
	}
	if h.state == stateResolved {
		if err := h.answer(ctx); err != nil {
			return "", err
		}
	}
	h.metrics.RecordChatReply(h.outcome())
	return h.reply, nil
}

func (h *StatHandler) extract() {
	h.nameFragment, h.metricFragment = nlq.ExtractSingle(h.raw)
	if h.nameFragment == "" || h.metricFragment == "" {
		h.state = stateUnresolved
		h.reply = clarifyFormatReply()
		return
	}
	h.state = stateExtracted
}

func (h *StatHandler) resolve() {
	player, ok := h.resolvers.Names.Resolve(h.nameFragment)
	h.metrics.RecordResolution("name", hitOrMiss(ok))
	if !ok {
		h.state = stateUnresolved
		h.reply = clarifyNameReply(h.nameFragment)
		return
	}

	metric := h.resolvers.Metrics.Resolve(h.metricFragment)
	h.metrics.RecordResolution("metric", hitOrMiss(metric != nil))
	if metric == nil {
		h.state = stateUnresolved
		h.reply = clarifyMetricReply(h.metricFragment)
		return
	}

	h.player = player
	h.metric = *metric
	h.state = stateResolved
}

func (h *StatHandler) answer(ctx context.Context) error {
	value, err := h.provider.GetPlayerStat(ctx, h.player, h.metric.String())
	if err != nil {
		if errors.Is(err, providers.ErrStatNotFound) {
			h.state = stateUnresolved
			h.reply = unavailableReply(h.player, h.metric)
			return nil
		}
		return fmt.Errorf("stat lookup for %s: %w", h.player, err)
	}

	logging.Info(h.logger, "stat answered",
		logging.FieldPlayer, h.player,
		logging.FieldMetric, h.metric.String(),
	)
	h.state = stateAnswered
	h.reply = statReply(h.player, h.metric, value)
	return nil
}

func (h *StatHandler) outcome() string {
	if h.state == stateAnswered {
		return outcomeAnswered
	}
	if h.player != "" && h.metric != "" {
		return outcomeUnavailable
	}
	return outcomeClarification
}

// RankHandler answers two-player comparison questions such as
// "Who is a better shooter Kobe Bryant or LeBron James?".
type RankHandler struct {
	resolvers *resolve.Resolvers
	provider  providers.StatProvider
	logger    *slog.Logger
	metrics   *metrics.Recorder

	state handlerState
	raw   string
	reply string

	fragments [2]string
	players   [2]string
	metric    domain.Metric
}

// NewRankHandler builds a single-use handler over one resolver snapshot.
func NewRankHandler(resolvers *resolve.Resolvers, provider providers.StatProvider, logger *slog.Logger, recorder *metrics.Recorder) *RankHandler {
	return &RankHandler{
		resolvers: resolvers,
		provider:  provider,
		logger:    logger,
		metrics:   recorder,
	}
}

// LoadQuery stages the raw query text.
func (h *RankHandler) LoadQuery(raw string) {
	h.raw = raw
	h.state = stateLoaded
}

// Respond walks the comparison through extraction, resolution of both names
// and the metric, and two stat lookups. The same degradation rules as
// StatHandler.Respond apply; a tie is reported only on exact equality.
func (h *RankHandler) Respond(ctx context.Context) (string, error) {
	h.extract()
	if h.state == stateExtracted {
		h.resolve()
	}
	if h.state == stateResolved {
		if err := h.answer(ctx); err != nil {
			return "", err
		}
	}
	h.metrics.RecordChatReply(h.outcome())
	return h.reply, nil
}

func (h *RankHandler) extract() {
	var metricFragment string
	h.fragments[0], h.fragments[1], metricFragment = nlq.ExtractPair(h.raw)
	if h.fragments[0] == "" || h.fragments[1] == "" || metricFragment == "" {
		h.state = stateUnresolved
		h.reply = clarifyFormatReply()
		return
	}

	metric := h.resolvers.Metrics.Resolve(metricFragment)
	h.metrics.RecordResolution("metric", hitOrMiss(metric != nil))
	if metric == nil {
		h.state = stateUnresolved
		h.reply = clarifyMetricReply(metricFragment)
		return
	}
	h.metric = *metric
	h.state = stateExtracted
}

func (h *RankHandler) resolve() {
	for i, fragment := range h.fragments {
		player, ok := h.resolvers.Names.Resolve(fragment)
		h.metrics.RecordResolution("name", hitOrMiss(ok))
		if !ok {
			h.state = stateUnresolved
			h.reply = clarifyNameReply(fragment)
			return
		}
		h.players[i] = player
	}
	h.state = stateResolved
}

func (h *RankHandler) answer(ctx context.Context) error {
	var values [2]float64
	for i, player := range h.players {
		value, err := h.provider.GetPlayerStat(ctx, player, h.metric.String())
		if err != nil {
			if errors.Is(err, providers.ErrStatNotFound) {
				h.state = stateUnresolved
				h.reply = unavailableReply(player, h.metric)
				return nil
			}
			return fmt.Errorf("stat lookup for %s: %w", player, err)
		}
		values[i] = value
	}

	logging.Info(h.logger, "comparison answered",
		logging.FieldPlayer, h.players[0]+" vs "+h.players[1],
		logging.FieldMetric, h.metric.String(),
	)
	h.state = stateAnswered

	switch {
	case values[0] == values[1]:
		h.reply = tieReply(h.players[0], h.players[1], h.metric, values[0])
	case values[0] > values[1]:
		h.reply = rankReply(h.players[0], h.players[1], h.metric, values[0], values[1])
	default:
		h.reply = rankReply(h.players[1], h.players[0], h.metric, values[1], values[0])
	}
	return nil
}

func (h *RankHandler) outcome() string {
	if h.state == stateAnswered {
		return outcomeAnswered
	}
	if h.players[0] != "" && h.players[1] != "" {
		return outcomeUnavailable
	}
	return outcomeClarification
}

func hitOrMiss(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}
