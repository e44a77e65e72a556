package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"nba-chat-service/internal/http/requestutil"
	"nba-chat-service/internal/logging"
)

// RosterRefresher forces one roster refresh cycle.
type RosterRefresher interface {
	ForceRefresh(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints (e.g., roster refresh).
type AdminHandler struct {
	refresher RosterRefresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher RosterRefresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshRoster refetches the roster and rebuilds the resolver index.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshRoster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "roster refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.refresher.ForceRefresh(r.Context()); err != nil {
		logging.Warn(logger, "admin roster refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to refresh roster", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	logging.Info(logger, "admin roster refreshed")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
