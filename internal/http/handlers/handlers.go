package handlers

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"nba-chat-service/internal/chat"
	"nba-chat-service/internal/poller"
)

const maxMessageBytes = 4096

// Handler wires the chat endpoints to the dispatcher.
type Handler struct {
	dispatcher *chat.Dispatcher
	logger     *slog.Logger
	statusFn   func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(dispatcher *chat.Dispatcher, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
		statusFn:   statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// BotMessage accepts a user message and returns the bot reply. The message
// arrives as form field "msg" or as a JSON body {"msg": "..."}.
func (h *Handler) BotMessage(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	msg, ok := readMessage(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "missing msg parameter", logger)
		return
	}

	resp, err := h.dispatcher.Handle(r.Context(), msg)
	if err != nil {
		logger.Error("chat dispatch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "upstream data provider unavailable", logger)
		return
	}

	writeJSON(w, http.StatusOK, resp, logger)
}

// readMessage pulls the user message from the request body. JSON bodies take
// the "msg" key; everything else goes through form parsing.
func readMessage(r *http.Request) (string, bool) {
	contentType := r.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "application/json" {
		var body struct {
			Msg string `json:"msg"`
		}
		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxMessageBytes))
		if err := dec.Decode(&body); err != nil {
			return "", false
		}
		msg := strings.TrimSpace(body.Msg)
		return msg, msg != ""
	}

	if err := r.ParseForm(); err != nil {
		return "", false
	}
	msg := strings.TrimSpace(r.FormValue("msg"))
	return msg, msg != ""
}
