// Package http assembles the service's HTTP surface.
package http

import (
	nethttp "net/http"

	"nba-chat-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/bot-msg", handler.BotMessage)
	mux.HandleFunc("/chat", handler.BotMessage)
	if admin != nil {
		mux.HandleFunc("/admin/roster/refresh", admin.RefreshRoster)
	}
	return mux
}
