package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const healthCheckTimeout = 2 * time.Second

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

// HTTPServer exposes the bot's health endpoint
type HTTPServer struct {
	server    *http.Server
	bot       *Bot
	startedAt time.Time
}

// NewHTTPServer creates the health server for bot
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	srv := &HTTPServer{bot: bot, startedAt: time.Now()}

	r := chi.NewRouter()
	r.Get("/healthz", srv.HandleHealth)

	srv.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv
}

// Start serves in the background
func (h *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord health server", "addr", h.server.Addr)
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord health server failed", "error", err)
		}
	}()
}

// Stop shuts the server down
func (h *HTTPServer) Stop(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// HandleHealth reports gateway and API connectivity
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()
	apiReachable := h.bot.Client != nil && h.bot.Client.Health(ctx) == nil

	count, last := h.bot.Registry.Stats()
	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(h.startedAt).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: count,
		APIReachable:     apiReachable,
	}
	if !last.IsZero() {
		health.LastCommandTime = &last
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Error("Failed to encode health status", "error", err)
	}
}
