package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/punaab/discord-ts-UQkA/docs" // registers the swagger spec

	"github.com/punaab/discord-ts-UQkA/internal/handler"
	"github.com/punaab/discord-ts-UQkA/internal/logger"
	"github.com/punaab/discord-ts-UQkA/internal/metrics"
	"github.com/punaab/discord-ts-UQkA/internal/orchard"
	"github.com/punaab/discord-ts-UQkA/internal/quest"
	"github.com/punaab/discord-ts-UQkA/internal/steal"
)

// Services are the game services exposed over HTTP
type Services struct {
	Orchard orchard.Service
	Quests  quest.Service
	Steal   steal.Service
}

// Options configures the HTTP server. DB may be nil when the in-memory
// store is used.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	DB             handler.Pinger
}

// Server is the game HTTP API
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer builds the router and middleware stack
func NewServer(opts Options, svcs Services) *Server {
	r := chi.NewRouter()

	detector := NewAbuseDetector()

	// outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.DB))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	questHandlers := handler.NewQuestHandlers(svcs.Quests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/pick", handler.HandlePick(svcs.Orchard))
		r.Post("/daily", handler.HandleDaily(svcs.Orchard))
		r.Post("/sell", handler.HandleSell(svcs.Orchard))
		r.Get("/inventory", handler.HandleInventory(svcs.Orchard))
		r.Get("/profile", handler.HandleProfile(svcs.Orchard))
		r.Get("/leaderboard", handler.HandleLeaderboard(svcs.Orchard))
		r.Get("/market", handler.HandleMarket(svcs.Orchard))

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", handler.HandleShop(svcs.Orchard))
			r.Post("/buy", handler.HandleBuyUpgrade(svcs.Orchard))
		})

		r.Post("/steal", handler.HandleSteal(svcs.Steal))

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", questHandlers.HandleGetBoard())
			r.Post("/claim", questHandlers.HandleClaimQuest())
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", questHandlers.HandleGetAchievements())
			r.Post("/claim", questHandlers.HandleClaimAchievement())
		})

		r.Route("/guilds", func(r chi.Router) {
			r.Put("/", handler.HandleSetupGuild(svcs.Orchard))
			r.Get("/{guildID}", handler.HandleGetGuild(svcs.Orchard))
		})
	})

	return &Server{
		router: r,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware attaches a request ID and logs each API request with
// secrets redacted. Probe and scrape paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
