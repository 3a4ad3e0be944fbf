package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingobot/internal/adapter/chat"
	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/infrastructure/config"
)

// Server hosts the chat webhook over HTTP. The bridge process delivers
// learner interactions to POST /v1/events; replies travel back through the
// outbound chat surface.
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logrus.Logger, dispatcher *chat.Dispatcher) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestLogger(logger))
	r.Use(cors.Default().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/v1/events", handleEvent(dispatcher, logger))

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler: r,
	}

	return &Server{
		config:     cfg,
		httpServer: httpServer,
		logger:     logger,
	}
}

// handleEvent decodes one inbound chat event and processes it to completion.
// The bridge delivers a learner's events sequentially, so handling inline
// preserves per-learner ordering.
func handleEvent(dispatcher *chat.Dispatcher, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ev entity.Event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			http.Error(w, "malformed event", http.StatusBadRequest)
			return
		}
		if ev.Learner == 0 {
			http.Error(w, "missing learner_id", http.StatusBadRequest)
			return
		}

		if err := dispatcher.Dispatch(r.Context(), ev); err != nil {
			// Only surface delivery can fail here; the event itself was
			// accepted and must not be retried by the bridge.
			logger.WithField("learner", ev.Learner).WithError(err).Error("reply delivery failed")
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// StartHTTP starts the HTTP server
func (s *Server) StartHTTP() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
	}

	s.logger.Info("Server shutdown complete")
	return nil
}
