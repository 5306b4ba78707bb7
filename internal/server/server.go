// Package server provides the HTTP API for Murshid.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/assistant"
	"github.com/noorlabs/murshid/internal/config"
	"github.com/noorlabs/murshid/internal/knowledge"
	"github.com/noorlabs/murshid/internal/quiz"
	"github.com/noorlabs/murshid/internal/tasmea"
)

// Server is the HTTP server for the Murshid API.
type Server struct {
	resolver *assistant.Resolver
	checker  *tasmea.Checker
	store    *knowledge.Store
	quiz     *quiz.Service
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	resolver *assistant.Resolver,
	checker *tasmea.Checker,
	store *knowledge.Store,
	quizService *quiz.Service,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		resolver: resolver,
		checker:  checker,
		store:    store,
		quiz:     quizService,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/ask", s.handleAsk)
	r.Post("/api/v1/search/fuzzy", s.handleFuzzySearch)
	r.Get("/api/v1/suggestions", s.handleSuggestions)
	r.Post("/api/v1/recitation/check", s.handleCheck)
	r.Post("/api/v1/recitation/sessions", s.handleStartSession)
	r.Get("/api/v1/recitation/sessions", s.handleListSessions)
	r.Get("/api/v1/recitation/sessions/{id}", s.handleGetSession)
	r.Post("/api/v1/recitation/sessions/{id}/complete", s.handleCompleteSession)
	r.Delete("/api/v1/recitation/sessions/{id}", s.handleDeleteSession)
	r.Get("/api/v1/recitation/stats", s.handleStats)
	r.Get("/api/v1/quiz", s.handleQuiz)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
