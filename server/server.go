package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"airbnb-advisor/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the HTTP API surface of the advisor
type Server struct {
	httpServer *http.Server
	logger     *utils.Logger
}

// NewServer builds the router and wires the handlers
func NewServer(addr string, handlers *Handlers, logger *utils.Logger) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", handlers.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", handlers.HandleChat)
		r.Post("/assistant", handlers.HandleAssistant)
		r.Get("/search", handlers.HandleSearch)
		r.Get("/market", handlers.HandleMarket)
		r.Get("/forecast", handlers.HandleForecast)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start runs the HTTP server until it fails or is stopped
func (s *Server) Start() error {
	s.logger.Info("REST API listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...")
	return s.httpServer.Shutdown(ctx)
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}
