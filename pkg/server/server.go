// Package server exposes simulations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/snark87/quantum-simulator/pkg/config"
	"github.com/snark87/quantum-simulator/pkg/logger"
)

// Server wraps the HTTP server and its shutdown settings
type Server struct {
	settings config.ServerSettings
	log      logger.Logger
	router   *mux.Router
	http     *http.Server
}

// New builds a server from settings. Nothing listens until Start is called.
func New(settings config.ServerSettings, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}

	s := &Server{
		settings: settings,
		log:      log,
		router:   mux.NewRouter(),
	}

	s.router.Use(requestLogger(log))
	s.registerRoutes()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   settings.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	})

	s.http = &http.Server{
		Addr:         ":" + settings.Port,
		ReadTimeout:  settings.ReadTimeout,
		WriteTimeout: settings.WriteTimeout,
		IdleTimeout:  settings.IdleTimeout,
		Handler:      corsMiddleware.Handler(s.router),
	}

	return s
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Start serves in a background goroutine. Listen failures other than a
// normal shutdown are delivered on the returned channel.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		s.log.Infof("Server starting on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
		}
	}()

	return errCh
}

// Shutdown gracefully stops the server, waiting at most the configured
// shutdown timeout
func (s *Server) Shutdown(ctx context.Context) error {
	if s.settings.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.ShutdownTimeout)
		defer cancel()
	}

	s.log.Info("Shutting down server...")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("Server gracefully stopped")
	return nil
}
