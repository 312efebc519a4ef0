// Package web provides the telemetry ingestion API server.
package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/user/wispmon/internal/util"
)

// Server is the ingestion API server.
type Server struct {
	config  *util.Config
	store   Store
	backup  Backup
	metrics *Metrics
	srv     *http.Server
}

// NewServer creates a new ingestion server.
func NewServer(cfg *util.Config, store Store, backup Backup) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		backup:  backup,
		metrics: NewMetrics(),
	}
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start() error {
	h := NewHandlers(s.store, s.backup, s.config.APIToken, s.metrics)

	m := h.Router()
	m.Use(s.metrics.CountRequests)
	m.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})).Methods("GET")

	c := cors.New(cors.Options{
		AllowCredentials: true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	s.srv = &http.Server{
		Addr:         s.config.ListenAddr,
		Handler:      handlers.ProxyHeaders(c.Handler(m)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s.srv.Shutdown(ctx)
	}()

	util.Info("ingestion server starting on %s", s.config.ListenAddr)

	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Stop stops the server.
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.srv.Shutdown(ctx)
}
