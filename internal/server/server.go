package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/config"
	"github.com/tillworks/receiptd/internal/discovery"
	"github.com/tillworks/receiptd/internal/logging"
	"github.com/tillworks/receiptd/internal/store"
)

// shutdownGrace is how long in-flight requests get to finish after a
// termination signal. Discovery passes block on hardware I/O, so this is
// more generous than a typical JSON API would need.
const shutdownGrace = 10 * time.Second

// Server is the receiptd HTTP API.
type Server struct {
	config   *config.Config
	provider *discovery.Provider
	db       *store.Store // nil when no database is configured
	httpSrv  *http.Server
}

// New creates a new Server instance from configuration.
func New(cfg *config.Config) (*Server, error) {
	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	s := &Server{
		config:   cfg,
		provider: discovery.NewProvider(cfg.DiscoveryOptions()),
	}

	if cfg.Database != "" {
		db, err := store.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	s.httpSrv = &http.Server{
		Addr:    cfg.BindAddr,
		Handler: s.routes(),
	}

	return s, nil
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start() error {
	logging.Info("Starting receiptd API server",
		zap.String("addr", s.config.BindAddr),
		zap.Bool("db_probe", s.db != nil),
		zap.String("log_level", s.config.LogLevel),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpSrv.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		logging.Info("Received shutdown signal", zap.String("signal", sig.String()))
		return s.shutdown()
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.httpSrv.Shutdown(ctx)

	if s.db != nil {
		if closeErr := s.db.Close(); closeErr != nil {
			logging.Warn("failed to close database", zap.Error(closeErr))
		}
	}

	logging.Info("Server stopped")
	logging.Sync()
	return err
}
