package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/handler"
	"github.com/MKhiriev/go-taxii/internal/logger"
)

type server struct {
	httpServer      *httpServer
	workers         BackgroundRunner
	drainer         Drainer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the HTTP server. drainer is waited for after the
// listener closes so that accepted envelopes finish processing; workers
// run for the lifetime of the server.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, drainer Drainer, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         workers,
		drainer:         drainer,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) run(ctx context.Context) {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers == nil {
			return
		}
		if err := s.workers.Run(workersCtx); err != nil {
			s.logger.Err(err).Str("func", "server.run").Msg("background worker failed")
		}
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.Shutdown(shutdownCtx)
	stopWorkers()
	<-workersDone

	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown closes the listener first, then waits for pending ingestion.
func (s *server) Shutdown(ctx context.Context) {
	s.httpServer.Shutdown(ctx)

	if s.drainer == nil {
		return
	}
	if err := s.drainer.Wait(ctx); err != nil {
		s.logger.Err(err).Str("func", "server.Shutdown").Msg("pending ingestion did not finish")
	}
}
