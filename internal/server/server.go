package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/handler"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// accountServer runs the accounts REST API and, when configured, the gRPC
// health endpoint that reports whether the API can serve.
type accountServer struct {
	api    *httpServer
	health *grpcServer
	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &accountServer{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.api = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		health, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating gRPC health server: %w", err)
		}
		s.health = health
	}

	if s.api == nil && s.health == nil {
		return nil, errNoServersAreCreated
	}

	logger.Info().
		Bool("accounts_api", s.api != nil).
		Bool("health", s.health != nil).
		Msg("account server created")

	return s, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or a transport
// fails, then shuts everything down.
func (s *accountServer) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.serve(ctx); err != nil {
		s.logger.Err(err).Msg("account server stopped with error")
	}
}

// Shutdown withdraws the accounts service from health checks first, then
// drains in-flight API requests, then stops the health endpoint.
func (s *accountServer) Shutdown() {
	if s.health != nil {
		s.health.markNotServing()
	}
	if s.api != nil {
		s.api.shutdown()
	}
	if s.health != nil {
		s.health.stop()
	}
}

// serve blocks until ctx is done or a transport returns, whichever comes
// first, and returns the transport error if there was one.
func (s *accountServer) serve(ctx context.Context) error {
	failed := make(chan error, 2)
	running := 0

	if s.api != nil {
		running++
		go func() { failed <- s.api.serve() }()
	}
	if s.health != nil {
		running++
		go func() { failed <- s.health.serve() }()
	}

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down account server")
	case err = <-failed:
		running--
		s.logger.Err(err).Msg("transport stopped, shutting down account server")
	}

	s.Shutdown()
	for ; running > 0; running-- {
		<-failed
	}

	s.logger.Info().Msg("account server stopped")
	return err
}
