package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-account-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-account-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

// newGRPCServer binds cfg.GRPCAddress right away so that a busy port fails
// startup instead of a background goroutine.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	srv := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging()))
	handler.Register(srv)

	return &grpcServer{
		handler:         handler,
		server:          srv,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

// serve returns nil once stop has been called.
func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC health endpoint listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC health endpoint: %w", err)
	}
	return nil
}

// markNotServing flips every health status to NOT_SERVING.
func (g *grpcServer) markNotServing() {
	g.handler.Shutdown()
}

func (g *grpcServer) stop() {
	g.server.GracefulStop()
	g.logger.Info().Msg("gRPC health endpoint stopped")
}
