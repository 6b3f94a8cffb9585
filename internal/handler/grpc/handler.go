// Package grpc exposes the account server over gRPC.
//
// Only the standard grpc.health.v1 service is served: load balancers and the
// admin client probe it to learn whether the account collection is reachable.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// AccountsServiceName is the health service name reported for the account
// collection.
const AccountsServiceName = "accounts"

// Handler is the root gRPC transport handler.
//
// It owns the health server. Register attaches it to a *grpc.Server and
// Shutdown flips every service to NOT_SERVING before the server stops.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for the whole server
// and for [AccountsServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(AccountsServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetAccountsServing changes the reported status of the account collection.
func (h *Handler) SetAccountsServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(AccountsServiceName, st)
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging attaches a trace-id logger to the call context and logs the
// method, status code and duration, the same way the HTTP transport does.
func (h *Handler) UnaryLogging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", uuid.NewString())
		})
		ctx = l.WithContext(ctx)

		start := time.Now()
		resp, err := handler(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}
