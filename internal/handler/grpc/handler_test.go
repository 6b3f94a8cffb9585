package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startTestServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLogging()))
	h.Register(srv)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, svc string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: svc})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_ReportsServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startTestServer(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, AccountsServiceName))
}

func TestHandler_SetAccountsServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startTestServer(t, h)

	h.SetAccountsServing(false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, AccountsServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))

	h.SetAccountsServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, AccountsServiceName))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startTestServer(t, h)

	h.Shutdown()
	h.SetAccountsServing(true)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, AccountsServiceName))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startTestServer(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "missing"})
	assert.Error(t, err)
}

func TestUnaryLogging_LogsMethodAndCode(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)})
	client := startTestServer(t, h)
	buf.Reset()

	check(t, client, "")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/grpc.health.v1.Health/Check", entry["method"])
	assert.Equal(t, "OK", entry["code"])
	assert.NotEmpty(t, entry["trace_id"])
}
