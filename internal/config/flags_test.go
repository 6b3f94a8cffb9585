package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8080",
		"-grpc-address", "localhost:9090",
		"-d", "postgres://localhost/db",
		"-config", "cfg.json",
		"-token-sign-key", "k",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-request-timeout", "10s",
		"-cache-ttl", "30m",
		"-cache-capacity", "7",
		"-server", "http://srv:8080",
		"-api-prefix", "api",
		"-session", "s.db",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, uint64(7), cfg.Cache.Capacity)
	assert.Equal(t, "http://srv:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "api", cfg.Adapter.APIPrefix)
	assert.Equal(t, "s.db", cfg.Client.SessionDSN)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "localhost", in: "localhost:8080", want: "localhost:8080"},
		{name: "ip", in: "10.0.0.1:80", want: "10.0.0.1:80"},
		{name: "empty host", in: ":8080", want: ":8080"},
		{name: "no port", in: "localhost", wantErr: true},
		{name: "port not a number", in: "localhost:http", wantErr: true},
		{name: "port zero", in: "localhost:0", wantErr: true},
		{name: "port too large", in: "localhost:70000", wantErr: true},
		{name: "bad host", in: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
