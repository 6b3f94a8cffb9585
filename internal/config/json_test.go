package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key":     "k",
			"token_issuer":       "iss",
			"token_duration":     "3h",
			"password_hash_cost": 11,
			"version":            "0.9.0",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://x"}},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"grpc_address":    "localhost:9090",
			"request_timeout": "15s",
		},
		"cache": map[string]any{"ttl": "20m", "capacity": 3},
		"adapter": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "4s",
			"api_prefix":      "api",
		},
		"client": map[string]any{"session_dsn": "s.db"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 3*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 20*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, uint64(3), cfg.Cache.Capacity)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "s.db", cfg.Client.SessionDSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidFile(t *testing.T) {
	_, err := parseJSON(writeTempJSONConfig(t, "not an object"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
