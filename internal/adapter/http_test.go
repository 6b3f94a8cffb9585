// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second, APIPrefix: "/api/"}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── collection ──────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"email":"a@x.com"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tok ")

	body, err := a.List(context.Background(), "api/accounts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"email":"a@x.com"}]`, string(body))
}

func TestList_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).List(context.Background(), "api/accounts")
	require.NoError(t, err)
}

func TestList_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token is missing"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).List(context.Background(), "api/accounts")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "token is missing")
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	body, err := newTestAdapter(t, srv.URL).Get(context.Background(), "/api/accounts/", 7)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7}`, string(body))
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Get(context.Background(), "api/accounts", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var got models.Account
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "a@x.com", got.Email)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"created_at":"2026-01-02T03:04:05Z"}`))
	}))
	defer srv.Close()

	body, err := newTestAdapter(t, srv.URL).Create(context.Background(), "api/accounts", models.Account{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":1`)
}

func TestCreate_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already exists"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Create(context.Background(), "api/accounts", models.Account{})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestUpdate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/accounts/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":3,"name":"B"}`))
	}))
	defer srv.Close()

	body, err := newTestAdapter(t, srv.URL).Update(context.Background(), "api/accounts", 3, models.Account{Name: "B"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"B"}`, string(body))
}

func TestUpdate_Unprocessable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Update(context.Background(), "api/accounts", 3, models.Account{})
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/accounts/404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.Delete(context.Background(), "api/accounts", 1))
	assert.ErrorIs(t, a.Delete(context.Background(), "api/accounts", 404), ErrNotFound)
}

func TestUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).List(context.Background(), "api/accounts")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "418")
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).List(context.Background(), "api/accounts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list api/accounts request")
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts/login", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@x.com","password":"secret"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"jwt-token"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header-token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	token, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@x.com"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/accounts/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"message":"logged out"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	assert.NoError(t, a.Logout(context.Background()))
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: " https://example.com/ ", want: "https://example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestAccountsURL_NoPrefix(t *testing.T) {
	a := &httpServerAdapter{}
	assert.Equal(t, "/accounts/login", a.accountsURL("login"))
}
