package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client    *utils.HTTPClient
	apiPrefix string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the resty-backed [ServerAdapter]. The base URL
// comes from cfg.HTTPAddress ("host:port" gets an http:// scheme) and every
// request is bounded by cfg.RequestTimeout.
func NewHTTPServerAdapter(cfg config.Adapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	prefix := strings.Trim(strings.TrimSpace(cfg.APIPrefix), "/")

	return &httpServerAdapter{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiPrefix: prefix,
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request builds a JSON request carrying the bearer token when one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetError(&models.ErrorResponse{})

	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}

	return req
}

func collectionURL(path string) string {
	return "/" + strings.Trim(path, "/")
}

func itemURL(path string, id int64) string {
	return collectionURL(path) + "/" + strconv.FormatInt(id, 10)
}

func (h *httpServerAdapter) accountsURL(action string) string {
	if h.apiPrefix == "" {
		return "/accounts/" + action
	}
	return "/" + h.apiPrefix + "/accounts/" + action
}

// List implements [CollectionAdapter].
func (h *httpServerAdapter) List(ctx context.Context, path string) ([]byte, error) {
	resp, err := h.request(ctx).Get(collectionURL(path))
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Get implements [CollectionAdapter].
func (h *httpServerAdapter) Get(ctx context.Context, path string, id int64) ([]byte, error) {
	resp, err := h.request(ctx).Get(itemURL(path, id))
	if err != nil {
		return nil, fmt.Errorf("get %s/%d request: %w", path, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Create implements [CollectionAdapter].
func (h *httpServerAdapter) Create(ctx context.Context, path string, payload any) ([]byte, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(collectionURL(path))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Update implements [CollectionAdapter].
func (h *httpServerAdapter) Update(ctx context.Context, path string, id int64, payload any) ([]byte, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(itemURL(path, id))
	if err != nil {
		return nil, fmt.Errorf("update %s/%d request: %w", path, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Delete implements [CollectionAdapter].
func (h *httpServerAdapter) Delete(ctx context.Context, path string, id int64) error {
	resp, err := h.request(ctx).Delete(itemURL(path, id))
	if err != nil {
		return fmt.Errorf("delete %s/%d request: %w", path, id, err)
	}

	return mapHTTPError(resp)
}

// Login implements [AuthAdapter]. It posts credentials to
// POST /{prefix}/accounts/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResp).
		Post(h.accountsURL("login"))
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := tokenResp.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("email", credentials.Email).Msg("logged in")

	return token, nil
}

// Logout implements [AuthAdapter]. It calls DELETE /{prefix}/accounts/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Delete(h.accountsURL("logout"))
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}
