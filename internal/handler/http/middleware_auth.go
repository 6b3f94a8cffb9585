package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// On success the account id and the parsed token are stored in the request
// context under [utils.AccountIDCtxKey] and [utils.TokenCtxKey]. Missing,
// malformed, expired, forged and revoked tokens are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		log.Debug().Int64("account_id", token.AccountID).Msg("request authenticated")

		ctx = context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
