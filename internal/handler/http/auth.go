package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	account, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", account.ID).Msg("account logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: app.MsgLoggedOutSuccessfully}, http.StatusOK)
}
