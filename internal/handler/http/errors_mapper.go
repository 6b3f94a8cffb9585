package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched in order; the first target found in the chain
// wins. An empty message means the error text itself is sent.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidation, http.StatusUnprocessableEntity, ""},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenRevoked, http.StatusUnauthorized, app.MsgTokenIsRevoked},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, ""},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ""},

	{store.ErrAccountNotFound, http.StatusNotFound, app.MsgAccountNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrTransient, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.message == "" {
				return e.status, err.Error()
			}
			return e.status, e.message
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes it as {"error": "..."} with the mapped
// status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
