package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountIDParam(w, r)
	if !ok {
		return
	}

	account, err := h.services.AccountService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.AccountService.Create(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateAccount replaces the whole resource; the id in the path wins over
// one in the body.
func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.accountIDParam(w, r)
	if !ok {
		return
	}

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}
	account.ID = id

	updated, err := h.services.AccountService.Update(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountIDParam(w, r)
	if !ok {
		return
	}

	if err := h.services.AccountService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Message{Message: app.MsgAccountDeleted}, http.StatusOK)
}

// accountIDParam parses {id}. On failure it writes 400 and returns false.
func (h *Handler) accountIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Warn().Str("id", raw).Msg("invalid account id in path")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return 0, false
	}

	return id, true
}
