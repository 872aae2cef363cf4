// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/utils"
	"github.com/MKhiriev/accounts-service/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps account request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, err := decodeAccount(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("invalid request body")
		writeServiceError(w, r, err, 0)
		return
	}

	created, err := h.services.AccountService.CreateAccount(r.Context(), account)
	if err != nil {
		writeServiceError(w, r, err, 0)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", created.ID))
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error writing response")
	}
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		writeServiceError(w, r, err, 0)
		return
	}

	if _, err = utils.WriteJSON(w, accounts, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listAccounts").Msg("error writing response")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.services.AccountService.GetAccount(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAccount").Msg("error writing response")
	}
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := decodeAccount(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("invalid request body")
		writeServiceError(w, r, err, id)
		return
	}

	updated, err := h.services.AccountService.UpdateAccount(r.Context(), id, account)
	if err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("error writing response")
	}
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	if err := h.services.AccountService.DeleteAccount(r.Context(), id); err != nil {
		writeServiceError(w, r, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountID reads the {id} URL parameter. The route pattern only admits
// digits, so the only failure is an id that overflows int64, which is
// reported as an unknown account.
func accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("account with id [%s] could not be found", raw))
		return 0, false
	}

	return id, true
}

// decodeAccount strictly decodes a single account object from the body.
func decodeAccount(w http.ResponseWriter, r *http.Request) (models.Account, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var account models.Account
	if err := decoder.Decode(&account); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.Account{}, fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	if decoder.More() {
		return models.Account{}, fmt.Errorf("%w: unexpected data after the account object", ErrMalformedJSON)
	}

	return account, nil
}
