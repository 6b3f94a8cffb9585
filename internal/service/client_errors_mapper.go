// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/store"
)

// MapAdapterError translates the adapter's transport error into the service
// or store sentinel the server started from. Unknown errors are returned as is.
func MapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnprocessable):
		return fmt.Errorf("%w: %s", ErrValidation, strings.TrimPrefix(msg, app.MsgValidationFailed+": "))

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsRevoked:
			return ErrTokenRevoked
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrAccountNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return store.ErrEmailAlreadyExists
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
