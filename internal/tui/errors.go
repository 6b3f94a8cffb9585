// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/reactive"
	"github.com/MKhiriev/go-account-keeper/internal/service"
)

var errInvalidID = errors.New("id must be a positive number")

// humanizeError turns store, adapter and service errors into a line for the
// error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		return err.Error()
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong email or password"
	case errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenRevoked),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired. Press l to log in again"
	case errors.Is(err, reactive.ErrState):
		return "Accounts are not loaded yet"
	case errors.Is(err, reactive.ErrConfiguration):
		return "Collection path is not configured"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired. Press l to log in again"
	case errors.Is(err, adapter.ErrNotFound):
		return "Account not found"
	case errors.Is(err, adapter.ErrConflict):
		return "Email is already taken"
	case errors.Is(err, adapter.ErrUnprocessable):
		return "Server rejected the account: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
