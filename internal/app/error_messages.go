// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings written into the "error" and
// "message" fields of account server responses.
//
// The admin client matches the same constants when translating server errors
// back into service errors, so the wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or the path id is not a positive integer.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgValidationFailed prefixes field validation errors (422).
	MsgValidationFailed = "validation failed"

	// MsgInvalidLoginPassword is returned when the email/password pair does
	// not match a stored account.
	MsgInvalidLoginPassword = "invalid email/password"

	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database failed in a way
	// that may succeed on retry.
	MsgServiceUnavailable = "service temporarily unavailable"

	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgTokenIsRevoked          = "token is revoked"

	MsgAccountNotFound       = "account not found"
	MsgEmailAlreadyExists    = "email already exists"
	MsgNotFound              = "not found"
	MsgAccountDeleted        = "account deleted"
	MsgLoggedOutSuccessfully = "logged out successfully"
)
