// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account payloads before they reach storage or the
// network.
//
// The server validates with the rules the REST endpoint enforces (required
// name, well-formed email, password of at least 6 characters). The admin
// client additionally asks for FieldPasswordStrength before sending a new
// password.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
