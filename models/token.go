package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an account.
//
// It is used directly as the claims type when parsing, so the embedded
// [jwt.RegisteredClaims] carry sub (account id), jti and exp after a successful
// parse. SignedString and AccountID are filled by the auth service.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
	AccountID    int64  `json:"-"`
}

// GetAccountID parses the "sub" claim as the account identifier.
func (t *Token) GetAccountID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from token: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from token to int64: %w", err)
	}

	return id, nil
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
