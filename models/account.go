// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a user account managed by the admin client.
//
// Password is write-only: clients send it on create/update and the server never
// returns it.
type Account struct {
	Base

	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
}

// WithIdentity implements [Entity]. The write-only password is dropped, so the
// copy matches what the server would return for the account.
func (a Account) WithIdentity(id int64, createdAt time.Time) Account {
	a.ID = id
	a.CreatedAt = createdAt
	a.Password = ""
	return a
}

// Equal implements [Entity].
func (a Account) Equal(other Account) bool {
	return a.Base.Equal(other.Base) &&
		a.Email == other.Email &&
		a.Name == other.Name &&
		a.Password == other.Password
}

// TableName returns the name of the database table backing accounts.
func (a Account) TableName() string {
	return "accounts"
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
