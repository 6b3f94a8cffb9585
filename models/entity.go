// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entity is the constraint satisfied by every record that can be mirrored by a
// reactive collection store.
//
// Implementations must be value types: the store hands out copies of them.
type Entity[T any] interface {
	// EntityID returns the server-assigned identifier. Zero means the entity
	// has not been created remotely yet.
	EntityID() int64

	// WithIdentity returns a copy of the entity carrying the identifier and
	// creation timestamp assigned by the server.
	WithIdentity(id int64, createdAt time.Time) T

	// Equal reports whether other carries the same content. Timestamps are
	// compared as instants, not by location.
	Equal(other T) bool
}

// Base holds the identity and bookkeeping fields shared by all entities.
// Zero timestamps mean "not known yet" and are omitted from JSON.
type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// EntityID returns b.ID.
func (b Base) EntityID() int64 {
	return b.ID
}

// Equal reports whether both bases have the same id and timestamps.
func (b Base) Equal(other Base) bool {
	return b.ID == other.ID &&
		b.CreatedAt.Equal(other.CreatedAt) &&
		b.UpdatedAt.Equal(other.UpdatedAt)
}
