// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reactive implements the client-side mirror of one remote REST
// collection.
//
// A [Store] keeps entities keyed by their server-assigned id, synchronizes
// lazily (FetchAll, FetchByID or EmptySynchronize), refuses writes until the
// first synchronization, and pushes the full ordered snapshot to every
// registered [Observer] after each change. The mirror is patched only after a
// request fully succeeds.
//
// Overlapping operations on one Store are not queued: whichever response is
// applied last wins. Callers that care about ordering must not overlap them.
package reactive

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/models"
)

// Store mirrors one remote collection of T.
type Store[T models.Entity[T]] struct {
	adapter   adapter.CollectionAdapter
	apiPrefix string

	onError func(error)
	onInfo  func(models.Operation, T)

	mu        sync.RWMutex
	path      string
	mirror    map[int64]T // nil while absent
	observers map[Observer[T]]struct{}
}

// New returns a store with an absent mirror for the collection in cfg.
func New[T models.Entity[T]](collection adapter.CollectionAdapter, cfg Config[T]) *Store[T] {
	s := &Store[T]{
		adapter:   collection,
		apiPrefix: cfg.APIPrefix,
		onError:   cfg.OnError,
		onInfo:    cfg.OnInfo,
		path:      NormalizePath(cfg.Path, cfg.APIPrefix),
		observers: make(map[Observer[T]]struct{}),
	}

	if s.onError == nil {
		s.onError = func(error) {}
	}
	if s.onInfo == nil {
		s.onInfo = func(models.Operation, T) {}
	}

	return s
}

// SetPath changes the collection path. The mirror is kept as is.
func (s *Store[T]) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.path = NormalizePath(path, s.apiPrefix)
}

// Path returns the normalized collection path, "" when none is configured.
func (s *Store[T]) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.path
}

// HasRemote reports whether a collection path is configured.
func (s *Store[T]) HasRemote() bool {
	return s.Path() != ""
}

// IsSynchronized reports whether a path is configured and the mirror is
// present, possibly empty.
func (s *Store[T]) IsSynchronized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isSynchronizedLocked()
}

func (s *Store[T]) isSynchronizedLocked() bool {
	return s.path != "" && s.mirror != nil
}

// Snapshot returns the entities ordered by id and whether the mirror is
// present. The slice is a fresh copy.
func (s *Store[T]) Snapshot() ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.mirror == nil {
		return nil, false
	}

	return s.snapshotLocked(), true
}

func (s *Store[T]) snapshotLocked() []T {
	ids := slices.Sorted(maps.Keys(s.mirror))

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.mirror[id])
	}

	return out
}

// Get returns the mirrored entity with id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.mirror[id]
	return entity, ok
}

// Clear drops the mirror back to absent. Observers are not notified.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mirror = nil
}

// EmptySynchronize marks the collection as synchronized with an empty mirror,
// for collections populated one lookup at a time.
func (s *Store[T]) EmptySynchronize() error {
	s.mu.Lock()
	if s.path == "" {
		s.mu.Unlock()
		return s.fail(fmt.Errorf("%w: cannot synchronize without a path", ErrConfiguration))
	}
	s.mirror = make(map[int64]T)
	s.mu.Unlock()

	s.notify()
	return nil
}

// FetchAll replaces the mirror with the server's collection and notifies,
// whether or not anything changed. When geo carries two non-zero coordinates
// they are appended to the path as /{lon}/{lat}. On failure the mirror is
// left untouched.
func (s *Store[T]) FetchAll(ctx context.Context, geo *models.Geo) error {
	path := s.Path()
	if path == "" {
		return s.fail(fmt.Errorf("%w: cannot fetch without a path", ErrConfiguration))
	}

	target := path
	if geo != nil && geo.Longitude != 0 && geo.Latitude != 0 {
		target = path + "/" + formatCoordinate(geo.Longitude) + "/" + formatCoordinate(geo.Latitude)
	}

	body, err := s.adapter.List(ctx, target)
	if err != nil {
		return s.fail(&RemoteError{Op: "fetch all", Path: target, Err: err})
	}

	var items []T
	if err = json.Unmarshal(body, &items); err != nil {
		return s.fail(&RemoteError{Op: "fetch all", Path: target, Err: fmt.Errorf("decode response: %w", err)})
	}

	mirror := make(map[int64]T, len(items))
	for _, item := range items {
		mirror[item.EntityID()] = item
	}

	s.mu.Lock()
	s.mirror = mirror
	s.mu.Unlock()

	s.notify()
	return nil
}

// FetchByID loads one entity and puts it in the mirror, replacing any entity
// with the same id. An absent mirror becomes present with just that entity.
func (s *Store[T]) FetchByID(ctx context.Context, id int64) error {
	path := s.Path()
	if path == "" {
		return s.fail(fmt.Errorf("%w: cannot fetch without a path", ErrConfiguration))
	}

	body, err := s.adapter.Get(ctx, path, id)
	if err != nil {
		return s.fail(&RemoteError{Op: "fetch by id", Path: itemPath(path, id), Err: err})
	}

	var entity T
	if err = json.Unmarshal(body, &entity); err != nil {
		return s.fail(&RemoteError{Op: "fetch by id", Path: itemPath(path, id), Err: fmt.Errorf("decode response: %w", err)})
	}

	s.mu.Lock()
	if s.mirror == nil {
		s.mirror = make(map[int64]T)
	}
	delete(s.mirror, id)
	s.mirror[entity.EntityID()] = entity
	s.mu.Unlock()

	s.notify()
	s.onInfo(models.OperationRead, entity)
	return nil
}

type identity struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Add creates entity remotely and inserts it with the id and creation time
// assigned by the server. The store must be synchronized first; otherwise
// ErrState is returned and no request is made.
func (s *Store[T]) Add(ctx context.Context, entity T) (T, error) {
	var zero T

	path, err := s.writablePath("add")
	if err != nil {
		return zero, err
	}

	body, err := s.adapter.Create(ctx, path, entity)
	if err != nil {
		return zero, s.fail(&RemoteError{Op: "add", Path: path, Err: err})
	}

	var assigned identity
	if err = json.Unmarshal(body, &assigned); err != nil {
		return zero, s.fail(&RemoteError{Op: "add", Path: path, Err: fmt.Errorf("decode response: %w", err)})
	}
	if assigned.ID == 0 {
		return zero, s.fail(&RemoteError{Op: "add", Path: path, Err: fmt.Errorf("response carries no id")})
	}

	stored := entity.WithIdentity(assigned.ID, assigned.CreatedAt)

	s.mu.Lock()
	if s.mirror != nil {
		s.mirror[assigned.ID] = stored
	}
	s.mu.Unlock()

	s.notify()
	s.onInfo(models.OperationAdd, stored)
	return stored, nil
}

// Update replaces the entity remotely and stores the server's representation
// verbatim; the argument itself is never stored.
func (s *Store[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	path, err := s.writablePath("update")
	if err != nil {
		return zero, err
	}

	id := entity.EntityID()
	body, err := s.adapter.Update(ctx, path, id, entity)
	if err != nil {
		return zero, s.fail(&RemoteError{Op: "update", Path: itemPath(path, id), Err: err})
	}

	var stored T
	if err = json.Unmarshal(body, &stored); err != nil {
		return zero, s.fail(&RemoteError{Op: "update", Path: itemPath(path, id), Err: fmt.Errorf("decode response: %w", err)})
	}
	if stored.EntityID() == 0 {
		return zero, s.fail(&RemoteError{Op: "update", Path: itemPath(path, id), Err: fmt.Errorf("response carries no id")})
	}

	s.mu.Lock()
	if s.mirror != nil {
		delete(s.mirror, id)
		s.mirror[stored.EntityID()] = stored
	}
	s.mu.Unlock()

	s.notify()
	s.onInfo(models.OperationEdit, stored)
	return stored, nil
}

// Delete removes the entity remotely and reports whether the server accepted
// it. A success for an id that is not mirrored locally changes nothing and
// notifies no one.
func (s *Store[T]) Delete(ctx context.Context, id int64) (bool, error) {
	path, err := s.writablePath("delete")
	if err != nil {
		return false, err
	}

	if err = s.adapter.Delete(ctx, path, id); err != nil {
		return false, s.fail(&RemoteError{Op: "delete", Path: itemPath(path, id), Err: err})
	}

	s.mu.Lock()
	local, found := s.mirror[id]
	if found {
		delete(s.mirror, id)
	}
	s.mu.Unlock()

	if found {
		s.notify()
		s.onInfo(models.OperationDelete, local)
	}

	return true, nil
}

// writablePath returns the path when writes are allowed.
func (s *Store[T]) writablePath(op string) (string, error) {
	s.mu.RLock()
	path, synced := s.path, s.isSynchronizedLocked()
	s.mu.RUnlock()

	if !synced {
		return "", s.fail(fmt.Errorf("%w: cannot %s before the collection is fetched", ErrState, op))
	}

	return path, nil
}

// fail reports err to the error sink and returns it.
func (s *Store[T]) fail(err error) error {
	s.onError(err)
	return err
}

func itemPath(path string, id int64) string {
	return path + "/" + strconv.FormatInt(id, 10)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
