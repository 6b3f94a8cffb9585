// Package bridge turns a reactive store's push notifications into a pulled
// "current snapshot" for a rendering layer.
//
// A [Bridge] subscribes itself to the store on Mount, synchronizes the store
// on first use (eagerly with FetchAll or lazily with EmptySynchronize), and
// keeps the last snapshot. It only replaces that snapshot, and signals
// Changes, when a notification differs in size or membership.
package bridge

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-account-keeper/internal/reactive"
	"github.com/MKhiriev/go-account-keeper/models"
)

// Bridge adapts one Store for a renderer.
type Bridge[T models.Entity[T]] struct {
	store    *reactive.Store[T]
	fetchAll bool

	mu       sync.RWMutex
	mounted  bool
	snapshot []T
	ready    bool

	changes chan struct{}
}

// New returns an unmounted bridge. fetchAll selects eager synchronization;
// false synchronizes to an empty mirror and relies on individual lookups.
func New[T models.Entity[T]](store *reactive.Store[T], fetchAll bool) *Bridge[T] {
	return &Bridge[T]{
		store:    store,
		fetchAll: fetchAll,
		changes:  make(chan struct{}, 1),
	}
}

// Mount subscribes the bridge and, if the store has a path but no mirror
// yet, synchronizes it. Mounting an already mounted bridge does nothing.
func (b *Bridge[T]) Mount(ctx context.Context) error {
	b.mu.Lock()
	if b.mounted {
		b.mu.Unlock()
		return nil
	}
	b.mounted = true
	b.mu.Unlock()

	b.store.Subscribe(b)

	if b.store.IsSynchronized() {
		// already synchronized elsewhere; take the current view
		if current, ok := b.store.Snapshot(); ok {
			b.Notify(current)
		}
		return nil
	}

	if !b.store.HasRemote() {
		return nil
	}

	if b.fetchAll {
		return b.store.FetchAll(ctx, nil)
	}

	return b.store.EmptySynchronize()
}

// Unmount unsubscribes the bridge. The last snapshot stays readable.
func (b *Bridge[T]) Unmount() {
	b.mu.Lock()
	b.mounted = false
	b.mu.Unlock()

	b.store.Unsubscribe(b)
}

// Notify implements reactive.Observer.
func (b *Bridge[T]) Notify(snapshot []T) {
	b.mu.Lock()
	if b.ready && sameMembers(b.snapshot, snapshot) {
		b.mu.Unlock()
		return
	}
	b.snapshot = slices.Clone(snapshot)
	if b.snapshot == nil {
		b.snapshot = []T{}
	}
	b.ready = true
	b.mu.Unlock()

	select {
	case b.changes <- struct{}{}:
	default:
	}
}

// Snapshot returns a copy of the held view; false until the first
// notification arrives.
func (b *Bridge[T]) Snapshot() ([]T, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.ready {
		return nil, false
	}

	return slices.Clone(b.snapshot), true
}

// Store returns the underlying store for issuing mutations.
func (b *Bridge[T]) Store() *reactive.Store[T] {
	return b.store
}

// Changes signals that Snapshot changed. Signals coalesce: several changes
// between two reads produce one value.
func (b *Bridge[T]) Changes() <-chan struct{} {
	return b.changes
}

// sameMembers reports whether both views hold the same entities. Equality is
// per entity value keyed by id, so an edited entity counts as a change.
func sameMembers[T models.Entity[T]](prev, next []T) bool {
	if len(prev) != len(next) {
		return false
	}

	byID := make(map[int64]T, len(prev))
	for _, e := range prev {
		byID[e.EntityID()] = e
	}

	for _, e := range next {
		old, ok := byID[e.EntityID()]
		if !ok || !old.Equal(e) {
			return false
		}
	}

	return true
}
