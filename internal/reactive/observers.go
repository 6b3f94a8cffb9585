package reactive

import "slices"

// Observer receives the full ordered mirror each time it changes.
//
// Observers are kept in a set keyed by the observer value itself, so
// implementations must be comparable; pointer receivers are the usual choice.
type Observer[T any] interface {
	Notify(snapshot []T)
}

type funcObserver[T any] struct {
	fn func([]T)
}

func (o *funcObserver[T]) Notify(snapshot []T) {
	o.fn(snapshot)
}

// ObserveFunc subscribes fn and returns the function that unsubscribes it.
// Calling cancel more than once is harmless.
func (s *Store[T]) ObserveFunc(fn func([]T)) (cancel func()) {
	o := &funcObserver[T]{fn: fn}
	s.Subscribe(o)

	return func() { s.Unsubscribe(o) }
}

// Subscribe adds o to the observer set. Subscribing twice is a no-op.
func (s *Store[T]) Subscribe(o Observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers[o] = struct{}{}
}

// Unsubscribe removes o. Unknown observers are ignored.
func (s *Store[T]) Unsubscribe(o Observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.observers, o)
}

// HasSubscribers reports whether at least one observer is registered.
func (s *Store[T]) HasSubscribers() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.observers) > 0
}

// notify sends the current snapshot to every observer, each receiving its own
// copy. An absent mirror or a missing path never broadcasts. Observers run
// outside the lock so they may call back into the store.
func (s *Store[T]) notify() {
	s.mu.RLock()
	if !s.isSynchronizedLocked() {
		s.mu.RUnlock()
		return
	}

	snapshot := s.snapshotLocked()
	observers := make([]Observer[T], 0, len(s.observers))
	for o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.RUnlock()

	for _, o := range observers {
		o.Notify(slices.Clone(snapshot))
	}
}
