// Package impl contains the application-specific business rules implementations.
package impl

import (
	"slices"
	"sync"
)

type listener[S any] struct {
	id uint64
	fn func(S)
}

// stateStore owns one state value. Transitions run under the write lock;
// listeners run afterwards, outside it, serialized in mutation order.
// A listener must not mutate the store that is notifying it.
type stateStore[S any] struct {
	// notifyMu serializes mutate+notify so listeners observe mutation order.
	notifyMu sync.Mutex
	mu       sync.RWMutex

	state     S
	clone     func(S) S
	listeners []listener[S]
	nextID    uint64
}

func newStateStore[S any](initial S, clone func(S) S) *stateStore[S] {
	return &stateStore[S]{
		state: clone(initial),
		clone: clone,
	}
}

func (s *stateStore[S]) Snapshot() S {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.clone(s.state)
}

func (s *stateStore[S]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[S]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.listeners = slices.DeleteFunc(s.listeners, func(l listener[S]) bool { return l.id == id })
	}
}

func (s *stateStore[S]) Restore(state S) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.clone(state)
}

// update applies fn to the current state, stores the result and notifies listeners.
func (s *stateStore[S]) update(fn func(S) S) S {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next := fn(s.state)
	s.state = next
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(s.clone(next))
	}

	return s.clone(next)
}

// read runs fn against the current state under the read lock.
func read[S, T any](s *stateStore[S], fn func(S) T) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.state)
}
