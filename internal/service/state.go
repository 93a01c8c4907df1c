package service

import "sync"

// State exposes the loading/error/items triple for one content type. A failed
// refresh records the error but leaves the previously fetched items in place,
// so callers can tell "error" apart from "successfully empty".
type State[T any] struct {
	mu      sync.RWMutex
	loading bool
	lastErr error
	items   []T
}

func NewState[T any]() *State[T] {
	return &State[T]{}
}

// Begin marks a refresh as in flight and clears the previous error.
func (s *State[T]) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastErr = nil
}

// Complete replaces the item set wholesale.
func (s *State[T]) Complete(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastErr = nil
	s.items = items
}

// Fail records the error; items are untouched.
func (s *State[T]) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastErr = err
}

// Items returns a copy of the current item set.
func (s *State[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

func (s *State[T]) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *State[T]) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
