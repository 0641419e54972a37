package uncertainty

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// Store holds values between tool calls, keyed by opaque handles. Handles are
// the wire representation of a Value: tool results return them and later
// calls resolve them back.
type Store struct {
	mu       sync.RWMutex
	values   map[string]uncertain.Value
	capacity int
}

// NewStore creates a store bounded at capacity values (0 means unbounded).
func NewStore(capacity int) *Store {
	return &Store{
		values:   make(map[string]uncertain.Value),
		capacity: capacity,
	}
}

// Put stores v under a fresh handle.
func (s *Store) Put(v uncertain.Value) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity > 0 && len(s.values) >= s.capacity {
		return "", fmt.Errorf("value store full (%d values); release handles or reset", s.capacity)
	}
	id := uuid.NewString()
	s.values[id] = v
	return id, nil
}

// Get resolves a handle.
func (s *Store) Get(id string) (uncertain.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[id]
	return v, ok
}

// Release removes a handle, reporting whether it existed. The underlying
// atomic variables stay registered; only the handle is dropped.
func (s *Store) Release(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[id]
	delete(s.values, id)
	return ok
}

// Len reports the number of stored values.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Clear drops all handles.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]uncertain.Value)
}
