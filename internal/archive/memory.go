package archive

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a Store held in process memory. List returns entries in
// first-insertion order.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	m     map[string]T
	order []string
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{m: map[string]T{}}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[id]
	return v, ok, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		s.order = append(s.order, id)
	}
	s.m[id] = v
	return nil
}

func (s *MemoryStore[T]) List(_ context.Context) ([]Entry[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry[T], 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Entry[T]{ID: id, Value: s.m[id]})
	}
	return out, nil
}

func (s *MemoryStore[T]) NewID() string {
	return uuid.NewString()
}
