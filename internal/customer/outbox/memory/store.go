package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"onboarding/internal/customer/outbox"
)

// InMemoryStore keeps pending outbox entries in insertion order. Published
// entries are released as soon as they are marked.
type InMemoryStore struct {
	mu       sync.RWMutex
	entries  []outbox.Entry
	capacity int
}

// Option configures an InMemoryStore.
type Option func(*InMemoryStore)

// WithCapacity bounds the store to n entries; appending beyond it evicts the
// oldest entry. Use it only when no relay drains the store.
func WithCapacity(n int) Option {
	return func(s *InMemoryStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemoryStore) Append(_ context.Context, entry outbox.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if s.capacity > 0 && len(s.entries) > s.capacity {
		evicted := len(s.entries) - s.capacity
		s.entries = append(s.entries[:0:0], s.entries[evicted:]...)
	}
	return nil
}

// Pending returns up to limit entries, oldest first.
func (s *InMemoryStore) Pending(_ context.Context, limit int) ([]outbox.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := min(limit, len(s.entries))
	return append([]outbox.Entry{}, s.entries[:n]...), nil
}

// MarkPublished drops the given entries. Unknown ids are ignored.
func (s *InMemoryStore) MarkPublished(_ context.Context, ids []uuid.UUID, _ time.Time) error {
	marked := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if _, ok := marked[e.ID]; !ok {
			kept = append(kept, e)
		}
	}
	clear(s.entries[len(kept):])
	s.entries = kept
	return nil
}

// Len returns the number of entries held.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// All returns a copy of every held entry.
func (s *InMemoryStore) All() []outbox.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]outbox.Entry{}, s.entries...)
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
