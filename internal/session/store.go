package session

import (
	"context"
	"sync"
	"time"

	"storefront/pkg/platform/sentinel"
)

// Store persists session records.
type Store interface {
	Load(ctx context.Context, id string) (*Record, error)
	Save(ctx context.Context, rec Record, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// InMemoryStore keeps sessions in process memory. Used in tests and when
// Redis is not configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	record    Record
	expiresAt time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]memoryEntry), now: time.Now}
}

func (s *InMemoryStore) Load(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	entry, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.records, id)
		s.mu.Unlock()
		return nil, sentinel.ErrExpired
	}
	rec := entry.record
	return &rec, nil
}

func (s *InMemoryStore) Save(_ context.Context, rec Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}
	s.records[rec.ID] = memoryEntry{record: rec, expiresAt: expiresAt}
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}
