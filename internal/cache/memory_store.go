package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryTokenStore is an in-process TokenStore used in tests and in
// development setups that run without Redis. Expiry is checked lazily on
// read; entries are not actively swept.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryTokenStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryTokenStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return "", ErrNotFound
	}
	return entry.value, nil
}

func (s *MemoryTokenStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
