package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultMemorySize = 10_000

// MemoryStore is a single-process dedup store for local runs and tests.
// Eviction (size or TTL) re-opens the key, which is acceptable for the
// environments it serves.
type MemoryStore struct {
	mu   sync.Mutex
	keys *expirable.LRU[string, struct{}]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = defaultMemorySize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &MemoryStore{
		keys: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

func (s *MemoryStore) MarkProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keys.Contains(key) {
		return false, nil
	}

	s.keys.Add(key, struct{}{})

	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys.Remove(key)

	return nil
}

var _ Store = (*MemoryStore)(nil)
