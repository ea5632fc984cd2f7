package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryCacheEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCacheRepository is a process-local TTL cache. Expired entries are
// dropped lazily on access.
type MemoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
	now     func() time.Time
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{
		entries: make(map[string]memoryCacheEntry),
		now:     time.Now,
	}
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := memoryCacheEntry{value: fmt.Sprint(value)}
	if expiration > 0 {
		entry.expiresAt = r.now().Add(expiration)
	}
	r.entries[key] = entry
	return nil
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.lookupLocked(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (r *MemoryCacheRepository) Del(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.entries, k)
	}
	return nil
}

func (r *MemoryCacheRepository) Exists(_ context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.lookupLocked(key)
	return ok, nil
}

func (r *MemoryCacheRepository) lookupLocked(key string) (memoryCacheEntry, bool) {
	entry, ok := r.entries[key]
	if !ok {
		return memoryCacheEntry{}, false
	}
	if !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt) {
		delete(r.entries, key)
		return memoryCacheEntry{}, false
	}
	return entry, true
}
