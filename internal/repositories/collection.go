package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// CollectionOptions describes how a record type is stored and identified.
type CollectionOptions[T any] struct {
	Key      string
	Defaults func() []T
	IDOf     func(T) uint64
	WithID   func(T, uint64) T
}

// Collection is an ordered, in-memory list of records persisted as one JSON
// array under a single storage key. Every mutation writes the whole array
// before it becomes visible in memory.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	storage StorageInterface
	opts    CollectionOptions[T]
	logger  *zap.Logger
}

// LoadCollection reads opts.Key from storage. A missing or empty value falls
// back to opts.Defaults; unparseable JSON yields an empty list. The resulting
// state is written back so the key always exists after load.
func LoadCollection[T any](ctx context.Context, storage StorageInterface, logger *zap.Logger, opts CollectionOptions[T]) (*Collection[T], error) {
	c := &Collection[T]{
		storage: storage,
		opts:    opts,
		logger:  logger.With(zap.String("key", opts.Key)),
	}

	raw, found, err := storage.Get(ctx, opts.Key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Key, err)
	}

	var items []T
	switch {
	case !found || raw == "":
		if opts.Defaults != nil {
			items = opts.Defaults()
		}
		c.logger.Debug("collection seeded with defaults", zap.Int("count", len(items)))
	default:
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			c.logger.Warn("stored collection is not valid JSON, starting empty", zap.Error(err))
			items = nil
		}
	}
	if items == nil {
		items = []T{}
	}

	if err := c.persist(ctx, items); err != nil {
		return nil, err
	}
	c.items = items
	return c, nil
}

func (c *Collection[T]) Key() string {
	return c.opts.Key
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the first record with the given id.
func (c *Collection[T]) Find(id uint64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.opts.IDOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the records matching pred, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Add appends item. An id of 0 is replaced with max(id)+1; any other id is
// kept as given, even if it already exists.
func (c *Collection[T]) Add(ctx context.Context, item T) (T, error) {
	return c.Insert(ctx, item, nil)
}

// Insert is Add with a guard that sees the current records under the write
// lock and can veto the insert.
func (c *Collection[T]) Insert(ctx context.Context, item T, guard func(existing []T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if guard != nil {
		if err := guard(c.items); err != nil {
			var zero T
			return zero, err
		}
	}

	if c.opts.IDOf(item) == 0 {
		item = c.opts.WithID(item, c.nextIDLocked())
	}

	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	next = append(next, item)

	if err := c.persist(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	c.items = next
	return item, nil
}

// Update applies mutate to every record whose id matches and returns the
// first updated record. The id itself cannot be changed by mutate.
func (c *Collection[T]) Update(ctx context.Context, id uint64, mutate func(*T)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		first   T
		matched bool
	)
	next := make([]T, len(c.items))
	copy(next, c.items)
	for i := range next {
		if c.opts.IDOf(next[i]) != id {
			continue
		}
		mutate(&next[i])
		next[i] = c.opts.WithID(next[i], id)
		if !matched {
			first = next[i]
			matched = true
		}
	}
	if !matched {
		return first, false, nil
	}

	if err := c.persist(ctx, next); err != nil {
		var zero T
		return zero, false, err
	}
	c.items = next
	return first, true, nil
}

func (c *Collection[T]) nextIDLocked() uint64 {
	var maxID uint64
	for _, item := range c.items {
		if id := c.opts.IDOf(item); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func (c *Collection[T]) persist(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.opts.Key, err)
	}
	if err := c.storage.Set(ctx, c.opts.Key, string(data)); err != nil {
		c.logger.Error("failed to persist collection", zap.Error(err))
		return fmt.Errorf("persist %s: %w", c.opts.Key, err)
	}
	return nil
}
