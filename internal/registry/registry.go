// Package registry caches the user's question sets in front of the
// backend, refetching after any mutation rather than patching locally.
package registry

import (
	"context"
	"sync"

	"quizdeck/internal/question"
)

// Backend is the slice of the API the cache consumes.
type Backend interface {
	ListSets(ctx context.Context) ([]question.Set, error)
	RenameSet(ctx context.Context, id int, name string) error
	DeleteSet(ctx context.Context, id int) error
}

// Cache holds the fetched set list until it is invalidated.
type Cache struct {
	mu      sync.RWMutex
	backend Backend
	sets    []question.Set
	fresh   bool
}

// New creates an empty cache over a backend.
func New(backend Backend) *Cache {
	return &Cache{backend: backend}
}

// Sets returns the cached list, fetching when stale. Callers own the
// returned slice; it never aliases the cache.
func (c *Cache) Sets(ctx context.Context) ([]question.Set, error) {
	c.mu.RLock()
	if c.fresh {
		snapshot := copySets(c.sets)
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	sets, err := c.backend.ListSets(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.sets = copySets(sets)
	c.fresh = true
	c.mu.Unlock()
	return sets, nil
}

// Invalidate drops the cached list; the next Sets call refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.sets = nil
	c.fresh = false
	c.mu.Unlock()
}

// Rename updates a set's name on the backend, then invalidates. The
// fresh name is only ever observed through a refetch.
func (c *Cache) Rename(ctx context.Context, id int, name string) error {
	if err := c.backend.RenameSet(ctx, id, name); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Delete removes a set on the backend, then invalidates.
func (c *Cache) Delete(ctx context.Context, id int) error {
	if err := c.backend.DeleteSet(ctx, id); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// copySets clones a set list.
func copySets(sets []question.Set) []question.Set {
	if sets == nil {
		return nil
	}
	out := make([]question.Set, len(sets))
	copy(out, sets)
	return out
}
