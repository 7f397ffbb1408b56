// Package memory is an in-memory cache store for tests.
package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type Store struct {
	mu      sync.RWMutex
	entries map[types.CacheKey]model.CacheEntry
}

var _ interfaces.CacheStore = (*Store)(nil)

// New creates a new in-memory cache store
func New() *Store {
	return &Store{
		entries: make(map[types.CacheKey]model.CacheEntry),
	}
}

func (x *Store) Get(ctx context.Context, key types.CacheKey) (*model.CacheEntry, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	entry, ok := x.entries[key]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "no cache record", goerr.V("key", key))
	}

	// Copy so the caller cannot mutate the stored record.
	return &entry, nil
}

func (x *Store) Put(ctx context.Context, key types.CacheKey, entry *model.CacheEntry) error {
	if entry == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "entry is nil")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.entries[key] = *entry
	return nil
}
