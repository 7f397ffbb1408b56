package interfaces

import (
	"context"

	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
)

//go:generate moq -out ../mock/cache_store_mock.go -pkg mock . CacheStore

// CacheStore is durable keyed storage of fetched documentation. Get returns
// repository.ErrNotFound when no usable record exists at the key; a corrupt
// record counts as absent. Put fully replaces any prior value and must appear
// atomic to concurrent readers.
type CacheStore interface {
	Get(ctx context.Context, key types.CacheKey) (*model.CacheEntry, error)
	Put(ctx context.Context, key types.CacheKey, entry *model.CacheEntry) error
}
