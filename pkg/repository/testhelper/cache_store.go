package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all conformance test cases for a CacheStore implementation.
func TestAll(t *testing.T, store interfaces.CacheStore) {
	t.Run("PutGetRoundtrip", func(t *testing.T) {
		TestPutGetRoundtrip(t, store)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, store)
	})
	t.Run("MissingKey", func(t *testing.T) {
		TestMissingKey(t, store)
	})
	t.Run("NilEntry", func(t *testing.T) {
		TestNilEntry(t, store)
	})
}

func newKey() types.CacheKey {
	return types.CacheKey(fmt.Sprintf("owner-%s_repo_root", uuid.New().String()[:8]))
}

// TestPutGetRoundtrip verifies all three fields survive a write/read cycle.
func TestPutGetRoundtrip(t *testing.T, store interfaces.CacheStore) {
	ctx := context.Background()
	key := newKey()

	entry := &model.CacheEntry{
		Content:       "# README\n\nhello docs\n",
		FetchedAt:     time.Now().UTC().Truncate(time.Second),
		SourceVersion: "f7c8851da7c7fcc46212fccfb6c9c4bda520f1ca",
	}
	gt.NoError(t, store.Put(ctx, key, entry))

	got, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, got.Content).Equal(entry.Content)
	gt.V(t, got.SourceVersion).Equal(entry.SourceVersion)
	gt.True(t, got.FetchedAt.Equal(entry.FetchedAt))
}

// TestOverwrite verifies a refresh fully replaces the prior record.
func TestOverwrite(t *testing.T, store interfaces.CacheStore) {
	ctx := context.Background()
	key := newKey()

	first := &model.CacheEntry{
		Content:       "old content",
		FetchedAt:     time.Now().Add(-48 * time.Hour),
		SourceVersion: "aaaa",
	}
	gt.NoError(t, store.Put(ctx, key, first))

	second := &model.CacheEntry{
		Content:       "new content",
		FetchedAt:     time.Now(),
		SourceVersion: model.SourceVersionDir,
	}
	gt.NoError(t, store.Put(ctx, key, second))

	got, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, got.Content).Equal("new content")
	gt.V(t, got.SourceVersion).Equal(model.SourceVersionDir)
}

func TestMissingKey(t *testing.T, store interfaces.CacheStore) {
	ctx := context.Background()

	_, err := store.Get(ctx, newKey())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestNilEntry(t *testing.T, store interfaces.CacheStore) {
	ctx := context.Background()

	err := store.Put(ctx, newKey(), nil)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}
