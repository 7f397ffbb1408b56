package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/repository"
	"github.com/m-mizutani/docdive/pkg/repository/fs"
	"github.com/m-mizutani/docdive/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestFsCacheStore(t *testing.T) {
	store := fs.New(t.TempDir())
	testhelper.TestAll(t, store)
}

func TestCorruptRecordIsMiss(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := fs.New(dir)
	key := types.CacheKey("acme_widgets_root")

	gt.NoError(t, store.Put(ctx, key, &model.CacheEntry{
		Content:   "ok",
		FetchedAt: time.Now(),
	}))

	// Truncate the record to break its JSON framing.
	path := filepath.Join(dir, string(key)+".json")
	gt.NoError(t, os.WriteFile(path, []byte(`{"content": "ok", "fetched`), 0644))

	_, err := store.Get(ctx, key)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPutCreatesRoot(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	store := fs.New(dir)

	gt.NoError(t, store.Put(ctx, "acme_widgets_docs", &model.CacheEntry{
		Content:       "docs",
		FetchedAt:     time.Now(),
		SourceVersion: model.SourceVersionDir,
	}))

	entry, err := store.Get(ctx, "acme_widgets_docs")
	gt.NoError(t, err)
	gt.V(t, entry.Content).Equal("docs")
}

func TestNoTempFileLeftBehind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := fs.New(dir)

	gt.NoError(t, store.Put(ctx, "k", &model.CacheEntry{Content: "v", FetchedAt: time.Now()}))

	files, err := os.ReadDir(dir)
	gt.NoError(t, err)
	gt.V(t, len(files)).Equal(1)
	gt.V(t, files[0].Name()).Equal("k.json")
}
