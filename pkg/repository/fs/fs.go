// Package fs implements the cache store as one JSON file per key under a
// root directory. Writes go to a temporary file in the same directory and
// are renamed into place, so a record is never observed half-written.
package fs

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/repository"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
	"github.com/m-mizutani/docdive/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

type Store struct {
	root string
}

var _ interfaces.CacheStore = (*Store)(nil)

func New(root string) *Store {
	return &Store{root: root}
}

func (x *Store) path(key types.CacheKey) string {
	return filepath.Join(x.root, string(key)+".json")
}

// Get reads the record at key. Missing, unreadable and corrupt records all
// map to ErrNotFound: a broken cache must behave as an empty one. The
// underlying error is logged at debug level so silent cache failures stay
// diagnosable.
func (x *Store) Get(ctx context.Context, key types.CacheKey) (*model.CacheEntry, error) {
	raw, err := os.ReadFile(x.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logging.From(ctx).Debug("cache read failed, treating as miss",
				slog.Any("key", key),
				slog.Any("error", err),
			)
		}
		return nil, goerr.Wrap(repository.ErrNotFound, "no cache record", goerr.V("key", key))
	}

	var entry model.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		logging.From(ctx).Debug("cache record corrupt, treating as miss",
			slog.Any("key", key),
			slog.Any("error", err),
		)
		return nil, goerr.Wrap(repository.ErrNotFound, "corrupt cache record", goerr.V("key", key))
	}

	return &entry, nil
}

// Put atomically replaces the record at key.
func (x *Store) Put(ctx context.Context, key types.CacheKey, entry *model.CacheEntry) error {
	if entry == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "entry is nil")
	}

	if err := os.MkdirAll(x.root, 0755); err != nil {
		return goerr.Wrap(err, "failed to create cache directory", goerr.V("root", x.root))
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return goerr.Wrap(err, "failed to serialize cache entry", goerr.V("key", key))
	}

	tmp, err := os.CreateTemp(x.root, string(key)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary cache file")
	}

	if _, err := tmp.Write(raw); err != nil {
		safe.Close(tmp)
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to write cache entry", goerr.V("key", key))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to close temporary cache file", goerr.V("key", key))
	}

	if err := os.Rename(tmp.Name(), x.path(key)); err != nil {
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to replace cache record", goerr.V("key", key))
	}

	return nil
}
