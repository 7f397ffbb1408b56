// Package gcs implements the cache store on Google Cloud Storage, one JSON
// object per key. An object write is atomic on the GCS side, so concurrent
// readers never observe a partial record.
package gcs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/repository"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
	"github.com/m-mizutani/docdive/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type Store struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.CacheStore = (*Store)(nil)

func New(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*Store, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create cloud storage client")
	}

	return &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (x *Store) object(key types.CacheKey) *storage.ObjectHandle {
	return x.client.Bucket(x.bucket).Object(path.Join(x.prefix, string(key)+".json"))
}

func (x *Store) Get(ctx context.Context, key types.CacheKey) (*model.CacheEntry, error) {
	r, err := x.object(key).NewReader(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrObjectNotExist) {
			logging.From(ctx).Debug("cache read failed, treating as miss",
				slog.Any("key", key),
				slog.Any("error", err),
			)
		}
		return nil, goerr.Wrap(repository.ErrNotFound, "no cache record", goerr.V("key", key))
	}
	defer safe.Close(r)

	raw, err := io.ReadAll(r)
	if err != nil {
		logging.From(ctx).Debug("cache read failed, treating as miss",
			slog.Any("key", key),
			slog.Any("error", err),
		)
		return nil, goerr.Wrap(repository.ErrNotFound, "unreadable cache record", goerr.V("key", key))
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

func (x *Store) Put(ctx context.Context, key types.CacheKey, entry *model.CacheEntry) error {
	if entry == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "entry is nil")
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return goerr.Wrap(err, "failed to serialize cache entry", goerr.V("key", key))
	}

	w := x.object(key).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(raw); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write cache record", goerr.V("key", key))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize cache record", goerr.V("key", key))
	}

	return nil
}

func (x *Store) Close() error {
	return x.client.Close()
}
