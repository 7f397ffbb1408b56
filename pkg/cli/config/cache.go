package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/repository/fs"
	"github.com/m-mizutani/docdive/pkg/repository/gcs"
	"github.com/urfave/cli/v3"
)

type Cache struct {
	dir       string
	ttl       time.Duration
	gcsBucket string
	gcsPrefix string
}

func (x *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cache-dir",
			Usage:       "Directory for the local documentation cache",
			Category:    "Cache",
			Value:       ".docdive-cache",
			Destination: &x.dir,
			Sources:     cli.EnvVars("DOCDIVE_CACHE_DIR"),
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "Cache freshness window",
			Category:    "Cache",
			Value:       24 * time.Hour,
			Destination: &x.ttl,
			Sources:     cli.EnvVars("DOCDIVE_CACHE_TTL"),
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "GCS bucket for the cache (overrides cache-dir)",
			Category:    "Cache",
			Destination: &x.gcsBucket,
			Sources:     cli.EnvVars("DOCDIVE_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object prefix within the GCS bucket",
			Category:    "Cache",
			Value:       "docdive",
			Destination: &x.gcsPrefix,
			Sources:     cli.EnvVars("DOCDIVE_GCS_PREFIX"),
		},
	}
}

func (x *Cache) TTL() time.Duration {
	return x.ttl
}

// NewStore builds the cache backend: GCS when a bucket is configured,
// the local filesystem otherwise. The returned closer releases the GCS
// client and is always non-nil.
func (x *Cache) NewStore(ctx context.Context) (interfaces.CacheStore, func(), error) {
	if x.gcsBucket != "" {
		store, err := gcs.New(ctx, x.gcsBucket, x.gcsPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	return fs.New(x.dir), func() {}, nil
}

func (x Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("dir", x.dir),
		slog.Any("ttl", x.ttl),
		slog.Any("gcsBucket", x.gcsBucket),
		slog.Any("gcsPrefix", x.gcsPrefix),
	)
}
