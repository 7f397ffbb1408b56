package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestCacheKey(t *testing.T) {
	cases := []struct {
		desc model.RepositoryDescriptor
		want types.CacheKey
	}{
		{
			desc: model.RepositoryDescriptor{Owner: "acme", Repo: "widgets"},
			want: "acme_widgets_root",
		},
		{
			desc: model.RepositoryDescriptor{Owner: "acme", Repo: "widgets", Path: "docs"},
			want: "acme_widgets_docs",
		},
		{
			desc: model.RepositoryDescriptor{Owner: "acme", Repo: "widgets", Path: "/docs/guide/"},
			want: "acme_widgets_docs-guide",
		},
		{
			desc: model.RepositoryDescriptor{Owner: "acme", Repo: "widgets", Path: "README.md", Branch: "main"},
			want: "acme_widgets_README.md",
		},
	}

	for _, tc := range cases {
		gt.V(t, tc.desc.CacheKey()).Equal(tc.want)
	}
}

func TestDescriptorValidate(t *testing.T) {
	gt.NoError(t, model.RepositoryDescriptor{Owner: "acme", Repo: "widgets"}.Validate())
	gt.Error(t, model.RepositoryDescriptor{Repo: "widgets"}.Validate())
	gt.Error(t, model.RepositoryDescriptor{Owner: "acme"}.Validate())
}

func TestCacheEntryFresh(t *testing.T) {
	now := time.Now()
	ttl := 24 * time.Hour

	fresh := &model.CacheEntry{FetchedAt: now.Add(-time.Hour)}
	gt.True(t, fresh.Fresh(now, ttl))

	stale := &model.CacheEntry{FetchedAt: now.Add(-25 * time.Hour)}
	gt.False(t, stale.Fresh(now, ttl))
}
