package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/utils/errutil"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// FetchDocs resolves the input to documentation text, cache first. A fresh
// cache entry short-circuits without touching the network; a miss or stale
// entry triggers a remote fetch, and a failed remote fetch falls back to the
// stale entry when one exists. Only a first-ever fetch with an unreachable
// remote surfaces an error.
func (x *UseCase) FetchDocs(ctx context.Context, input *model.FetchDocsInput) (*model.FetchDocsOutput, error) {
	if err := input.ValidateInput(); err != nil {
		return nil, err
	}

	desc, err := x.resolveDescriptor(input)
	if err != nil {
		return nil, err
	}

	key := desc.CacheKey()
	now := logging.CtxTime(ctx)

	if entry, err := x.clients.CacheStore().Get(ctx, key); err == nil && entry.Fresh(now, x.cacheTTL) {
		logging.From(ctx).Debug("serving fresh cache entry",
			slog.Any("key", key),
			slog.Time("fetchedAt", entry.FetchedAt),
		)
		return x.buildOutput(ctx, desc, entry.Content, true, input), nil
	}

	// Concurrent fetches of the same key share one remote round trip. The
	// shared fetch may serve callers other than the one that started it, so
	// it runs detached from the initiating request's cancellation while
	// keeping that request's ID, clock, and logger.
	bgCtx := logging.With(logging.InheritContextValues(context.Background(), ctx), logging.From(ctx))
	v, err, _ := x.flight.Do(string(key), func() (any, error) {
		return x.refreshDocs(bgCtx, key, desc)
	})
	if err != nil {
		stale, gerr := x.clients.CacheStore().Get(ctx, key)
		if gerr != nil {
			return nil, err
		}
		logging.From(ctx).Warn("remote fetch failed, serving stale cache entry",
			slog.Any("key", key),
			slog.Time("fetchedAt", stale.FetchedAt),
			slog.Any("error", err),
		)
		return x.buildOutput(ctx, desc, stale.Content, true, input), nil
	}

	entry := v.(*model.CacheEntry)
	return x.buildOutput(ctx, desc, entry.Content, false, input), nil
}

func (x *UseCase) resolveDescriptor(input *model.FetchDocsInput) (model.RepositoryDescriptor, error) {
	if input.Descriptor != nil {
		return *input.Descriptor, nil
	}

	repos, ok := x.registry.Resolve(input.Library)
	if !ok {
		return model.RepositoryDescriptor{}, goerr.Wrap(types.ErrLibraryNotFound, "library is not registered",
			goerr.V("library", input.Library),
		)
	}
	return repos[0], nil
}

func (x *UseCase) buildOutput(ctx context.Context, desc model.RepositoryDescriptor, content string, cached bool, input *model.FetchDocsInput) *model.FetchDocsOutput {
	out := &model.FetchDocsOutput{
		Descriptor: desc,
		Content:    filterContent(content, input.Query),
		Cached:     cached,
	}
	if input.Validate {
		out.Validation = x.ValidateContent(ctx, out.Content)
	}
	return out
}

// refreshDocs performs the remote fetch and persists the result. A failed
// cache write is reported but does not fail the fetch: the caller still gets
// the fresh content, and only future freshness checks degrade.
func (x *UseCase) refreshDocs(ctx context.Context, key types.CacheKey, desc model.RepositoryDescriptor) (*model.CacheEntry, error) {
	contents, err := x.clients.GitHubDocs().GetContents(ctx, desc)
	if err != nil {
		return nil, goerr.Wrap(types.ErrRemoteFetch, "failed to fetch remote documentation",
			goerr.V("descriptor", desc.String()),
			goerr.V("cause", err),
		)
	}

	entry := &model.CacheEntry{
		FetchedAt: logging.CtxTime(ctx),
	}

	if contents.File != nil {
		entry.Content = contents.File.Content
		entry.SourceVersion = contents.File.SHA
	} else {
		aggregated, err := x.aggregateDirectory(ctx, desc, contents.Entries)
		if err != nil {
			return nil, err
		}
		entry.Content = aggregated
		entry.SourceVersion = model.SourceVersionDir
	}

	if err := x.clients.CacheStore().Put(ctx, key, entry); err != nil {
		errutil.HandleError(ctx, "failed to persist cache entry", err)
	}

	return entry, nil
}

// aggregateDirectory concatenates the markdown files of a directory listing,
// each prefixed with a heading naming its source file. Files are taken in
// the order the remote listing reports them, not sorted locally.
func (x *UseCase) aggregateDirectory(ctx context.Context, desc model.RepositoryDescriptor, entries []*model.RemoteEntry) (string, error) {
	var sb strings.Builder
	found := 0

	for _, entry := range entries {
		if entry.Type != model.RemoteEntryFile || !isMarkdown(entry.Name) {
			continue
		}

		fileDesc := desc
		fileDesc.Path = entry.Path
		contents, err := x.clients.GitHubDocs().GetContents(ctx, fileDesc)
		if err != nil {
			return "", goerr.Wrap(types.ErrRemoteFetch, "failed to fetch directory file",
				goerr.V("path", entry.Path),
				goerr.V("cause", err),
			)
		}
		if contents.File == nil {
			continue
		}

		fmt.Fprintf(&sb, "# %s\n\n%s\n\n", entry.Name, strings.TrimRight(contents.File.Content, "\n"))
		found++
	}

	if found == 0 {
		return "", goerr.Wrap(types.ErrNoMarkdownFound, "directory has no markdown files",
			goerr.V("descriptor", desc.String()),
			goerr.V("entries", len(entries)),
		)
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".mdx":
		return true
	}
	return false
}
