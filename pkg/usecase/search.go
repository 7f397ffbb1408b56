package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
)

const defaultSearchLimit = 10

// SearchRepos finds candidate documentation sources via the remote search
// API, most-starred first. Search is advisory: any remote failure yields an
// empty result set instead of an error, so callers can treat "nothing found"
// and "search unavailable" the same way.
func (x *UseCase) SearchRepos(ctx context.Context, query string, limit int) []model.RepositoryDescriptor {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	candidates, err := x.clients.GitHubDocs().SearchRepositories(ctx, query, limit)
	if err != nil {
		logging.From(ctx).Warn("repository search failed, returning no results",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return []model.RepositoryDescriptor{}
	}

	descs := make([]model.RepositoryDescriptor, 0, len(candidates))
	for _, c := range candidates {
		// Hits without an owner login are malformed (deleted accounts).
		if c.Owner == "" {
			continue
		}
		descs = append(descs, model.RepositoryDescriptor{
			Owner: types.Owner(c.Owner),
			Repo:  types.RepoName(c.Repo),
			Path:  "README.md",
		})
	}

	return descs
}
