package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubDocs TextClassifier

import (
	"context"

	"github.com/m-mizutani/docdive/pkg/domain/model"
)

// GitHubDocs is the remote documentation source. GetContents resolves the
// descriptor's path (repository root when empty) to either a single decoded
// file or a directory listing, whichever the remote reports.
type GitHubDocs interface {
	GetContents(ctx context.Context, desc model.RepositoryDescriptor) (*model.RemoteContents, error)
	SearchRepositories(ctx context.Context, query string, limit int) ([]*model.RepoCandidate, error)
}

// TextClassifier is the optional high-confidence stage of the security
// screen. Implementations should bound their own latency; any error is
// treated by the caller as "stage unavailable", never as a block.
type TextClassifier interface {
	Classify(ctx context.Context, text string) (*model.Classification, error)
}
