package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/docdive/pkg/domain/model"
)

type UseCase interface {
	FetchDocs(ctx context.Context, input *model.FetchDocsInput) (*model.FetchDocsOutput, error)

	// SearchRepos is best-effort: remote failures yield an empty slice, not
	// an error.
	SearchRepos(ctx context.Context, query string, limit int) []model.RepositoryDescriptor

	ValidateContent(ctx context.Context, content string) *model.ValidationResult

	ListLibraries() []*model.Library
	AddLibrary(name string, desc model.RepositoryDescriptor)
}
