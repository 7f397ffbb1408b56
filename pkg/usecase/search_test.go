package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/docdive/pkg/domain/mock"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/infra"
	"github.com/m-mizutani/docdive/pkg/repository/memory"
	"github.com/m-mizutani/docdive/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newSearchUseCase(mockGH *mock.GitHubDocsMock) *usecase.UseCase {
	return usecase.New(infra.New(
		infra.WithGitHubDocs(mockGH),
		infra.WithCacheStore(memory.New()),
	))
}

func TestSearchMapsCandidates(t *testing.T) {
	mockGH := &mock.GitHubDocsMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, limit int) ([]*model.RepoCandidate, error) {
			gt.V(t, query).Equal("http client")
			gt.V(t, limit).Equal(5)
			return []*model.RepoCandidate{
				{Owner: "acme", Repo: "fetchlib", Stars: 900},
				{Owner: "", Repo: "orphaned", Stars: 500},
				{Owner: "beta", Repo: "httpkit", Stars: 100},
			}, nil
		},
	}
	uc := newSearchUseCase(mockGH)

	descs := uc.SearchRepos(context.Background(), "http client", 5)
	gt.V(t, len(descs)).Equal(2)
	gt.V(t, descs[0].Owner).Equal("acme")
	gt.V(t, descs[0].Path).Equal("README.md")
	gt.V(t, descs[1].Owner).Equal("beta")
}

func TestSearchRemoteFailureReturnsEmpty(t *testing.T) {
	mockGH := &mock.GitHubDocsMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, limit int) ([]*model.RepoCandidate, error) {
			return nil, errors.New("api rate limit exceeded")
		},
	}
	uc := newSearchUseCase(mockGH)

	descs := uc.SearchRepos(context.Background(), "nonexistent-xyz-library-42", 5)
	gt.V(t, descs != nil).Equal(true)
	gt.V(t, len(descs)).Equal(0)
}

func TestSearchDefaultLimit(t *testing.T) {
	mockGH := &mock.GitHubDocsMock{
		SearchRepositoriesFunc: func(ctx context.Context, query string, limit int) ([]*model.RepoCandidate, error) {
			gt.V(t, limit).Equal(10)
			return nil, nil
		},
	}
	uc := newSearchUseCase(mockGH)

	descs := uc.SearchRepos(context.Background(), "anything", 0)
	gt.V(t, len(descs)).Equal(0)
}
