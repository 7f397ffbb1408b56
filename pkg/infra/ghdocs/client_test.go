package ghdocs_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/infra/ghdocs"
	"github.com/m-mizutani/docdive/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestNewAppWithoutKey(t *testing.T) {
	_, err := ghdocs.New(ghdocs.WithApp(12345, 67890, ""))
	gt.Error(t, err)
}

func TestNewAnonymous(t *testing.T) {
	client, err := ghdocs.New()
	gt.NoError(t, err)
	gt.V(t, client != nil).Equal(true)
}

func TestGetContentsIntegration(t *testing.T) {
	testutil.GetEnvOrSkip(t, "TEST_GITHUB_API")
	ctx := context.Background()

	client := gt.R1(ghdocs.New(ghdocs.WithToken(types.GitHubToken(testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN"))))).NoError(t)

	t.Run("single file", func(t *testing.T) {
		contents, err := client.GetContents(ctx, model.RepositoryDescriptor{
			Owner: "m-mizutani",
			Repo:  "goerr",
			Path:  "README.md",
		})
		gt.NoError(t, err)
		gt.V(t, contents.File != nil).Equal(true)
		gt.V(t, contents.File.SHA).NotEqual("")
		gt.S(t, contents.File.Content).Contains("goerr")
	})

	t.Run("directory listing", func(t *testing.T) {
		contents, err := client.GetContents(ctx, model.RepositoryDescriptor{
			Owner: "m-mizutani",
			Repo:  "goerr",
		})
		gt.NoError(t, err)
		gt.True(t, len(contents.Entries) > 0)
	})

	t.Run("search", func(t *testing.T) {
		candidates, err := client.SearchRepositories(ctx, "goerr", 3)
		gt.NoError(t, err)
		gt.True(t, len(candidates) <= 3)
	})
}
