package mcpserver_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/docdive/pkg/controller/mcpserver"
	"github.com/m-mizutani/docdive/pkg/domain/mock"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/infra"
	"github.com/m-mizutani/docdive/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/mark3labs/mcp-go/mcp"
)

var ctx = context.Background()

func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	gt.A(t, r.Content).Longer(0)
	tc, ok := r.Content[0].(mcp.TextContent)
	gt.True(t, ok)
	return tc.Text
}

func TestFetchDocsTool(t *testing.T) {
	uc := &mock.UseCaseMock{
		FetchDocsFunc: func(ctx context.Context, input *model.FetchDocsInput) (*model.FetchDocsOutput, error) {
			gt.V(t, input.Library).Equal("react")
			gt.True(t, input.Validate)
			return &model.FetchDocsOutput{
				Descriptor: model.RepositoryDescriptor{Owner: "reactjs", Repo: "react.dev", Path: "src/content"},
				Content:    "# React\n\nquick start",
				Cached:     true,
				Validation: &model.ValidationResult{Safe: true, Confidence: 0.7},
			}, nil
		},
	}

	tool := mcpserver.NewFetchDocsTool(uc)
	gt.V(t, tool.Definition().Name).Equal("fetch_docs")

	res := gt.R1(tool.Handle(ctx, makeReq(map[string]any{
		"library":  "react",
		"validate": true,
	}))).NoError(t)
	gt.False(t, res.IsError)

	text := resultText(t, res)
	gt.S(t, text).Contains("quick start")
	gt.S(t, text).Contains("cached: true")
	gt.S(t, text).Contains("safe=true")
}

func TestFetchDocsToolError(t *testing.T) {
	uc := &mock.UseCaseMock{
		FetchDocsFunc: func(ctx context.Context, input *model.FetchDocsInput) (*model.FetchDocsOutput, error) {
			return nil, goerr.Wrap(types.ErrLibraryNotFound, "no such library")
		},
	}

	tool := mcpserver.NewFetchDocsTool(uc)
	res := gt.R1(tool.Handle(ctx, makeReq(map[string]any{
		"library": "nope",
	}))).NoError(t)
	gt.True(t, res.IsError)
}

func TestSearchReposTool(t *testing.T) {
	uc := &mock.UseCaseMock{
		SearchReposFunc: func(ctx context.Context, query string, limit int) []model.RepositoryDescriptor {
			gt.V(t, limit).Equal(5)
			return []model.RepositoryDescriptor{
				{Owner: "acme", Repo: "widgets", Path: "README.md"},
			}
		},
	}

	tool := mcpserver.NewSearchReposTool(uc)
	res := gt.R1(tool.Handle(ctx, makeReq(map[string]any{
		"query": "widget toolkit",
		"limit": float64(5),
	}))).NoError(t)
	gt.False(t, res.IsError)
	gt.S(t, resultText(t, res)).Contains("acme/widgets")

	t.Run("missing query", func(t *testing.T) {
		res := gt.R1(tool.Handle(ctx, makeReq(map[string]any{}))).NoError(t)
		gt.True(t, res.IsError)
	})

	t.Run("no results", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SearchReposFunc: func(ctx context.Context, query string, limit int) []model.RepositoryDescriptor {
				return []model.RepositoryDescriptor{}
			},
		}
		tool := mcpserver.NewSearchReposTool(uc)
		res := gt.R1(tool.Handle(ctx, makeReq(map[string]any{"query": "nothing"}))).NoError(t)
		gt.False(t, res.IsError)
		gt.S(t, resultText(t, res)).Contains("No repositories")
	})
}

func TestLibraryTools(t *testing.T) {
	uc := usecase.New(infra.New())

	list := mcpserver.NewListLibrariesTool(uc)
	res := gt.R1(list.Handle(ctx, makeReq(nil))).NoError(t)
	gt.S(t, resultText(t, res)).Contains("react")

	add := mcpserver.NewAddLibraryTool(uc)
	res = gt.R1(add.Handle(ctx, makeReq(map[string]any{
		"name":  "acme-widgets",
		"owner": "acme",
		"repo":  "widgets",
		"path":  "docs",
	}))).NoError(t)
	gt.False(t, res.IsError)

	res = gt.R1(list.Handle(ctx, makeReq(nil))).NoError(t)
	gt.S(t, resultText(t, res)).Contains("acme-widgets")

	t.Run("missing owner", func(t *testing.T) {
		res := gt.R1(add.Handle(ctx, makeReq(map[string]any{
			"name": "broken",
		}))).NoError(t)
		gt.True(t, res.IsError)
	})
}
