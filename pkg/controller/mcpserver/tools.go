package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/utils/errutil"
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument. JSON numbers decode as float64.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

func boolArg(req mcp.CallToolRequest, key string) bool {
	v, ok := req.GetArguments()[key].(bool)
	return ok && v
}

// FetchDocsTool handles the fetch_docs MCP tool.
type FetchDocsTool struct {
	uc interfaces.UseCase
}

// NewFetchDocsTool creates a FetchDocsTool.
func NewFetchDocsTool(uc interfaces.UseCase) *FetchDocsTool {
	return &FetchDocsTool{uc: uc}
}

func (t *FetchDocsTool) Definition() mcp.Tool {
	return mcp.NewTool("fetch_docs",
		mcp.WithDescription(
			"Fetch markdown documentation from a GitHub repository. Accepts either a "+
				"registered library name or an explicit owner/repo pair. Results are cached "+
				"locally so repeated calls are cheap.",
		),
		mcp.WithString("library",
			mcp.Description("Registered library name, e.g. 'react'. Use list_libraries to see them."),
		),
		mcp.WithString("owner",
			mcp.Description("Repository owner. Required when 'library' is not given."),
		),
		mcp.WithString("repo",
			mcp.Description("Repository name. Required when 'library' is not given."),
		),
		mcp.WithString("path",
			mcp.Description("File or directory path inside the repository. Directories are aggregated."),
		),
		mcp.WithString("branch",
			mcp.Description("Branch to fetch from (default branch when omitted)."),
		),
		mcp.WithString("query",
			mcp.Description("Topic to narrow the result to matching heading sections (min 5 chars)."),
		),
		mcp.WithBoolean("validate",
			mcp.Description("Run the content through the security validator and attach the verdict."),
		),
	)
}

func (t *FetchDocsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := &model.FetchDocsInput{
		Library:  req.GetString("library", ""),
		Query:    req.GetString("query", ""),
		Validate: boolArg(req, "validate"),
	}
	if owner := req.GetString("owner", ""); owner != "" {
		input.Descriptor = &model.RepositoryDescriptor{
			Owner:  types.Owner(owner),
			Repo:   types.RepoName(req.GetString("repo", "")),
			Path:   req.GetString("path", ""),
			Branch: types.BranchName(req.GetString("branch", "")),
		}
	}

	out, err := t.uc.FetchDocs(ctx, input)
	if err != nil {
		if !errors.Is(err, types.ErrLibraryNotFound) &&
			!errors.Is(err, types.ErrInvalidOption) &&
			!errors.Is(err, types.ErrValidationFailed) {
			errutil.HandleError(ctx, "fail to fetch docs", err)
		}
		return mcp.NewToolResultError(fmt.Sprintf("fetch failed: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s (cached: %v)\n", out.Descriptor.String(), out.Cached)
	if out.Validation != nil {
		fmt.Fprintf(&b, "Security: safe=%v confidence=%.2f", out.Validation.Safe, out.Validation.Confidence)
		if out.Validation.Reason != "" {
			fmt.Fprintf(&b, " (%s)", out.Validation.Reason)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(out.Content)

	return mcp.NewToolResultText(b.String()), nil
}

// SearchReposTool handles the search_repos MCP tool.
type SearchReposTool struct {
	uc interfaces.UseCase
}

// NewSearchReposTool creates a SearchReposTool.
func NewSearchReposTool(uc interfaces.UseCase) *SearchReposTool {
	return &SearchReposTool{uc: uc}
}

func (t *SearchReposTool) Definition() mcp.Tool {
	return mcp.NewTool("search_repos",
		mcp.WithDescription(
			"Search GitHub for repositories matching a query, ordered by star count. "+
				"Each result can be passed to fetch_docs as owner/repo.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search keywords, e.g. 'http client golang'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: 10)"),
		),
	)
}

func (t *SearchReposTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	limit := intArg(req, "limit", 0)

	repos := t.uc.SearchRepos(ctx, query, limit)
	if len(repos) == 0 {
		return mcp.NewToolResultText("No repositories found."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d repositories:\n\n", len(repos))
	for i, r := range repos {
		fmt.Fprintf(&b, "[%d] %s/%s (path: %s)\n", i+1, r.Owner, r.Repo, r.Path)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ListLibrariesTool handles the list_libraries MCP tool.
type ListLibrariesTool struct {
	uc interfaces.UseCase
}

// NewListLibrariesTool creates a ListLibrariesTool.
func NewListLibrariesTool(uc interfaces.UseCase) *ListLibrariesTool {
	return &ListLibrariesTool{uc: uc}
}

func (t *ListLibrariesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_libraries",
		mcp.WithDescription("List the registered documentation libraries with their categories."),
	)
}

func (t *ListLibrariesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	libs := t.uc.ListLibraries()

	var b strings.Builder
	fmt.Fprintf(&b, "%d libraries registered:\n\n", len(libs))
	for _, lib := range libs {
		fmt.Fprintf(&b, "- %s [%s]", lib.Name, lib.Category)
		if lib.Description != "" {
			fmt.Fprintf(&b, ": %s", lib.Description)
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

// AddLibraryTool handles the add_library MCP tool.
type AddLibraryTool struct {
	uc interfaces.UseCase
}

// NewAddLibraryTool creates an AddLibraryTool.
func NewAddLibraryTool(uc interfaces.UseCase) *AddLibraryTool {
	return &AddLibraryTool{uc: uc}
}

func (t *AddLibraryTool) Definition() mcp.Tool {
	return mcp.NewTool("add_library",
		mcp.WithDescription(
			"Register a custom library so its documentation can be fetched by name.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name to register the library under"),
		),
		mcp.WithString("owner",
			mcp.Required(),
			mcp.Description("Repository owner"),
		),
		mcp.WithString("repo",
			mcp.Required(),
			mcp.Description("Repository name"),
		),
		mcp.WithString("path",
			mcp.Description("Documentation path inside the repository"),
		),
		mcp.WithString("branch",
			mcp.Description("Branch to fetch from"),
		),
	)
}

func (t *AddLibraryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	desc := model.RepositoryDescriptor{
		Owner:  types.Owner(req.GetString("owner", "")),
		Repo:   types.RepoName(req.GetString("repo", "")),
		Path:   req.GetString("path", ""),
		Branch: types.BranchName(req.GetString("branch", "")),
	}
	if err := desc.Validate(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repository: %v", err)), nil
	}

	t.uc.AddLibrary(name, desc)
	return mcp.NewToolResultText(fmt.Sprintf("Registered %q -> %s", name, desc.String())), nil
}
