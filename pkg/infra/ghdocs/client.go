// Package ghdocs is the GitHub-backed documentation source. It wraps the
// contents and search APIs behind interfaces.GitHubDocs and spaces out API
// calls with a client-side rate limiter, since unauthenticated GitHub access
// is tightly rate limited.
package ghdocs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/time/rate"
)

const defaultRatePerSec = 2

type Client struct {
	gh      *github.Client
	limiter *rate.Limiter
}

var _ interfaces.GitHubDocs = (*Client)(nil)

type config struct {
	token      types.GitHubToken
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey
	httpClient *http.Client
	ratePerSec float64
}

type Option func(*config)

// WithToken authenticates requests with a personal access token.
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithApp authenticates requests as a GitHub App installation.
func WithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, privateKey types.GitHubAppPrivateKey) Option {
	return func(cfg *config) {
		cfg.appID = appID
		cfg.installID = installID
		cfg.privateKey = privateKey
	}
}

// WithHTTPClient overrides the underlying HTTP client. Mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithRatePerSec overrides the client-side API rate limit.
func WithRatePerSec(rps float64) Option {
	return func(cfg *config) {
		cfg.ratePerSec = rps
	}
}

// New builds a client. With no auth option the client works anonymously,
// which is enough for public repositories.
func New(options ...Option) (*Client, error) {
	cfg := &config{
		ratePerSec: defaultRatePerSec,
	}
	for _, opt := range options {
		opt(cfg)
	}

	var gh *github.Client
	switch {
	case cfg.appID != 0:
		if cfg.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "private key is required for GitHub App auth")
		}
		itr, err := ghinstallation.New(http.DefaultTransport, int64(cfg.appID), int64(cfg.installID), []byte(cfg.privateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport")
		}
		gh = github.NewClient(&http.Client{Transport: itr})

	case cfg.token != "":
		gh = github.NewTokenClient(context.Background(), string(cfg.token))

	default:
		// Anonymous access; cfg.httpClient may be nil, which means
		// http.DefaultClient.
		gh = github.NewClient(cfg.httpClient)
	}

	return &Client{
		gh:      gh,
		limiter: rate.NewLimiter(rate.Limit(cfg.ratePerSec), 1),
	}, nil
}

// GetContents resolves the descriptor's path via the repository contents API.
// The remote decides whether the path is a file or a directory; the result
// carries exactly one of the two.
func (x *Client) GetContents(ctx context.Context, desc model.RepositoryDescriptor) (*model.RemoteContents, error) {
	if err := x.limiter.Wait(ctx); err != nil {
		return nil, goerr.Wrap(err, "rate limiter interrupted")
	}

	opt := &github.RepositoryContentGetOptions{
		Ref: string(desc.Branch),
	}

	file, entries, resp, err := x.gh.Repositories.GetContents(ctx, string(desc.Owner), string(desc.Repo), desc.Path, opt)
	if err != nil {
		if resp != nil {
			return nil, goerr.Wrap(err, "failed to get repository contents",
				goerr.V("descriptor", desc.String()),
				goerr.V("status", resp.StatusCode),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository contents", goerr.V("descriptor", desc.String()))
	}

	if file != nil {
		content, err := file.GetContent()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode file content", goerr.V("descriptor", desc.String()))
		}
		return &model.RemoteContents{
			File: &model.RemoteFile{
				Content: content,
				SHA:     file.GetSHA(),
			},
		}, nil
	}

	remote := make([]*model.RemoteEntry, 0, len(entries))
	for _, entry := range entries {
		remote = append(remote, &model.RemoteEntry{
			Type: model.RemoteEntryType(entry.GetType()),
			Name: entry.GetName(),
			Path: entry.GetPath(),
		})
	}

	logging.From(ctx).Debug("listed remote directory",
		slog.String("descriptor", desc.String()),
		slog.Int("entries", len(remote)),
	)

	return &model.RemoteContents{Entries: remote}, nil
}

// SearchRepositories queries the repository search API ordered by stars
// descending.
func (x *Client) SearchRepositories(ctx context.Context, query string, limit int) ([]*model.RepoCandidate, error) {
	if err := x.limiter.Wait(ctx); err != nil {
		return nil, goerr.Wrap(err, "rate limiter interrupted")
	}

	opt := &github.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: github.ListOptions{
			PerPage: limit,
		},
	}

	result, _, err := x.gh.Search.Repositories(ctx, query, opt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search repositories", goerr.V("query", query))
	}

	candidates := make([]*model.RepoCandidate, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		candidates = append(candidates, &model.RepoCandidate{
			Owner:       repo.GetOwner().GetLogin(),
			Repo:        repo.GetName(),
			Description: repo.GetDescription(),
			Stars:       repo.GetStargazersCount(),
		})
		if len(candidates) >= limit {
			break
		}
	}

	return candidates, nil
}
