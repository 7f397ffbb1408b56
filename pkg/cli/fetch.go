package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/docdive/pkg/cli/config"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func fetchCommand() *cli.Command {
	var (
		library  string
		owner    string
		repo     string
		docPath  string
		branch   string
		query    string
		validate bool

		githubCfg config.GitHub
		geminiCfg config.Gemini
		cacheCfg  config.Cache
	)

	fetchFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "library",
			Usage:       "Registered library name (see 'docdive list')",
			Destination: &library,
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner (alternative to --library)",
			Destination: &owner,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Destination: &repo,
		},
		&cli.StringFlag{
			Name:        "path",
			Usage:       "File or directory path inside the repository",
			Destination: &docPath,
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch to fetch from",
			Destination: &branch,
		},
		&cli.StringFlag{
			Name:        "query",
			Usage:       "Topic to narrow the result to matching sections",
			Aliases:     []string{"q"},
			Destination: &query,
		},
		&cli.BoolFlag{
			Name:        "validate",
			Usage:       "Run the security validator on the fetched content",
			Destination: &validate,
		},
	}

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Fetch documentation from a GitHub repository",
		Flags: slice.Flatten(
			fetchFlags,
			githubCfg.Flags(),
			geminiCfg.Flags(),
			cacheCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := buildUseCase(ctx, &githubCfg, &geminiCfg, &cacheCfg)
			if err != nil {
				return err
			}
			defer closer()

			input := &model.FetchDocsInput{
				Library:  library,
				Query:    query,
				Validate: validate,
			}
			if owner != "" {
				input.Descriptor = &model.RepositoryDescriptor{
					Owner:  types.Owner(owner),
					Repo:   types.RepoName(repo),
					Path:   docPath,
					Branch: types.BranchName(branch),
				}
			}

			out, err := uc.FetchDocs(ctx, input)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("fetched docs",
				"source", out.Descriptor.String(),
				"cached", out.Cached,
				"size", len(out.Content),
			)
			if out.Validation != nil {
				logging.From(ctx).Info("security validation",
					"safe", out.Validation.Safe,
					"confidence", out.Validation.Confidence,
					"reason", out.Validation.Reason,
				)
			}

			fmt.Fprintln(os.Stdout, out.Content)
			return nil
		},
	}
}
