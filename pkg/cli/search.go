package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/docdive/pkg/cli/config"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func searchCommand() *cli.Command {
	var (
		limit int64

		githubCfg config.GitHub
		geminiCfg config.Gemini
		cacheCfg  config.Cache
	)

	searchFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "limit",
			Usage:       "Max number of results",
			Aliases:     []string{"n"},
			Value:       10,
			Destination: &limit,
		},
	}

	return &cli.Command{
		Name:      "search",
		Usage:     "Search GitHub repositories by keyword, ordered by stars",
		ArgsUsage: "<query>",
		Flags: slice.Flatten(
			searchFlags,
			githubCfg.Flags(),
			geminiCfg.Flags(),
			cacheCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			query := c.Args().First()
			if query == "" {
				return cli.Exit("query argument is required", 1)
			}

			uc, closer, err := buildUseCase(ctx, &githubCfg, &geminiCfg, &cacheCfg)
			if err != nil {
				return err
			}
			defer closer()

			repos := uc.SearchRepos(ctx, query, int(limit))
			logging.From(ctx).Info("search finished", "query", query, "hits", len(repos))

			for _, r := range repos {
				fmt.Fprintf(os.Stdout, "%s/%s\t%s\n", r.Owner, r.Repo, r.Path)
			}
			return nil
		},
	}
}
