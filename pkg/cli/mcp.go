package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/docdive/pkg/cli/config"
	"github.com/m-mizutani/docdive/pkg/controller/mcpserver"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func mcpCommand() *cli.Command {
	var (
		githubCfg config.GitHub
		geminiCfg config.Gemini
		cacheCfg  config.Cache
		sentryCfg config.Sentry
	)

	return &cli.Command{
		Name:  "mcp",
		Usage: "MCP server mode (stdio transport)",
		Flags: slice.Flatten(
			githubCfg.Flags(),
			geminiCfg.Flags(),
			cacheCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			// MCP clients own stdout, logs must not mix into the transport
			logging.Default().Info("starting mcp server",
				slog.Any("GitHub", githubCfg),
				slog.Any("Gemini", geminiCfg),
				slog.Any("Cache", cacheCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			uc, closer, err := buildUseCase(ctx, &githubCfg, &geminiCfg, &cacheCfg)
			if err != nil {
				return err
			}
			defer closer()

			if err := mcpserver.Serve(ctx, uc); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
