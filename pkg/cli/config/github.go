package config

import (
	"log/slog"

	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/infra/ghdocs"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	token      types.GitHubToken         `masq:"secret"`
	ratePerSec float64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (optional, for App auth)",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("DOCDIVE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App Installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("DOCDIVE_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("DOCDIVE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (optional, raises rate limits)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("DOCDIVE_GITHUB_TOKEN"),
		},
		&cli.FloatFlag{
			Name:        "github-rate",
			Usage:       "Max GitHub API requests per second",
			Category:    "GitHub",
			Destination: &x.ratePerSec,
			Sources:     cli.EnvVars("DOCDIVE_GITHUB_RATE"),
		},
	}
}

func (x GitHub) New() (*ghdocs.Client, error) {
	var options []ghdocs.Option

	switch {
	case x.appID != 0:
		options = append(options, ghdocs.WithApp(x.appID, x.installID, x.privateKey))
	case x.token != "":
		options = append(options, ghdocs.WithToken(x.token))
	}
	if x.ratePerSec > 0 {
		options = append(options, ghdocs.WithRatePerSec(x.ratePerSec))
	}

	return ghdocs.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.Int("token.len", len(x.token)),
		slog.Float64("ratePerSec", x.ratePerSec),
	)
}
