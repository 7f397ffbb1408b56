package cli

import (
	"context"

	"github.com/m-mizutani/docdive/pkg/cli/config"
	"github.com/m-mizutani/docdive/pkg/infra"
	"github.com/m-mizutani/docdive/pkg/usecase"
)

// buildUseCase assembles the use case from the command configs. The
// returned closer releases the cache backend and is always non-nil.
func buildUseCase(ctx context.Context, githubCfg *config.GitHub, geminiCfg *config.Gemini, cacheCfg *config.Cache) (*usecase.UseCase, func(), error) {
	ghClient, err := githubCfg.New()
	if err != nil {
		return nil, nil, err
	}

	store, closer, err := cacheCfg.NewStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHubDocs(ghClient),
		infra.WithCacheStore(store),
	}

	if classifier, err := geminiCfg.NewClassifier(ctx); err != nil {
		closer()
		return nil, nil, err
	} else if classifier != nil {
		infraOptions = append(infraOptions, infra.WithClassifier(classifier))
	}

	ucOptions := []usecase.Option{}
	if ttl := cacheCfg.TTL(); ttl > 0 {
		ucOptions = append(ucOptions, usecase.WithCacheTTL(ttl))
	}

	return usecase.New(infra.New(infraOptions...), ucOptions...), closer, nil
}
