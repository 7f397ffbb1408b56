package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/infra/gemini"
	"github.com/urfave/cli/v3"
)

type Gemini struct {
	apiKey    types.GeminiAPIKey `masq:"secret"`
	modelName string
}

func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key (optional, enables LLM content validation)",
			Category:    "Gemini",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("DOCDIVE_GEMINI_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model for content validation",
			Category:    "Gemini",
			Destination: &x.modelName,
			Sources:     cli.EnvVars("DOCDIVE_GEMINI_MODEL"),
		},
	}
}

func (x *Gemini) Enabled() bool {
	return x.apiKey != ""
}

// NewClassifier builds the Gemini classifier, or returns nil when no API
// key is configured. A nil classifier disables the LLM validation stage.
func (x *Gemini) NewClassifier(ctx context.Context) (*gemini.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []gemini.Option
	if x.modelName != "" {
		options = append(options, gemini.WithModel(x.modelName))
	}

	return gemini.New(ctx, x.apiKey, options...)
}

func (x Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apiKey.len", len(x.apiKey)),
		slog.Any("model", x.modelName),
	)
}
