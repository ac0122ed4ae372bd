package script

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/internal/types"
)

// Generator turns an aggregate document into a podcast narration script
// via an OpenAI-compatible chat-completions endpoint. The aggregation
// core treats this as a black box: text in, text out, fallible, retried
// here rather than by the caller.
type Generator struct {
	cfg    config.ScriptConfig
	client openai.Client
	logger *slog.Logger
}

// New creates a Generator from script configuration.
func New(cfg config.ScriptConfig, logger *slog.Logger) *Generator {
	opts := []option.RequestOption{}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		cfg:    cfg,
		client: openai.NewClient(opts...),
		logger: logger.With("component", "script_generator"),
	}
}

// Generate produces a narration script for the given aggregate document,
// topic, and covered timeframe. Both transport failures and quality
// failures consume an attempt; after max_retries the last cause is
// wrapped in *types.ScriptError.
func (g *Generator) Generate(ctx context.Context, document, topic string, timeframeDays int) (string, error) {
	if strings.TrimSpace(document) == "" {
		return "", types.ErrEmptyDocument
	}

	prompt := BuildPrompt(document, topic, timeframeDays, g.cfg.TargetWords)
	maxAttempts := g.cfg.MaxRetries
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		g.logger.Info("generating script", "attempt", attempt, "max_attempts", maxAttempts)

		reqCtx := ctx
		if g.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
			defer cancel()
		}

		completion, err := g.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model: g.cfg.Model,
		})
		if err != nil {
			lastErr = err
			g.logger.Warn("script generation failed", "attempt", attempt, "error", err)
			continue
		}
		if len(completion.Choices) == 0 {
			lastErr = fmt.Errorf("model returned no choices")
			continue
		}

		generated := strings.TrimSpace(completion.Choices[0].Message.Content)
		if err := Validate(generated, g.cfg.MinWords); err != nil {
			lastErr = err
			g.logger.Warn("script quality check failed", "attempt", attempt, "error", err)
			continue
		}

		g.logger.Info("script generated",
			"words", len(strings.Fields(generated)),
			"estimated_minutes", fmt.Sprintf("%.1f", EstimateDuration(generated)),
		)
		return generated, nil
	}

	return "", &types.ScriptError{Attempts: maxAttempts, Err: lastErr}
}

// EstimateDuration estimates speaking time in minutes at ~150 words per
// minute.
func EstimateDuration(script string) float64 {
	return float64(len(strings.Fields(script))) / 150.0
}
