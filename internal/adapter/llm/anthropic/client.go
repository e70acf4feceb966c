// Package anthropic sends example generation prompts to Claude.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/vocab-backend/internal/config"
)

// Client wraps the Anthropic Messages API.
type Client struct {
	api         anthropic.Client
	model       string
	maxTokens   int
	temperature float64
	log         *slog.Logger
}

// New creates a Client from LLM settings. BaseURL overrides the API host
// (used by tests and proxies).
func New(cfg config.LLMConfig, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:         anthropic.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         logger.With("adapter", "anthropic"),
	}
}

// Generate sends a single user prompt and returns the concatenated text
// blocks of the reply. A reply without text yields "".
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	c.log.DebugContext(ctx, "anthropic request", slog.String("model", c.model))

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(c.maxTokens),
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return b.String(), nil
}
