// Package openai sends example generation prompts to an OpenAI-compatible
// chat completions endpoint.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/vocab-backend/internal/config"
)

// Client wraps the chat completions API.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	log         *slog.Logger
}

// New creates a Client from LLM settings.
func New(cfg config.LLMConfig, logger *slog.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		log:         logger.With("adapter", "openai"),
	}
}

// Generate sends a single user prompt and returns the first choice's text.
// A reply without choices yields "".
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	c.log.DebugContext(ctx, "openai request", slog.String("model", c.model))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: c.maxTokens,
		Temperature:         c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	c.log.DebugContext(ctx, "openai response", slog.String("finish_reason", string(resp.Choices[0].FinishReason)))
	return resp.Choices[0].Message.Content, nil
}
