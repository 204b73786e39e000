package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopbot/internal/domain"
	"github.com/kailas-cloud/shopbot/internal/metrics"
)

// ChatModel is a chat-completion provider using an OpenAI-compatible API.
// Decoding is fully deterministic: temperature is pinned to 0 so the same
// message always yields the same reply.
type ChatModel struct {
	client   *openai.Client
	model    string
	provider string
	logger   *zap.Logger
}

// NewChatModel creates an OpenAI-compatible chat-completion provider.
func NewChatModel(cfg *Config) *ChatModel {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &ChatModel{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Complete implements domain.ChatModel. Returns the first choice's content.
// Failures are wrapped with domain.ErrUpstreamCall; the caller decides whether
// to degrade.
func (c *ChatModel) Complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
	}

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues(c.provider, c.model, "error").Inc()
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.ChatRequestsTotal.WithLabelValues(c.provider, c.model, "error").Inc()
		return "", fmt.Errorf("empty chat response: %w", domain.ErrUpstreamCall)
	}

	metrics.ChatRequestsTotal.WithLabelValues(c.provider, c.model, "success").Inc()
	metrics.ChatRequestDuration.WithLabelValues(c.provider, c.model).Observe(duration.Seconds())

	return resp.Choices[0].Message.Content, nil
}

var _ domain.ChatModel = (*ChatModel)(nil)
