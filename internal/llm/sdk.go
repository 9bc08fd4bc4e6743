package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"go-ideas/internal/config"
	"go-ideas/internal/ideas"
)

// SDKClient completes prompts through the official Anthropic Go SDK. The
// Azure front door authenticates with an `api-key` header instead of the
// SDK's default `x-api-key`, so both are sent explicitly.
type SDKClient struct {
	cfg    config.AnthropicConfig
	client anthropic.Client
}

func NewSDKClient(cfg config.AnthropicConfig) *SDKClient {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHeader("api-key", cfg.APIKey),
		option.WithHeader("anthropic-version", cfg.Version),
		option.WithRequestTimeout(cfg.Timeout()),
	)
	return &SDKClient{cfg: cfg, client: client}
}

func (c *SDKClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &ideas.ConfigurationError{Msg: "ANTHROPIC_API_KEY is not set"}
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: int64(c.cfg.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &ideas.ExternalServiceError{Service: "anthropic", Err: err}
	}

	var texts []string
	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			texts = append(texts, block.Text)
		}
	}
	if len(texts) == 0 {
		return "", &ideas.ExternalServiceError{Service: "anthropic", Err: fmt.Errorf("no text in response")}
	}
	return strings.TrimSpace(strings.Join(texts, "\n")), nil
}
