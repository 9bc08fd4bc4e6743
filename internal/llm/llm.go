package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"go-ideas/internal/config"
	"go-ideas/internal/ideas"
)

// New selects the text-generation client at startup: the SDK-backed client
// when use_sdk is set, otherwise the raw HTTP client.
func New(cfg config.AnthropicConfig) ideas.TextGenerator {
	if cfg.UseSDK {
		return NewSDKClient(cfg)
	}
	return NewHTTPClient(cfg)
}

// Mock returns a canned idea list as JSON text. It stands in for the real
// service in tests and key-less local runs.
type Mock struct{}

func (Mock) Complete(_ context.Context, _ string) (string, error) {
	canned := []ideas.Idea{
		{Title: "Sample campaign", Description: "A placeholder idea from the mock generator."},
		{Title: "Second sample", Description: "Another placeholder idea."},
	}
	raw, err := json.Marshal(canned)
	if err != nil {
		return "", fmt.Errorf("failed to encode mock ideas: %w", err)
	}
	return string(raw), nil
}
