package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"go-ideas/internal/config"
	"go-ideas/internal/ideas"
)

// HTTPClient talks to the Anthropic Messages API with a plain HTTP POST,
// for deployments that skip the SDK. Azure fronts the API with an `api-key`
// header (not `x-api-key`) plus a required `anthropic-version`.
type HTTPClient struct {
	cfg        config.AnthropicConfig
	httpClient *http.Client
}

func NewHTTPClient(cfg config.AnthropicConfig) *HTTPClient {
	return &HTTPClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends a single-user-message request and returns the text blocks
// of the response joined in order.
func (c *HTTPClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &ideas.ConfigurationError{Msg: "ANTHROPIC_API_KEY is not set"}
	}

	payload := messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", c.cfg.Version)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ideas.ExternalServiceError{Service: "anthropic", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return "", &ideas.ExternalServiceError{
			Service: "anthropic",
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 200)),
		}
	}

	var parsed messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &ideas.ExternalServiceError{Service: "anthropic", Err: fmt.Errorf("invalid response body: %w", err)}
	}

	texts := make([]string, 0, len(parsed.Content))
	for _, block := range parsed.Content {
		if block.Type == "text" && block.Text != "" {
			texts = append(texts, block.Text)
		}
	}
	if len(texts) == 0 {
		return "", &ideas.ExternalServiceError{Service: "anthropic", Err: fmt.Errorf("no text in response")}
	}

	out := strings.TrimSpace(strings.Join(texts, "\n"))
	log.Printf("[LLM] anthropic responded in %s (%d chars)", time.Since(start).Round(time.Millisecond), len(out))
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
