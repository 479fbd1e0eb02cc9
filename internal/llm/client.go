// Package llm is a thin proxy client for an OpenAI-compatible
// chat-completions API. It never touches the job or document stores; it
// returns the model's text and the caller parses it as it sees fit.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Client calls a chat-completions endpoint for one-shot prompts
type Client struct {
	baseURL  string
	apiKey   string
	registry *Registry
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates a new proxy client
func NewClient(baseURL, apiKey string, registry *Registry, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		registry: registry,
		http:     &http.Client{Timeout: 60 * time.Second},
		logger:   logger,
	}
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends prompt as a single user message using the model profile
// for task, and returns the model's text.
func (c *Client) Complete(ctx context.Context, task, prompt string) (string, error) {
	profile, err := c.registry.Profile(task)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model:     profile.Model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: profile.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if out.Error != nil {
		return "", fmt.Errorf("completion failed: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices (status %d)", resp.StatusCode)
	}

	c.logger.Debug("completion finished",
		"task", task,
		"model", profile.Model,
		"elapsed", time.Since(start),
	)

	return out.Choices[0].Message.Content, nil
}
