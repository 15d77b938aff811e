// Package assistant talks to an OpenAI compatible chat completions API to
// break goals into tasks, find resources and reflect on finished sessions.
// Every service falls back to fixed content when the API is unavailable.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4"

	completionsPath = "/chat/completions"
	maxRetries      = 3
	initialDelay    = 500 * time.Millisecond
)

// Completer sends a system and user prompt and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, req Prompt) (string, error)
}

// Prompt is a single chat exchange.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Client is a chat completions API client.
type Client struct {
	http    *http.Client
	apiKey  string
	baseURL string
	model   string
	delay   time.Duration
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewClient returns a client. Empty baseURL and model select the defaults.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if model == "" {
		model = DefaultModel
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: timeout},
		delay:   initialDelay,
	}
}

// Configured reports whether the client has credentials.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Complete sends the prompt, retrying on rate limits and server errors.
func (c *Client) Complete(ctx context.Context, p Prompt) (string, error) {
	if !c.Configured() {
		return "", errNoAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.delay << (attempt - 1)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, retry, err := c.do(ctx, body)
		if err == nil {
			return text, nil
		}

		lastErr = err

		if !retry {
			return "", err
		}
	}

	return "", errMaxRetries.Fmt(maxRetries).Wrap(lastErr)
}

func (c *Client) do(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+completionsPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode >= http.StatusInternalServerError

		return "", retry, errHTTPStatus.Fmt(resp.StatusCode, string(respBody))
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", false, fmt.Errorf("decode response: %w", err)
	}

	if len(out.Choices) == 0 ||
		strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", false, errEmptyResponse
	}

	return out.Choices[0].Message.Content, false, nil
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	if idx := strings.Index(cleaned, "\n"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}

	if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
		cleaned = cleaned[:idx]
	}

	return strings.TrimSpace(cleaned)
}
