package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
)

// chatClient implements Client against an OpenAI-compatible chat-completions
// endpoint. Both supported providers speak this envelope.
type chatClient struct {
	httpClient *http.Client
	endpoint   string
	headers    map[string]string
	model      string
}

func newChatClient(endpoint, model string, headers map[string]string, timeout time.Duration) *chatClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &chatClient{
		endpoint: endpoint,
		model:    model,
		headers:  headers,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Classify sends the prompt as a single user message and returns the content
// of the first completion choice.
func (c *chatClient) Classify(ctx context.Context, prompt string) (string, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classification API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidResponse, err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices returned", common.ErrInvalidResponse)
	}

	return response.Choices[0].Message.Content, nil
}

// chatResponse is the subset of the chat-completions envelope we consume.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
}
