package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

const defaultBaseURL = "https://api.openai.com"

// Client is a minimal chat-completions client.
type Client struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

// NewClient creates a client against the public API endpoint.
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom endpoint.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  resty.New().SetTimeout(15 * time.Second),
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx).SetAuthToken(c.apiKey)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CompleteChat sends the prompt as a single user message and returns the
// trimmed content of the first choice.
func (c *Client) CompleteChat(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	var out chatCompletionResponse

	res, err := c.r(ctx).
		SetBody(chatCompletionRequest{
			Model:     model,
			Messages:  []chatMessage{{Role: "user", Content: prompt}},
			MaxTokens: maxTokens,
		}).
		SetResult(&out).
		Post(c.baseURL + "/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("chat completion: status %d", res.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completion: response has no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
