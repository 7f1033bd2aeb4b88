package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/ia-decifra/internal/domain/ai"
	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
)

const DefaultModel = "gpt-3.5-turbo"

type Client struct {
	*openai.Client
	Model string
}

// NewClient builds a chat-completion client. An empty baseURL keeps the
// public OpenAI endpoint.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Complete sends prompt as a single user message and returns the first
// choice's content. A response without choices yields ai.ErrNoChoices.
func (c *Client) Complete(ctx context.Context, prompt string, params ai.Params) (string, error) {
	model := params.Model
	if model == "" {
		model = c.Model
	}
	if model == "" {
		model = DefaultModel
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	// Reasoning models (o1/o3/o4/gpt-5*) take MaxCompletionTokens and reject a custom temperature
	if isReasoningModel(model) {
		req.MaxCompletionTokens = params.MaxTokens
	} else {
		req.MaxTokens = params.MaxTokens
		req.Temperature = params.Temperature
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", ai.ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func isReasoningModel(model string) bool {
	return strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") ||
		strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5")
}

// classify turns provider failures into upstream errors, keeping the
// provider's own message when it sent one.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		cause := error(fmt.Errorf("failed to create chat completion: %w", err))
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			cause = fmt.Errorf("%w: %w", ai.ErrQuotaExceeded, cause)
		}
		return apperror.Wrap(apperror.Upstream, strings.TrimSpace(apiErr.Message), cause)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return apperror.Wrap(apperror.Upstream, "", fmt.Errorf("%w: %w", ai.ErrQuotaExceeded, err))
	}
	return apperror.Wrap(apperror.Upstream, "", fmt.Errorf("failed to create chat completion: %w", err))
}
