// ABOUTME: OpenAI chat completion client implementing the ChatModel interface
// ABOUTME: Wraps provider failures in the domain's external API error type

package openai

import (
	"context"

	gopenai "github.com/sashabaranov/go-openai"

	coreerrors "lexassist-api/core/errors"
)

const providerName = "OpenAI"

// Config holds provider connection settings
type Config struct {
	// APIKey authenticates against the OpenAI API
	APIKey string

	// Model is the chat model to use; empty selects gpt-3.5-turbo
	Model string
}

// Client implements interfaces.ChatModel using the OpenAI chat completion API
type Client struct {
	api   *gopenai.Client
	model string
}

// NewClient creates a new OpenAI chat client
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = gopenai.GPT3Dot5Turbo
	}
	return &Client{
		api:   gopenai.NewClient(cfg.APIKey),
		model: model,
	}
}

// Complete submits one system and one user message and returns the answer text
func (c *Client) Complete(ctx context.Context, system string, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: system},
			{Role: gopenai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: err.Error(),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: "completion returned no choices",
		}
	}

	return resp.Choices[0].Message.Content, nil
}
