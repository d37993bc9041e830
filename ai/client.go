// Package ai wraps a single chat-completion call against a Groq
// OpenAI-compatible endpoint. The augmentation boundary never raises: a
// failed call yields an "Error: <cause>" payload that callers store as
// ordinary data, so task writes succeed at the storage level even when
// the upstream is down.
package ai

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Config holds the fixed parameters of the completion call.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// DefaultConfig returns the Groq connection defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://api.groq.com/openai/v1",
		Model:       "llama3-8b-8192",
		Temperature: 0.7,
	}
}

// Client issues chat completions with a fixed model and temperature.
// No retries, no timeout beyond the transport default.
type Client struct {
	llm         openai.Client
	model       string
	temperature float64
}

// New builds a client from cfg. Extra request options (custom HTTP
// client, retries) are passed through to the underlying SDK.
func New(cfg Config, opts ...option.RequestOption) *Client {
	reqOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &Client{
		llm:         openai.NewClient(reqOpts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Complete sends prompt as a single user message and returns the
// completion text. On any failure (network, auth, malformed response)
// it returns "Error: <cause>" instead of an error.
func (c *Client) Complete(ctx context.Context, prompt string) string {
	resp, err := c.llm.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "Error: completion returned no choices"
	}
	return resp.Choices[0].Message.Content
}
