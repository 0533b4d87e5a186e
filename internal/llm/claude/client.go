package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"jobprep-backend/internal/llm"
)

const maxTokens = 2048

// Client implements llm.Client with the Anthropic Messages API.
type Client struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClient builds a Claude client. Extra request options (base URL, HTTP client) are appended.
func NewClient(apiKey, model string, opts ...option.RequestOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	m := anthropic.ModelClaude3_7SonnetLatest
	if strings.TrimSpace(model) != "" {
		m = anthropic.Model(strings.TrimSpace(model))
	}
	all := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &Client{client: anthropic.NewClient(all...), model: m}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0.7),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("claude messages: %w", err)
	}

	var b strings.Builder
	for _, content := range response.Content {
		if content.Type != "text" {
			continue
		}
		b.WriteString(content.AsText().Text)
	}
	return strings.TrimSpace(b.String()), nil
}

var _ llm.Client = (*Client)(nil)
