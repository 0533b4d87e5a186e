package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"jobprep-backend/internal/llm"
)

// DefaultModel is used when LLM_MODEL is unset.
const DefaultModel = "gemini-2.5-flash"

// Client implements llm.Client on top of langchaingo's Google AI model.
type Client struct {
	model llms.Model
}

// NewClient builds a Gemini client. No network call is made here.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	m, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{model: m}, nil
}

// NewFromModel wraps an existing langchaingo model.
func NewFromModel(m llms.Model) *Client {
	return &Client{model: m}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return strings.TrimSpace(out), nil
}

var _ llm.Client = (*Client)(nil)
