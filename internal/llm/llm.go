package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobprep-backend/internal/shared/metrics"
	"jobprep-backend/internal/shared/telemetry"
)

// Client sends a single free-text prompt to a model and returns its reply.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// ErrEmptyResponse is returned when a provider answers with no text.
var ErrEmptyResponse = errors.New("empty model response")

// PlaceholderClient stands in when no provider is configured.
type PlaceholderClient struct{}

// Complete returns ErrNotImplemented.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

func (f ClientFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Instrumented wraps a provider with a per-call timeout, metrics and logs.
type Instrumented struct {
	Provider string
	Model    string
	Timeout  time.Duration
	Next     Client
}

func (c *Instrumented) Complete(ctx context.Context, prompt string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := c.Next.Complete(ctx, prompt)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveLLMDurationMs(elapsed)

	fields := map[string]any{
		"provider":     c.Provider,
		"model":        c.Model,
		"duration_ms":  elapsed,
		"prompt_chars": len(prompt),
	}
	if err != nil {
		metrics.IncLLMFailure()
		fields["error"] = err.Error()
		telemetry.Error("llm.call_failed", fields)
		return "", fmt.Errorf("%s: %w", c.Provider, err)
	}
	if strings.TrimSpace(out) == "" {
		metrics.IncLLMFailure()
		telemetry.Error("llm.call_failed", fields)
		return "", fmt.Errorf("%s: %w", c.Provider, ErrEmptyResponse)
	}

	metrics.IncLLMCall()
	fields["response_chars"] = len(out)
	telemetry.Info("llm.call", fields)
	return out, nil
}
