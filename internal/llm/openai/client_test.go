package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestIsGPT5(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt5", model: "gpt-5", want: true},
		{name: "gpt5 variant", model: "gpt-5-mini", want: true},
		{name: "gpt5 uppercase", model: " GPT-5o ", want: true},
		{name: "gpt4", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := isGPT5(tt.model); got != tt.want {
				t.Fatalf("isGPT5(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestCompleteSendsPromptAndReadsFirstChoice(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer auth")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  hello  "}}]}`))
	}))
	defer srv.Close()
	withAPIURL(t, srv.URL)

	c, err := NewClient("key", "gpt-4o", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	out, err := c.Complete(context.Background(), "ask")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "hello" {
		t.Fatalf("unexpected output %q", out)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "ask" || got.Messages[0].Role != "user" {
		t.Fatalf("unexpected messages %+v", got.Messages)
	}
	if got.Temperature == nil {
		t.Fatalf("expected temperature for gpt-4o")
	}
}

func TestCompleteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "api error", status: http.StatusBadRequest, body: `{"error":{"message":"bad","type":"invalid_request_error"}}`, want: "openai error: bad"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, want: "missing choices"},
		{name: "empty content", status: http.StatusOK, body: `{"choices":[{"message":{"content":" "}}]}`, want: "empty content"},
		{name: "non json status", status: http.StatusBadGateway, body: `upstream down`, want: "status 502"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()
			withAPIURL(t, srv.URL)

			c, err := NewClient("key", "gpt-5-mini", time.Second)
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			_, err = c.Complete(context.Background(), "ask")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestNewClientRequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "gpt-4o", 0); err == nil {
		t.Fatalf("expected missing key error")
	}
	if _, err := NewClient("key", " ", 0); err == nil {
		t.Fatalf("expected missing model error")
	}
}

func withAPIURL(t *testing.T, url string) {
	t.Helper()
	prev := apiURL
	apiURL = url
	t.Cleanup(func() { apiURL = prev })
}
