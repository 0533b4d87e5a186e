package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobprep-backend/internal/llm"
	"jobprep-backend/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	return config.Config{
		Env:                 "dev",
		ObjectStoreType:     "local",
		LocalStoreDir:       t.TempDir(),
		LLMProvider:         "none",
		LLMTimeout:          time.Second,
		JobsHTTPTimeout:     time.Second,
		AIRequestsPerMinute: 10,
	}
}

func TestBuildDevUsesMemoryFallbacks(t *testing.T) {
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if app.DB != nil || app.Redis != nil {
		t.Fatalf("expected no db or redis in dev without urls")
	}
	if app.Router == nil || app.Resumes == nil || app.Interviews == nil || app.Pins == nil {
		t.Fatalf("expected services wired")
	}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected health 200, got %d", resp.Code)
	}
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"
	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}

func TestBuildLLMWithoutKeyUsesPlaceholder(t *testing.T) {
	tests := []string{"gemini", "openai", "claude", "none"}
	for _, provider := range tests {
		provider := provider
		t.Run(provider, func(t *testing.T) {
			cfg := devConfig(t)
			cfg.LLMProvider = provider
			client, err := buildLLM(context.Background(), cfg)
			if err != nil {
				t.Fatalf("buildLLM: %v", err)
			}
			_, err = client.Complete(context.Background(), "hi")
			if !errors.Is(err, llm.ErrNotImplemented) {
				t.Fatalf("expected placeholder error, got %v", err)
			}
		})
	}
}

func TestBuildLLMWrapsConfiguredProvider(t *testing.T) {
	cfg := devConfig(t)
	cfg.LLMProvider = "openai"
	cfg.OpenAIAPIKey = "sk-test"
	client, err := buildLLM(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildLLM: %v", err)
	}
	inst, ok := client.(*llm.Instrumented)
	if !ok {
		t.Fatalf("expected instrumented client, got %T", client)
	}
	if inst.Provider != "openai" || inst.Next == nil {
		t.Fatalf("unexpected wrapper %+v", inst)
	}
}
