package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	googleauth "jobprep-backend/internal/auth"
	"jobprep-backend/internal/interviews"
	"jobprep-backend/internal/jobs"
	"jobprep-backend/internal/llm"
	"jobprep-backend/internal/llm/claude"
	"jobprep-backend/internal/llm/gemini"
	"jobprep-backend/internal/llm/openai"
	"jobprep-backend/internal/pins"
	"jobprep-backend/internal/resumes"
	"jobprep-backend/internal/services/health"
	"jobprep-backend/internal/shared/config"
	"jobprep-backend/internal/shared/server"
	"jobprep-backend/internal/shared/server/middleware"
	"jobprep-backend/internal/shared/storage/db"
	"jobprep-backend/internal/shared/storage/kv"
	"jobprep-backend/internal/shared/storage/object"
	localstore "jobprep-backend/internal/shared/storage/object/local"
	s3store "jobprep-backend/internal/shared/storage/object/s3"
	"jobprep-backend/internal/shared/telemetry"
	"jobprep-backend/internal/users"
)

const defaultOpenAIModel = "gpt-4o-mini"

// App holds shared dependencies and the wired router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Redis  *redis.Client
	Store  object.ObjectStore
	LLM    llm.Client

	Jobs       *jobs.Aggregator
	Resumes    *resumes.Service
	Interviews *interviews.Service
	Pins       *pins.Service
	Users      *users.Service
	GoogleAuth *googleauth.GoogleService
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := buildRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Redis:  redisClient,
		Store:  store,
		LLM:    llmClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		JobsHandler:      jobs.NewHandler(app.Jobs),
		ResumesHandler:   resumes.NewHandler(app.Resumes),
		InterviewHandler: interviews.NewHandler(app.Interviews),
		PinsHandler:      pins.NewHandler(app.Pins),
		UserHandler:      users.NewHandler(app.Users),
		GoogleAuth:       app.GoogleAuth,
		Health:           buildHealth(app),
		RateLimiter:      middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases pooled connections.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		if err = db.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database unavailable", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil, nil
	}
	client, err := kv.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_state", map[string]any{"error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return client, nil
}

// buildLLM picks the provider client. Without a key it degrades to the
// placeholder, so AI routes answer 502 instead of refusing to boot.
func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	var (
		next  llm.Client
		model = cfg.LLMModel
		err   error
	)

	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey != "" {
			if model == "" {
				model = defaultOpenAIModel
			}
			next, err = openai.NewClient(cfg.OpenAIAPIKey, model, cfg.LLMTimeout)
		}
	case "claude":
		if cfg.AnthropicAPIKey != "" {
			next, err = claude.NewClient(cfg.AnthropicAPIKey, model)
		}
	case "gemini":
		if cfg.GeminiAPIKey != "" {
			if model == "" {
				model = gemini.DefaultModel
			}
			next, err = gemini.NewClient(ctx, cfg.GeminiAPIKey, model)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("llm %s: %w", cfg.LLMProvider, err)
	}
	if next == nil {
		telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{"provider": cfg.LLMProvider})
		next = llm.PlaceholderClient{}
	}

	return &llm.Instrumented{
		Provider: cfg.LLMProvider,
		Model:    model,
		Timeout:  cfg.LLMTimeout,
		Next:     next,
	}, nil
}

func buildHealth(app *App) *health.Service {
	checks := map[string]health.Check{}
	if app.DB != nil {
		checks["database"] = app.DB.PingContext
	}
	if app.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return app.Redis.Ping(ctx).Err()
		}
	}
	return health.NewService(checks)
}

func buildServices(app *App) {
	var (
		resumeRepo    resumes.Repo
		interviewRepo interviews.Repo
		pinRepo       pins.Repo
		userRepo      users.Repo
	)
	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		interviewRepo = &interviews.PGRepo{DB: app.DB}
		pinRepo = &pins.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		interviewRepo = interviews.NewMemoryRepo()
		pinRepo = pins.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	var states googleauth.StateStore
	if app.Redis != nil {
		states = googleauth.NewRedisStateStore(app.Redis)
	} else {
		states = googleauth.NewMemoryStateStore()
	}

	httpClient := &http.Client{Timeout: app.Config.JobsHTTPTimeout}
	app.Jobs = jobs.NewAggregator(
		jobs.NewRemoteOK(app.Config.RemoteOKURL, httpClient),
		jobs.NewRemotive(app.Config.RemotiveURL, httpClient),
	)
	app.Resumes = &resumes.Service{
		Store:    app.Store,
		Repo:     resumeRepo,
		Analyzer: &resumes.Analyzer{Client: app.LLM},
	}
	app.Interviews = &interviews.Service{
		Coach: &interviews.Coach{Client: app.LLM},
		Repo:  interviewRepo,
	}
	app.Pins = &pins.Service{Repo: pinRepo}
	app.Users = users.NewService(userRepo)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		states,
		app.Users,
	)
}
