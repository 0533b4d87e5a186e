package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "jobprep-backend/internal/auth"
	"jobprep-backend/internal/interviews"
	"jobprep-backend/internal/jobs"
	"jobprep-backend/internal/pins"
	"jobprep-backend/internal/resumes"
	"jobprep-backend/internal/services/health"
	"jobprep-backend/internal/shared/config"
	"jobprep-backend/internal/shared/metrics"
	"jobprep-backend/internal/shared/server/middleware"
	"jobprep-backend/internal/shared/server/respond"
	"jobprep-backend/internal/users"
)

const (
	apiPrefix      = "/api/v1"
	aiLimiterGroup = "AI"
)

// Routes that call the language model share the AI rate limit bucket.
var aiRoutes = map[string]bool{
	http.MethodPost + " " + apiPrefix + "/resumes/analyze":      true,
	http.MethodPost + " " + apiPrefix + "/interviews/answers":   true,
	http.MethodPost + " " + apiPrefix + "/interviews/questions": true,
}

// RouterDeps carries the handlers mounted on the API.
type RouterDeps struct {
	Config           config.Config
	JobsHandler      *jobs.Handler
	ResumesHandler   *resumes.Handler
	InterviewHandler *interviews.Handler
	PinsHandler      *pins.Handler
	UserHandler      *users.Handler
	GoogleAuth       *googleauth.GoogleService
	Health           *health.Service
	RateLimiter      *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if !deps.Config.IsDevLike() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(PublicPrefixes()...),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    aiRules(deps.Config.AIRequestsPerMinute),
			GroupFor: aiGroup,
			Limiter:  deps.RateLimiter,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group(apiPrefix)
	api.GET("/health", func(c *gin.Context) {
		ok, checks := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "checks": checks})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(api)
	}
	if deps.PinsHandler != nil {
		deps.PinsHandler.RegisterRoutes(api)
	}

	return r
}

// PublicPrefixes lists paths served without a caller identity.
func PublicPrefixes() []string {
	return []string{
		apiPrefix + "/health",
		apiPrefix + "/jobs",
		apiPrefix + "/auth/google/",
		"/metrics",
	}
}

func aiRules(perMinute int) map[string]middleware.RateLimitRule {
	if perMinute <= 0 {
		return nil
	}
	return map[string]middleware.RateLimitRule{
		aiLimiterGroup: {Rate: float64(perMinute) / 60, Burst: perMinute},
	}
}

func aiGroup(c *gin.Context) string {
	path := strings.TrimSuffix(c.Request.URL.Path, "/")
	if aiRoutes[c.Request.Method+" "+path] {
		return aiLimiterGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
