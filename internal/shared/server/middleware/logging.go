package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobprep-backend/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	LogJobIDKey    = "jobId"
	LogRecordIDKey = "recordId"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"is_guest":    IsGuest(c),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if jobID := c.GetString(LogJobIDKey); jobID != "" {
			fields["job_id"] = jobID
		}
		if recordID := c.GetString(LogRecordIDKey); recordID != "" {
			fields["record_id"] = recordID
		}

		if status >= 500 {
			telemetry.Error("request.complete", fields)
			return
		}
		telemetry.Info("request.complete", fields)
	}
}
