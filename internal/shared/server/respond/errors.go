package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobprep-backend/internal/shared/telemetry"
)

// ErrorBody is the error object every failed request returns.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error aborts the request with a standardized error body. Client errors log
// at warn, server errors at error.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// LoginRequired rejects guest callers on routes that keep per-user history.
func LoginRequired(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, "login_required", message, nil)
}

// NotFound answers 404 not_found.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "not_found", message, nil)
}
