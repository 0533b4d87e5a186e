package pins

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jobprep-backend/internal/shared/auth"
	"jobprep-backend/internal/shared/server/middleware"
)

func TestPinRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "pins-test-secret")
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth())
	NewHandler(&Service{Repo: NewMemoryRepo()}).RegisterRoutes(api)

	token, err := auth.SignJWT(auth.Claims{Sub: "google:7"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		guest  bool
		want   int
	}{
		{name: "guest rejected", method: http.MethodPost, path: "/api/v1/pins", body: `{"id":"1"}`, guest: true, want: http.StatusUnauthorized},
		{name: "missing id", method: http.MethodPost, path: "/api/v1/pins", body: `{"title":"x"}`, want: http.StatusBadRequest},
		{name: "pin", method: http.MethodPost, path: "/api/v1/pins", body: `{"id":"1","title":"Go Dev","source":"remoteok"}`, want: http.StatusCreated},
		{name: "status", method: http.MethodGet, path: "/api/v1/pins/1", want: http.StatusOK},
		{name: "list", method: http.MethodGet, path: "/api/v1/pins", want: http.StatusOK},
		{name: "unpin", method: http.MethodDelete, path: "/api/v1/pins/1", want: http.StatusNoContent},
		{name: "unpin again", method: http.MethodDelete, path: "/api/v1/pins/1", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
		req.Header.Set("Content-Type", "application/json")
		if tt.guest {
			req.Header.Set("X-Guest-Id", "g1")
		} else {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != tt.want {
			t.Fatalf("%s: expected %d, got %d: %s", tt.name, tt.want, resp.Code, resp.Body.String())
		}
	}
}
