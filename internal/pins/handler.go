package pins

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobprep-backend/internal/jobs"
	"jobprep-backend/internal/shared/server/middleware"
	"jobprep-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches pin routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/pins", requireLogin)
	g.GET("", h.list)
	g.POST("", h.pin)
	g.GET("/:jobId", h.status)
	g.DELETE("/:jobId", h.unpin)
}

func requireLogin(c *gin.Context) {
	if middleware.IsGuest(c) || middleware.UserIDFromContext(c) == "" {
		respond.LoginRequired(c, "Login required to pin jobs")
		return
	}
	c.Next()
}

type pinResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Job       jobs.Job  `json:"job"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(p Pin) pinResponse {
	return pinResponse{ID: p.ID, JobID: p.JobID, Job: p.Job, CreatedAt: p.CreatedAt}
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load pins", nil)
		return
	}
	items := make([]pinResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toResponse(p))
	}
	respond.OK(c, gin.H{"items": items, "count": len(items)})
}

func (h *Handler) pin(c *gin.Context) {
	var job jobs.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job body", nil)
		return
	}
	p, err := h.Svc.Pin(c.Request.Context(), middleware.UserIDFromContext(c), job)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respond.Error(c, http.StatusBadRequest, "validation_error", strings.TrimPrefix(err.Error(), ErrValidation.Error()+": "), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to pin job", nil)
		return
	}
	c.Set(middleware.LogJobIDKey, p.JobID)
	respond.Created(c, toResponse(p))
}

func (h *Handler) status(c *gin.Context) {
	jobID := c.Param("jobId")
	pinned, err := h.Svc.IsPinned(c.Request.Context(), middleware.UserIDFromContext(c), jobID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load pin", nil)
		return
	}
	c.Set(middleware.LogJobIDKey, jobID)
	respond.OK(c, gin.H{"jobId": jobID, "pinned": pinned})
}

func (h *Handler) unpin(c *gin.Context) {
	jobID := c.Param("jobId")
	c.Set(middleware.LogJobIDKey, jobID)
	if err := h.Svc.Unpin(c.Request.Context(), middleware.UserIDFromContext(c), jobID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(c, "pin not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to unpin job", nil)
		return
	}
	respond.NoContent(c)
}
