package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"jobprep-backend/internal/shared/server/middleware"
	"jobprep-backend/internal/shared/server/respond"
)

// Handler serves the public job listing routes.
type Handler struct {
	Agg    *Aggregator
	policy *bluemonday.Policy
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{Agg: agg, policy: bluemonday.UGCPolicy()}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/categories", h.categories)
	rg.GET("/jobs/:id", h.get)
}

// jobView adds presentation fields to a Job. Descriptions arrive as provider
// HTML and are only ever rendered from the sanitized copy.
type jobView struct {
	Job
	DescriptionHTML string `json:"description_html"`
	Remote          bool   `json:"remote"`
}

func (h *Handler) view(job Job) jobView {
	return jobView{
		Job:             job,
		DescriptionHTML: h.policy.Sanitize(job.Description),
		Remote:          IsRemote(job),
	}
}

func (h *Handler) list(c *gin.Context) {
	filter, err := ParseFilter(c.Request.URL.Query())
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse filter", nil)
		return
	}

	list := h.Agg.GetJobs(c.Request.Context(), filter)
	views := make([]jobView, 0, len(list))
	for _, job := range list {
		views = append(views, h.view(job))
	}
	respond.OK(c, gin.H{
		"jobs":  views,
		"count": len(views),
	})
}

func (h *Handler) categories(c *gin.Context) {
	respond.OK(c, gin.H{"categories": Categories()})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.LogJobIDKey, id)

	job, ok := h.Agg.GetJobByID(c.Request.Context(), id)
	if !ok {
		respond.NotFound(c, "job not found")
		return
	}
	respond.OK(c, h.view(job))
}
