package interviews

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobprep-backend/internal/aiparse"
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

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviews/question", h.randomQuestion)
	rg.POST("/interviews/questions", h.generateQuestions)
	rg.POST("/interviews/answers", h.submitAnswer)
	rg.GET("/interviews/history", h.history)
}

type entryResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	JobTitle  string    `json:"jobTitle"`
	Feedback  Feedback  `json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(e Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Question:  e.Question,
		Answer:    e.Answer,
		JobTitle:  e.JobTitle,
		Feedback:  e.Feedback,
		CreatedAt: e.CreatedAt,
	}
}

func (h *Handler) randomQuestion(c *gin.Context) {
	respond.OK(c, gin.H{"question": RandomQuestion()})
}

type questionsRequest struct {
	JobTitle       string `json:"jobTitle" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"max=20000"`
}

func (h *Handler) generateQuestions(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle is required", nil)
		return
	}
	questions, confidence := h.Svc.Questions(c.Request.Context(), req.JobTitle, req.JobDescription)
	respond.OK(c, gin.H{"questions": questions, "confidence": confidence})
}

type answerRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	JobTitle string `json:"jobTitle"`
}

func (h *Handler) submitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question and answer are required", nil)
		return
	}

	e, err := h.Svc.Submit(c.Request.Context(), middleware.UserIDFromContext(c), req.Question, req.Answer, req.JobTitle)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", strings.TrimPrefix(err.Error(), ErrValidation.Error()+": "), nil)
		case errors.Is(err, aiparse.ErrModelCall):
			respond.Error(c, http.StatusBadGateway, "analysis_failed", "Failed to generate feedback. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save answer", nil)
		}
		return
	}
	c.Set(middleware.LogRecordIDKey, e.ID)
	respond.Created(c, toResponse(e))
}

func (h *Handler) history(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.LoginRequired(c, "Login required to view history")
		return
	}

	limit := DefaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	entries, err := h.Svc.History(c.Request.Context(), middleware.UserIDFromContext(c), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history", nil)
		return
	}
	items := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toResponse(e))
	}
	respond.OK(c, gin.H{"items": items, "count": len(items)})
}
