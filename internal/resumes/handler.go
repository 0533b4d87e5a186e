package resumes

import (
	"errors"
	"io"
	"mime"
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

// RegisterRoutes attaches résumé routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/analyze", h.analyze)
	rg.GET("/resumes/analyses", h.list)
	rg.GET("/resumes/analyses/:id", h.get)
	rg.GET("/resumes/analyses/:id/file", h.file)
}

type recordResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Analysis  Analysis  `json:"analysis"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(rec Record) recordResponse {
	return recordResponse{
		ID:        rec.ID,
		FileName:  rec.FileName,
		Analysis:  rec.Analysis,
		CreatedAt: rec.CreatedAt,
	}
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileSize+(1<<20))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	rec, err := h.Svc.UploadAndAnalyze(c.Request.Context(), userID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.LogRecordIDKey, rec.ID)
	respond.Created(c, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.LoginRequired(c, "Login required to view history")
		return
	}

	limit := DefaultListLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	recs, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	items := make([]recordResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toResponse(rec))
	}
	respond.OK(c, gin.H{"items": items, "count": len(items)})
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.LogRecordIDKey, rec.ID)
	respond.OK(c, toResponse(rec))
}

func (h *Handler) file(c *gin.Context) {
	rec, body, err := h.Svc.OpenFile(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer body.Close()

	c.Set(middleware.LogRecordIDKey, rec.ID)
	c.Header("Content-Type", mimePDF)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": rec.FileName}))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}

func writeError(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "File size must be less than 10MB", nil)
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", strings.TrimPrefix(err.Error(), ErrValidation.Error()+": "), nil)
	case errors.Is(err, ErrNoText), errors.Is(err, ErrUnreadable):
		respond.Error(c, http.StatusUnprocessableEntity, "unprocessable_document", "Could not read text from the PDF", nil)
	case errors.Is(err, aiparse.ErrModelCall):
		respond.Error(c, http.StatusBadGateway, "analysis_failed", "Failed to analyze resume. Please try again.", nil)
	case errors.Is(err, ErrNotFound):
		respond.NotFound(c, "analysis not found")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
	}
}
