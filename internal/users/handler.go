package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobprep-backend/internal/shared/server/middleware"
	"jobprep-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

// me returns the stored profile. When the row is missing (in-memory store
// after a restart) the token claims are echoed instead.
func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" || middleware.IsGuest(c) {
		respond.LoginRequired(c, "Login required")
		return
	}

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
			return
		}
		user = User{
			ID:      userID,
			Email:   middleware.UserEmailFromContext(c),
			Name:    middleware.UserNameFromContext(c),
			Picture: middleware.UserPictureFromContext(c),
		}
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"id":      user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"picture": user.Picture,
	})
}
