package handler

import (
	"net/http"

	"github.com/rajeev8964/thepersonalbuddy/internal/middleware"
	"github.com/rajeev8964/thepersonalbuddy/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// ListPublic handles GET /friends — approved profiles only, private email
// stripped, newest first.
func (h *ProfileHandler) ListPublic(c *gin.Context) {
	list, err := h.svc.ListPublic()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetMine handles GET /me/profile.
func (h *ProfileHandler) GetMine(c *gin.Context) {
	p, err := h.svc.GetSelf(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpsertMine handles POST and PUT /me/profile. Submitting again while a
// profile exists becomes an update and sends it back for re-review.
func (h *ProfileHandler) UpsertMine(c *gin.Context) {
	var in service.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "VALIDATION_FAILED"})
		return
	}
	p, err := h.svc.UpsertSelf(middleware.GetUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetAvailability handles PATCH /me/profile/status.
func (h *ProfileHandler) SetAvailability(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required", "code": "VALIDATION_FAILED"})
		return
	}
	p, err := h.svc.SetAvailability(middleware.GetUserID(c), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
