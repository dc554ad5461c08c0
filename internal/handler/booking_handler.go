package handler

import (
	"net/http"

	"github.com/rajeev8964/thepersonalbuddy/internal/middleware"
	"github.com/rajeev8964/thepersonalbuddy/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Submit handles POST /bookings — the public booking form. The created row
// is the success signal regardless of email outcome.
func (h *BookingHandler) Submit(c *gin.Context) {
	var in service.SubmitBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "VALIDATION_FAILED"})
		return
	}
	b, err := h.svc.Submit(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListMine handles GET /my/bookings — bookings whose client_email matches
// the caller's verified email.
func (h *BookingHandler) ListMine(c *gin.Context) {
	list, err := h.svc.ListForClient(middleware.GetEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListForBuddy handles GET /me/bookings — bookings of the caller's own
// companion profile.
func (h *BookingHandler) ListForBuddy(c *gin.Context) {
	list, err := h.svc.ListForOwner(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateStatus handles PATCH /me/bookings/:id/status — the owning companion
// confirming or declining a pending booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required", "code": "VALIDATION_FAILED"})
		return
	}
	actor := service.Actor{UserID: middleware.GetUserID(c), Email: middleware.GetEmail(c)}
	b, err := h.svc.Transition(actor, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
