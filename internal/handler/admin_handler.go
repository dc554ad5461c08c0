package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rajeev8964/thepersonalbuddy/internal/auth"
	"github.com/rajeev8964/thepersonalbuddy/internal/middleware"
	"github.com/rajeev8964/thepersonalbuddy/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	access   *service.AccessService
	profiles *service.ProfileService
	bookings *service.BookingService
	contacts *service.ContactService
}

func NewAdminHandler(
	access *service.AccessService,
	profiles *service.ProfileService,
	bookings *service.BookingService,
	contacts *service.ContactService,
) *AdminHandler {
	return &AdminHandler{access: access, profiles: profiles, bookings: bookings, contacts: contacts}
}

// VerifyAdmin handles POST /verify-admin. An absent or invalid credential
// yields {isAdmin:false} with 401 and no role-store query; a store failure
// fails closed.
func (h *AdminHandler) VerifyAdmin(c *gin.Context) {
	token := middleware.BearerToken(c)
	isAdmin, err := h.access.VerifyAdmin(token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"isAdmin": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"isAdmin": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// ListProfiles handles GET /admin/profiles — all profiles including
// unapproved, with contact emails.
func (h *AdminHandler) ListProfiles(c *gin.Context) {
	list, err := h.profiles.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type adminProfileRequest struct {
	service.ProfileInput
	Status     string `json:"status"`
	IsApproved *bool  `json:"is_approved"`
}

// CreateProfile handles POST /admin/profiles. Admin-created profiles are
// approved by default.
func (h *AdminHandler) CreateProfile(c *gin.Context) {
	var req adminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "VALIDATION_FAILED"})
		return
	}
	approved := true
	if req.IsApproved != nil {
		approved = *req.IsApproved
	}
	p, err := h.profiles.CreateByAdmin(req.ProfileInput, req.Status, approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProfile handles PUT /admin/profiles/:id. Admin edits never reset
// approval.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var in service.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "VALIDATION_FAILED"})
		return
	}
	p, err := h.profiles.UpdateByAdmin(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetApproval handles PATCH /admin/profiles/:id/approval.
func (h *AdminHandler) SetApproval(c *gin.Context) {
	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved required", "code": "VALIDATION_FAILED"})
		return
	}
	p, err := h.profiles.SetApproval(c.Param("id"), *req.Approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProfile handles DELETE /admin/profiles/:id — cascades to bookings.
func (h *AdminHandler) DeleteProfile(c *gin.Context) {
	if err := h.profiles.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *AdminHandler) adminActor(c *gin.Context) service.Actor {
	return service.Actor{
		UserID: middleware.GetUserID(c),
		Email:  middleware.GetEmail(c),
		Admin:  true, // route is behind AdminRequired's role-store check
	}
}

// ListBookings handles GET /admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	list, err := h.bookings.ListAll(h.adminActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateBookingStatus handles PATCH /admin/bookings/:id/status.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required", "code": "VALIDATION_FAILED"})
		return
	}
	b, err := h.bookings.Transition(h.adminActor(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBooking handles DELETE /admin/bookings/:id — hard delete.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := h.bookings.Delete(h.adminActor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListContacts handles GET /admin/contacts.
func (h *AdminHandler) ListContacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.contacts.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
