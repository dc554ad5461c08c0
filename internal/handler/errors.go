package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
	"github.com/rajeev8964/thepersonalbuddy/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy to HTTP. Validation,
// authorization and not-found errors carry user-safe text;
// anything else is logged with detail and surfaced as a generic retry
// message so store/provider internals never reach the end user.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	var te *domain.InvalidTransitionError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "code": "VALIDATION_FAILED", "field": ve.Field})
	case errors.As(err, &te):
		c.JSON(http.StatusConflict, gin.H{"error": te.Error(), "code": "INVALID_TRANSITION"})
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found", "code": "PROFILE_NOT_FOUND"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": "NOT_FOUND"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "code": "FORBIDDEN"})
	default:
		slog.Error("request failed", "path", c.FullPath(), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later", "code": "INTERNAL_ERROR"})
	}
}
