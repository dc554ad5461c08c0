package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminChecker answers derived-privilege lookups. Satisfied by
// service.AccessService.
type AdminChecker interface {
	IsAdmin(userID string) (bool, error)
}

// AdminRequired re-derives admin privilege from the role store on every
// request, keyed by the subject AuthRequired verified. A store failure
// fails closed: the caller is treated as non-admin.
func AdminRequired(access AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		ok, err := access.IsAdmin(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify role"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
