package middleware

import (
	"context"
	"net/http"

	"bookstore/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type roleResolver interface {
	RoleByID(ctx context.Context, userID int64) (string, error)
}

// RequireRole ensures that the authenticated user has the specified role.
// Access tokens carry only the subject, so the role comes from the store.
func RequireRole(resolver roleResolver, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID <= 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		role, err := resolver.RoleByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unknown user")
			c.Abort()
			return
		}

		if role != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
