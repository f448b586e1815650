package middleware

import (
	"net/http"
	"strings"

	"bookstore/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type accessVerifier interface {
	VerifyAccessToken(tokenStr string) (int64, error)
}

// JWTAuth authenticates API clients by bearer access token. A failed
// verification is answered with 401 so the client retries through the
// refresh endpoint; it is never a server error.
func JWTAuth(codec accessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		userID, err := codec.VerifyAccessToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "TOKEN_INVALID", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
