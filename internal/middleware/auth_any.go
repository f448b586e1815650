package middleware

import (
	"strings"
	"time"

	"bookstore/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthRequired guards routes that serve both browsers and API clients.
// A bearer header routes through JWT verification, everything else through
// the session bridge; both publish user_id so handlers stay agnostic.
func AuthRequired(codec accessVerifier, sessions *session.Manager, svc sessionAuthService, opts session.CookieOptions, sessionTTL time.Duration) gin.HandlerFunc {
	jwtAuth := JWTAuth(codec)
	sessionAuth := SessionAuth(sessions, svc, opts, sessionTTL)

	return func(c *gin.Context) {
		if strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ") {
			jwtAuth(c)
			return
		}
		sessionAuth(c)
	}
}
