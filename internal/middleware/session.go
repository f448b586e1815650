package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"bookstore/internal/modules/auth"
	"bookstore/internal/pkg/response"
	"bookstore/internal/session"

	"github.com/gin-gonic/gin"
)

type sessionAuthService interface {
	Refresh(ctx context.Context, rawToken string) (*auth.TokenPair, error)
	RefreshTTL() time.Duration
}

// SessionAuth is the session bridge for browser clients. Per request:
//
//  1. a live session marks the caller authenticated, no auth-core call;
//  2. otherwise the refresh-token cookie (or its session mirror) goes
//     through the rotation flow, and success repopulates session + cookie;
//  3. any refresh failure degrades to "not logged in" — auth errors never
//     surface as 500s here;
//  4. still unauthenticated: HTML clients get a login redirect, JSON
//     clients a structured 401.
func SessionAuth(sessions *session.Manager, svc sessionAuthService, opts session.CookieOptions, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Cookie(session.SessionCookieName)

		if sess, ok := sessions.Load(sid); ok && sess.LoggedIn && sess.UserID > 0 {
			setIdentity(c, sess)
			c.Next()
			return
		}

		raw, _ := c.Cookie(session.RefreshCookieName)
		if raw == "" && sid != "" {
			if sess, ok := sessions.Load(sid); ok {
				raw = sess.RefreshToken
			}
		}

		if raw != "" {
			pair, err := svc.Refresh(c.Request.Context(), raw)
			if err == nil {
				if sid == "" {
					sid = sessions.NewID()
				}
				sess := session.Session{
					UserID:       pair.User.ID,
					Username:     pair.User.Username,
					Email:        pair.User.Email,
					LoggedIn:     true,
					LoginTime:    time.Now(),
					RefreshToken: pair.RefreshToken,
				}
				sessions.Save(sid, sess)
				session.SetSessionCookie(c, sid, sessionTTL, opts)
				session.SetRefreshCookie(c, pair.RefreshToken, svc.RefreshTTL(), opts)

				setIdentity(c, sess)
				c.Next()
				return
			}

			// Invalid, expired or orphaned token: clear client state and
			// fall through to the unauthenticated path.
			log.Printf("session refresh rejected: path=%s err=%v", c.Request.URL.Path, err)
			if sid != "" {
				sessions.Delete(sid)
			}
			session.ClearRefreshCookie(c, opts)
			session.ClearSessionCookie(c, opts)
		}

		if wantsJSON(c) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

func setIdentity(c *gin.Context, sess session.Session) {
	c.Set("user_id", sess.UserID)
	c.Set("username", sess.Username)
	c.Set("email", sess.Email)
}

func wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	if strings.Contains(c.ContentType(), "application/json") {
		return true
	}
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
