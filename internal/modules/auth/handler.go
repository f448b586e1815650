package auth

import (
	"errors"
	"net/http"
	"time"

	"bookstore/internal/pkg/response"
	"bookstore/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication. It owns the
// controller side of the session contract: populating the session cache and
// the refresh cookie on login/refresh, clearing both on logout.
type Handler struct {
	service    *Service
	sessions   *session.Manager
	cookieOpts session.CookieOptions
	sessionTTL time.Duration
}

func NewHandler(service *Service, sessions *session.Manager, cookieOpts session.CookieOptions, sessionTTL time.Duration) *Handler {
	return &Handler{
		service:    service,
		sessions:   sessions,
		cookieOpts: cookieOpts,
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/check", h.Check)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			response.ErrorWithDetails(c, http.StatusConflict, "USERNAME_TAKEN", "This username is already taken", gin.H{"field": "username"})
		case errors.Is(err, ErrEmailTaken):
			response.ErrorWithDetails(c, http.StatusConflict, "EMAIL_TAKEN", "This email is already registered", gin.H{"field": "email"})
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user_id": userID})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	h.establishSession(c, pair)
	response.Success(c, http.StatusOK, h.pairPayload(pair))
}

// Refresh rotates the refresh token for clients calling the endpoint
// directly (the session middleware performs the same flow transparently
// for cookie-based page loads).
func (h *Handler) Refresh(c *gin.Context) {
	raw := h.refreshTokenFromRequest(c)
	if raw == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No refresh token")
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRefreshToken), errors.Is(err, ErrRefreshTokenExpired), errors.Is(err, ErrUserNotFound):
			h.clearSession(c)
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired refresh token")
		default:
			response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to refresh session")
		}
		return
	}

	h.establishSession(c, pair)
	response.Success(c, http.StatusOK, h.pairPayload(pair))
}

// Logout revokes the refresh token and clears all client state. It always
// succeeds: a missing or unknown token still clears the cookies.
func (h *Handler) Logout(c *gin.Context) {
	if raw := h.refreshTokenFromRequest(c); raw != "" {
		h.service.Revoke(c.Request.Context(), raw)
	}

	h.clearSession(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// Check reports the current session state without touching the auth core.
func (h *Handler) Check(c *gin.Context) {
	sid, _ := c.Cookie(session.SessionCookieName)
	sess, ok := h.sessions.Load(sid)
	if !ok || !sess.LoggedIn || sess.UserID <= 0 {
		response.Success(c, http.StatusOK, gin.H{"authenticated": false, "user": nil})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"authenticated": true,
		"user": UserPublic{
			ID:       sess.UserID,
			Username: sess.Username,
			Email:    sess.Email,
		},
	})
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID <= 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) refreshTokenFromRequest(c *gin.Context) string {
	if raw, err := c.Cookie(session.RefreshCookieName); err == nil && raw != "" {
		return raw
	}
	// Session mirror is the fallback channel for cookie loss.
	if sid, err := c.Cookie(session.SessionCookieName); err == nil {
		if sess, ok := h.sessions.Load(sid); ok && sess.RefreshToken != "" {
			return sess.RefreshToken
		}
	}
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

func (h *Handler) establishSession(c *gin.Context, pair *TokenPair) {
	sid, err := c.Cookie(session.SessionCookieName)
	if err != nil || sid == "" {
		sid = h.sessions.NewID()
	}

	h.sessions.Save(sid, session.Session{
		UserID:       pair.User.ID,
		Username:     pair.User.Username,
		Email:        pair.User.Email,
		LoggedIn:     true,
		LoginTime:    time.Now(),
		RefreshToken: pair.RefreshToken,
	})

	session.SetSessionCookie(c, sid, h.sessionTTL, h.cookieOpts)
	session.SetRefreshCookie(c, pair.RefreshToken, h.service.RefreshTTL(), h.cookieOpts)
}

func (h *Handler) clearSession(c *gin.Context) {
	if sid, err := c.Cookie(session.SessionCookieName); err == nil && sid != "" {
		h.sessions.Delete(sid)
	}
	session.ClearSessionCookie(c, h.cookieOpts)
	session.ClearRefreshCookie(c, h.cookieOpts)
}

func (h *Handler) pairPayload(pair *TokenPair) gin.H {
	return gin.H{
		"user": UserPublic{
			ID:       pair.User.ID,
			Username: pair.User.Username,
			Email:    pair.User.Email,
			Role:     string(pair.User.Role),
		},
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
}
