package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookieName identifies the server-side session.
	SessionCookieName = "session_id"
	// RefreshCookieName carries the raw refresh token between requests.
	RefreshCookieName = "refresh_token"
)

// Session is the server-side mirror of one browser's auth state. The
// refresh token is mirrored here as a fallback channel for clients that
// lost the cookie mid-session.
type Session struct {
	UserID       int64
	Username     string
	Email        string
	LoggedIn     bool
	LoginTime    time.Time
	RefreshToken string

	expiresAt time.Time
}

// Manager is an in-memory session cache keyed by the session_id cookie.
// Entries expire lazily on access; one bookstore process serves one
// cookie domain, so no external session store is needed.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// NewID mints a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Load returns a copy of the session, or false when the id is unknown or
// the entry has expired.
func (m *Manager) Load(id string) (Session, bool) {
	if id == "" {
		return Session{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	if m.now().After(s.expiresAt) {
		delete(m.sessions, id)
		return Session{}, false
	}
	return s, true
}

// Save stores the session and pushes its expiry out by the manager TTL.
func (m *Manager) Save(id string, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.expiresAt = m.now().Add(m.ttl)
	m.sessions[id] = s
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// CookieOptions carries the client-cookie policy from configuration.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// SameSiteFromString maps the config value onto http.SameSite, defaulting
// to Lax for anything unrecognised.
func SameSiteFromString(v string) http.SameSite {
	switch v {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// secure mirrors the connection: the configured flag, or TLS observed on
// the request itself.
func (o CookieOptions) secure(c *gin.Context) bool {
	return o.Secure || c.Request.TLS != nil
}

// SetRefreshCookie writes the rotated refresh token back to the client,
// http-only, expiring together with the token itself.
func SetRefreshCookie(c *gin.Context, raw string, ttl time.Duration, opts CookieOptions) {
	c.SetSameSite(opts.SameSite)
	c.SetCookie(RefreshCookieName, raw, int(ttl.Seconds()), opts.Path, "", opts.secure(c), true)
}

func ClearRefreshCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(opts.SameSite)
	c.SetCookie(RefreshCookieName, "", -1, opts.Path, "", opts.secure(c), true)
}

func SetSessionCookie(c *gin.Context, id string, ttl time.Duration, opts CookieOptions) {
	c.SetSameSite(opts.SameSite)
	c.SetCookie(SessionCookieName, id, int(ttl.Seconds()), opts.Path, "", opts.secure(c), true)
}

func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(opts.SameSite)
	c.SetCookie(SessionCookieName, "", -1, opts.Path, "", opts.secure(c), true)
}
