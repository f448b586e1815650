package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookstore/internal/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestJWTAuth_ValidToken(t *testing.T) {
	codec := token.New("test-secret-123", "http://bookstore.test", time.Hour, time.Hour)
	validToken, _ := codec.IssueAccessToken(42)

	router := gin.New()
	router.Use(JWTAuth(codec))

	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	codec := token.New("wrong-secret", "http://bookstore.test", time.Hour, time.Hour)

	router := gin.New()
	router.Use(JWTAuth(codec))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	codec := token.New("test-secret-123", "http://bookstore.test", time.Hour, time.Hour)

	router := gin.New()
	router.Use(JWTAuth(codec))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	// TTL in the past makes the token expired the moment it is issued.
	codec := token.New("test-secret-123", "http://bookstore.test", -time.Minute, time.Hour)
	expired, _ := codec.IssueAccessToken(42)

	router := gin.New()
	router.Use(JWTAuth(codec))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
