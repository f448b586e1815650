package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAccessToken covers malformed, mis-signed and expired access
// tokens. Callers treat it as "not authenticated", never as a fatal error.
var ErrInvalidAccessToken = errors.New("invalid access token")

// Codec mints and verifies the two credential kinds:
//
//   - access tokens: short-lived HS256 JWTs, statelessly verifiable,
//     carrying the user id as subject;
//   - refresh tokens: long-lived opaque random strings, stored server-side
//     by SHA-256 hash only.
type Codec struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// RefreshToken is a freshly minted refresh credential. Raw leaves the
// process only inside the HTTP response; persist Hash and ExpiresAt.
type RefreshToken struct {
	Raw       string
	Hash      string
	ExpiresAt time.Time
}

func New(secret, issuer string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (c *Codec) IssueAccessToken(userID int64) (string, error) {
	now := c.now()
	claims := jwtlib.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwtlib.NewNumericDate(now),
		NotBefore: jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(c.accessTTL)),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// VerifyAccessToken checks signature and expiry only; it consults no store.
func (c *Codec) VerifyAccessToken(tokenStr string) (int64, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &jwtlib.RegisteredClaims{}, func(t *jwtlib.Token) (any, error) {
		return c.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}
	if !token.Valid {
		return 0, ErrInvalidAccessToken
	}

	claims, ok := token.Claims.(*jwtlib.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidAccessToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidAccessToken
	}
	return userID, nil
}

// IssueRefreshToken mints a new opaque refresh token: 32 random bytes,
// hex-encoded, hashed for storage.
func (c *Codec) IssueRefreshToken() (*RefreshToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	raw := hex.EncodeToString(buf)
	return &RefreshToken{
		Raw:       raw,
		Hash:      HashRefreshToken(raw),
		ExpiresAt: c.now().Add(c.refreshTTL),
	}, nil
}

func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

// HashRefreshToken is the lookup key derivation: pure SHA-256, so raw
// tokens never need to be stored or logged.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
