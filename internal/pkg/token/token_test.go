package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	codec := New("test-secret-123", "http://bookstore.test", 15*time.Minute, 30*24*time.Hour)

	signed, err := codec.IssueAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := codec.VerifyAccessToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	codec := New("secret-a", "http://bookstore.test", 15*time.Minute, time.Hour)
	other := New("secret-b", "http://bookstore.test", 15*time.Minute, time.Hour)

	signed, err := codec.IssueAccessToken(7)
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	codec := New("test-secret-123", "http://bookstore.test", 15*time.Minute, time.Hour)

	base := time.Now()
	codec.now = func() time.Time { return base }

	signed, err := codec.IssueAccessToken(7)
	require.NoError(t, err)

	// Still valid just before expiry, invalid just after.
	codec.now = func() time.Time { return base.Add(14 * time.Minute) }
	_, err = codec.VerifyAccessToken(signed)
	assert.NoError(t, err)

	codec.now = func() time.Time { return base.Add(16 * time.Minute) }
	_, err = codec.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	codec := New("test-secret-123", "http://bookstore.test", 15*time.Minute, time.Hour)

	_, err := codec.VerifyAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestIssueRefreshToken(t *testing.T) {
	codec := New("test-secret-123", "http://bookstore.test", 15*time.Minute, 30*24*time.Hour)

	rt, err := codec.IssueRefreshToken()
	require.NoError(t, err)

	assert.Len(t, rt.Raw, 64)  // 32 random bytes, hex
	assert.Len(t, rt.Hash, 64) // sha256, hex
	assert.Equal(t, HashRefreshToken(rt.Raw), rt.Hash)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), rt.ExpiresAt, time.Minute)

	other, err := codec.IssueRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, rt.Raw, other.Raw)
}

func TestHashRefreshToken_Pure(t *testing.T) {
	assert.Equal(t, HashRefreshToken("abc"), HashRefreshToken("abc"))
	assert.NotEqual(t, HashRefreshToken("abc"), HashRefreshToken("abd"))
}
