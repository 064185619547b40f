package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), float64(expiresAt), 5)

	// The token must round-trip through the same verifier the router uses.
	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	role, _ := decoded.Get("role")
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
	assert.Equal(t, "access", tokenType)
	assert.Equal(t, expiresAt, decoded.Expiration().Unix())
}

func TestGenerateAccessTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")

	_, _, err := svc.GenerateAccessToken("user-1", "admin")
	assert.Error(t, err)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "1h")
	verifier := NewJWTService("secret-b", "1h")

	tokenString, _, err := issuer.GenerateAccessToken("user-1", "admin")
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
