package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-jwt"
	testIssuer = "attendance-task-system"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	service := NewJWTService(testSecret, "168h", testIssuer)

	token, expiresAt, err := service.GenerateToken("user-123", "a@x.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuing := NewJWTService(testSecret, "168h", testIssuer)
	verifying := NewJWTService("a-different-secret", "168h", testIssuer)

	token, _, err := issuing.GenerateToken("user-123", "a@x.com", "user")
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	// Negative expiration produces a token that expired an hour ago, well
	// past the 30s acceptable skew.
	service := NewJWTService(testSecret, "-1h", testIssuer)

	token, _, err := service.GenerateToken("user-123", "a@x.com", "user")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_IssuerMismatch(t *testing.T) {
	issuing := NewJWTService(testSecret, "168h", "some-other-system")
	verifying := NewJWTService(testSecret, "168h", testIssuer)

	token, _, err := issuing.GenerateToken("user-123", "a@x.com", "user")
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	service := NewJWTService(testSecret, "168h", testIssuer)

	_, err := service.VerifyToken("not-a-token")
	assert.Error(t, err)
}
