package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "test",
	})

	token, err := svc.GenerateToken(42, "jane@university.edu", "lecturer", AccountUser)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@university.edu", claims.Email)
	assert.Equal(t, "lecturer", claims.Role)
	assert.Equal(t, AccountUser, claims.AccountType)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: -time.Minute,
		TokenIssuer: "test",
	})

	token, err := svc.GenerateToken(1, "jane@university.edu", "candidate", AccountUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", TokenExpiry: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", TokenExpiry: time.Hour})

	token, err := issuer.GenerateToken(1, "jane@university.edu", "candidate", AccountUser)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", hashed)
	assert.True(t, CheckPassword(hashed, "secret-password"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
}
