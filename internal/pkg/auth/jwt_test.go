package auth

import (
	"testing"
	"time"

	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "sistema-escolar-test",
	})

	user := &models.User{ID: 42, Email: "maria@escola.local", IsStaff: true}

	token, expiresIn, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "maria@escola.local", claims.Email)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, "sistema-escolar-test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "sistema-escolar-test",
	})

	token, _, err := svc.GenerateAccessToken(&models.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateAccessToken(&models.User{ID: 1, Email: "a@x.com"})
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
	hash, err := HashPassword("Senha123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Senha123!", hash)

	assert.True(t, CheckPassword(hash, "Senha123!"))
	assert.False(t, CheckPassword(hash, "errada"))
}
