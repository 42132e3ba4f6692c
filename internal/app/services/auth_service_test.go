package services

import (
	"context"
	"testing"
	"time"

	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/pkg/apperrors"
	"github.com/mfreitas/sistema-escolar/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest() (AuthService, *memUserRepo, *auth.JWTService) {
	userRepo := newMemUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "sistema-escolar-test",
	})
	return NewAuthService(userRepo, jwtService), userRepo, jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, jwtService := newAuthServiceForTest()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "maria@escola.local",
		Password: "Senha123!",
		FullName: "Maria Freitas",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "Senha123!", user.Password)
	assert.False(t, user.IsStaff)

	token, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "maria@escola.local",
		Password: "Senha123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)

	claims, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "maria@escola.local", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "maria@escola.local", Password: "Senha123!", FullName: "Maria",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email: "maria@escola.local", Password: "Outra123!", FullName: "Outra Maria",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "maria@escola.local", Password: "Senha123!", FullName: "Maria",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email: "maria@escola.local", Password: "errada",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ninguem@escola.local", Password: "qualquer",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestDeleteAccountRedirectsAuditToSentinel(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "maria@escola.local", Password: "Senha123!", FullName: "Maria",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, user.ID))

	// The account is gone and its audit references point at the sentinel
	gone, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	sentinel, err := userRepo.GetByEmail(ctx, "deleted")
	require.NoError(t, err)
	require.NotNil(t, sentinel)
	assert.Equal(t, sentinel.ID, userRepo.redirects[user.ID])
}

func TestDeleteAccountMissingUser(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	err := svc.DeleteAccount(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSentinelCannotLogin(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := userRepo.GetOrCreateSentinel(ctx)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "deleted", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
