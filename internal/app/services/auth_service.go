package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
	"github.com/mfreitas/sistema-escolar/internal/pkg/apperrors"
	"github.com/mfreitas/sistema-escolar/internal/pkg/auth"
	"github.com/mfreitas/sistema-escolar/internal/pkg/dberrors"
)

// AuthService handles account registration, login and removal
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// DeleteAccount removes the account after redirecting its audit
	// references to the sentinel user, so stamped records stay consistent
	DeleteAccount(ctx context.Context, userID int64) error
}

type authService struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FullName:  req.FullName,
		IsStaff:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.ConstraintUserEmail) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsSentinel() {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *authService) DeleteAccount(ctx context.Context, userID int64) error {
	sentinel, err := s.userRepo.GetOrCreateSentinel(ctx)
	if err != nil {
		return err
	}
	if sentinel.ID == userID {
		return apperrors.ErrPermissionDenied
	}

	err = s.userRepo.DeleteWithAuditRedirect(ctx, userID, sentinel.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}
