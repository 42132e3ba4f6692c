package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/pkg/auth"
)

// Context keys set by the authentication middleware
const (
	ContextUserID  = "userID"
	ContextEmail   = "email"
	ContextIsStaff = "isStaff"
)

// AuthMiddleware handles authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Identify resolves the caller from the Authorization header when one is
// present. Anonymous requests pass through untouched; record mutations they
// perform are stamped with no principal. A token that is present but bad is
// still rejected.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		if err := m.authenticate(c, authHeader); err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Next()
	}
}

// RequireAuth rejects requests that carry no valid token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := m.authenticate(c, authHeader); err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Next()
	}
}

// RequireStaff rejects authenticated callers without the staff flag.
// RequireAuth must run first.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		isStaff, exists := c.Get(ContextIsStaff)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if staff, ok := isStaff.(bool); !ok || !staff {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("Staff privileges are required for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, authHeader string) error {
	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return err
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextIsStaff, claims.IsStaff)
	return nil
}

func abortUnauthorized(c *gin.Context, err error) {
	errorCode := dto.ErrorCodeInvalidToken
	details := "Invalid token"

	if errors.Is(err, auth.ErrExpiredToken) {
		errorCode = dto.ErrorCodeExpiredToken
		details = "Token has expired"
	} else if errors.Is(err, auth.ErrInvalidFormat) {
		details = "Invalid token format"
	}

	errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
	errorDetail = errorDetail.WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// Principal returns the authenticated user id, nil for anonymous requests
func Principal(c *gin.Context) *int64 {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return nil
	}
	userID, ok := value.(int64)
	if !ok {
		return nil
	}
	return &userID
}

// MustPrincipal returns the authenticated user id; RequireAuth must run first
func MustPrincipal(c *gin.Context) (int64, bool) {
	p := Principal(c)
	if p == nil {
		return 0, false
	}
	return *p, true
}
