package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware guards the admin route group
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the Bearer token and attaches its claims to the
// request context. A missing or non-Bearer header is MISSING_TOKEN; a
// present but unverifiable token is INVALID_TOKEN.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, apperrors.ErrTokenMissing)
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
			} else {
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}
