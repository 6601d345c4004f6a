package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID      = "userID"
	ContextEmail       = "email"
	ContextRole        = "role"
	ContextAccountType = "accountType"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores its claims on the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage("Authentication required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage("Invalid token format"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextAccountType, claims.AccountType)

		c.Next()
	}
}

// RoleRequired rejects requests whose token does not carry the role
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage("Authentication required"))
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessage("Permission denied"))
			return
		}

		c.Next()
	}
}

// AdminRequired rejects requests not authenticated as an admin account
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountType, exists := c.Get(ContextAccountType)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessage("Authentication required"))
			return
		}

		typeStr, ok := accountType.(string)
		if !ok || typeStr != auth.AccountAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessage("Permission denied"))
			return
		}

		c.Next()
	}
}
