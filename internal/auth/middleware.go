package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gympulse/internal/api"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "user_email"
	ctxRole   = "user_role"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			api.Fail(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || strings.TrimSpace(scheme) != "Bearer" {
			api.Fail(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token = strings.TrimSpace(token)
		if token == "" {
			api.Fail(c, http.StatusUnauthorized, "Token is empty")
			return
		}

		claims, err := ValidateToken(token, secret)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				api.Fail(c, http.StatusUnauthorized, "Token expired")
			} else {
				api.Fail(c, http.StatusUnauthorized, "Invalid or malformed token")
			}
			return
		}

		if claims.TokenType != tokenAccess {
			api.Fail(c, http.StatusUnauthorized, "Access token required")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			api.Fail(c, http.StatusUnauthorized, "User role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			api.Fail(c, http.StatusUnauthorized, "Invalid role type")
			return
		}

		if roleStr != requiredRole {
			api.Fail(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
