package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"rentify_backend/internal/auth"
	"rentify_backend/internal/logger"
	"rentify_backend/pkg/apperrors"
)

// UserIDContextKey is the gin context key holding the authenticated user ID.
const UserIDContextKey = "userID"

// AuthMiddleware is the authorization gate. It extracts the token from the
// session cookie, falling back to an Authorization bearer header for
// non-browser clients, verifies it, and attaches the resolved user ID to
// the request. Missing or invalid tokens short-circuit with 401 before any
// handler runs.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.Unauthorized("No token provided."))
			return
		}

		claims, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Token verification failed",
				"error", err.Error(),
				"path", c.Request.URL.Path,
			)
			apperrors.HandleError(c, apperrors.Unauthorized("Invalid token."))
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID extracts the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDContextKey)
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
