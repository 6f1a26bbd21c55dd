package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/shared/identity"
	"blog-backend/pkg/jwt"
)

// AuthMiddleware validates the bearer token and stores the caller's
// user id in the context under identity.ContextKey.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid user ID in token"})
			c.Abort()
			return
		}

		c.Set(identity.ContextKey, userID)
		c.Next()
	}
}

// OptionalAuth parses a bearer token when present but never rejects
// the request. Routes whose auth decisions live in the service layer
// (article mutations resolve identity through identity.Provider) use
// this so a 401 comes from the ownership workflow, not the router.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := manager.ValidateAccessToken(parts[1]); err == nil {
				if userID, err := uuid.Parse(claims.UserID); err == nil {
					c.Set(identity.ContextKey, userID)
				}
			}
		}
		c.Next()
	}
}
