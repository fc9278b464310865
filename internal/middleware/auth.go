package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tailorlink_backend/internal/auth"
	"tailorlink_backend/internal/logger"
	"tailorlink_backend/internal/models"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		if !roleSet[GetUserRole(c)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" when unauthenticated.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole returns the authenticated caller's role.
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get("role")
	if !exists {
		return ""
	}
	switch r := roleVal.(type) {
	case models.UserRole:
		return r
	case string:
		return models.UserRole(r)
	}
	return ""
}
