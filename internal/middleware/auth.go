package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staffhub_backend/internal/auth"
	"staffhub_backend/internal/models"
)

const (
	ContextActorID = "actorID"
	ContextRole    = "role"
)

// AuthMiddleware validates the bearer token and stores the actor's
// identity on the gin context.
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

		c.Set(ContextActorID, claims.ActorID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRoles allows the request through only for the listed roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			if roleStr, okStr := roleVal.(string); okStr {
				role = models.UserRole(roleStr)
			} else {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role"})
				return
			}
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
	}
}

// ActorID returns the authenticated actor ID from the context.
func ActorID(c *gin.Context) string {
	if v, ok := c.Get(ContextActorID); ok {
		if id, okStr := v.(string); okStr {
			return id
		}
	}
	return ""
}
